package route

import (
	"github.com/gofiber/fiber/v2"

	categoryController "ewm_backend/internals/features/events/categories/controller"
	categoryService "ewm_backend/internals/features/events/categories/service"
)

func CategoryPublicRoutes(public fiber.Router, svc *categoryService.CategoryService) {
	ctrl := categoryController.NewCategoryController(svc)

	categories := public.Group("/categories")
	categories.Get("/", ctrl.GetCategories)
	categories.Get("/:catId", ctrl.GetCategory)
}

func CategoryAdminRoutes(admin fiber.Router, svc *categoryService.CategoryService) {
	ctrl := categoryController.NewCategoryController(svc)

	categories := admin.Group("/categories")
	categories.Post("/", ctrl.CreateCategory)
	categories.Patch("/:catId", ctrl.UpdateCategory)
	categories.Delete("/:catId", ctrl.DeleteCategory)
}
