package route

import (
	"github.com/gofiber/fiber/v2"

	compilationController "ewm_backend/internals/features/events/compilations/controller"
	compilationService "ewm_backend/internals/features/events/compilations/service"
)

func CompilationPublicRoutes(public fiber.Router, svc *compilationService.CompilationService) {
	ctrl := compilationController.NewCompilationController(svc)

	compilations := public.Group("/compilations")
	compilations.Get("/", ctrl.GetCompilations)
	compilations.Get("/:compId", ctrl.GetCompilation)
}

func CompilationAdminRoutes(admin fiber.Router, svc *compilationService.CompilationService) {
	ctrl := compilationController.NewCompilationController(svc)

	compilations := admin.Group("/compilations")
	compilations.Post("/", ctrl.CreateCompilation)
	compilations.Patch("/:compId", ctrl.UpdateCompilation)
	compilations.Delete("/:compId", ctrl.DeleteCompilation)
}
