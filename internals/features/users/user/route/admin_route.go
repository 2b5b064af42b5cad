package route

import (
	"github.com/gofiber/fiber/v2"

	userController "ewm_backend/internals/features/users/user/controller"
	userService "ewm_backend/internals/features/users/user/service"
)

func UserAdminRoutes(admin fiber.Router, svc *userService.UserService) {
	ctrl := userController.NewAdminUserController(svc)

	users := admin.Group("/users")
	users.Post("/", ctrl.CreateUser)
	users.Get("/", ctrl.GetUsers)
	users.Delete("/:userId", ctrl.DeleteUser)
}
