package details

import (
	"github.com/gofiber/fiber/v2"

	userRoute "ewm_backend/internals/features/users/user/route"
)

func UserAdminRoutes(admin fiber.Router, s Services) {
	userRoute.UserAdminRoutes(admin, s.Users)
}
