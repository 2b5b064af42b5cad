package details

import (
	"github.com/gofiber/fiber/v2"

	categoryRoute "ewm_backend/internals/features/events/categories/route"
	commentRoute "ewm_backend/internals/features/events/comments/route"
	compilationRoute "ewm_backend/internals/features/events/compilations/route"
	eventRoute "ewm_backend/internals/features/events/events/route"
	requestRoute "ewm_backend/internals/features/events/requests/route"
)

func EventsPublicRoutes(public fiber.Router, s Services) {
	categoryRoute.CategoryPublicRoutes(public, s.Categories)
	eventRoute.EventPublicRoutes(public, s.Events, s.Hits)
	compilationRoute.CompilationPublicRoutes(public, s.Compilations)
	commentRoute.CommentPublicRoutes(public, s.Comments)
}

func EventsUserRoutes(user fiber.Router, s Services) {
	eventRoute.EventUserRoutes(user, s.Events)
	requestRoute.RequestUserRoutes(user, s.Requests)
	commentRoute.CommentUserRoutes(user, s.Comments)
}

func EventsAdminRoutes(admin fiber.Router, s Services) {
	categoryRoute.CategoryAdminRoutes(admin, s.Categories)
	eventRoute.EventAdminRoutes(admin, s.Events)
	compilationRoute.CompilationAdminRoutes(admin, s.Compilations)
	commentRoute.CommentAdminRoutes(admin, s.Comments)
}
