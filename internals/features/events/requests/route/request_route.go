package route

import (
	"github.com/gofiber/fiber/v2"

	requestController "ewm_backend/internals/features/events/requests/controller"
	requestService "ewm_backend/internals/features/events/requests/service"
)

// RequestUserRoutes mounts under /users/:userId.
func RequestUserRoutes(user fiber.Router, svc *requestService.RequestService) {
	ctrl := requestController.NewRequestController(svc)

	requests := user.Group("/requests")
	requests.Post("/", ctrl.CreateRequest)
	requests.Get("/", ctrl.GetUserRequests)
	requests.Patch("/:requestId/cancel", ctrl.CancelRequest)

	// moderation by the event initiator
	user.Get("/events/:eventId/requests", ctrl.GetRequests)
	user.Patch("/events/:eventId/requests", ctrl.UpdateRequestsStatus)
}
