package route

import (
	"github.com/gofiber/fiber/v2"

	eventController "ewm_backend/internals/features/events/events/controller"
	eventService "ewm_backend/internals/features/events/events/service"
)

func EventPublicRoutes(public fiber.Router, svc *eventService.EventService, hits eventController.HitRecorder) {
	ctrl := eventController.NewEventController(svc, hits)

	events := public.Group("/events")
	events.Get("/", ctrl.GetPublicEvents)
	events.Get("/:eventId", ctrl.GetPublicEventByID)
}

// EventUserRoutes mounts under /users/:userId.
func EventUserRoutes(user fiber.Router, svc *eventService.EventService) {
	ctrl := eventController.NewEventController(svc, nil)

	events := user.Group("/events")
	events.Post("/", ctrl.CreateEvent)
	events.Get("/", ctrl.GetUserEvents)
	events.Get("/:eventId", ctrl.GetUserEventByID)
	events.Patch("/:eventId", ctrl.UpdateUserEvent)
}

func EventAdminRoutes(admin fiber.Router, svc *eventService.EventService) {
	ctrl := eventController.NewEventController(svc, nil)

	events := admin.Group("/events")
	events.Get("/", ctrl.GetEventsByAdmin)
	events.Patch("/:eventId", ctrl.UpdateEventByAdmin)
}
