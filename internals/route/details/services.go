package details

import (
	"go.uber.org/zap"

	categoryService "ewm_backend/internals/features/events/categories/service"
	commentService "ewm_backend/internals/features/events/comments/service"
	compilationService "ewm_backend/internals/features/events/compilations/service"
	eventController "ewm_backend/internals/features/events/events/controller"
	eventService "ewm_backend/internals/features/events/events/service"
	requestService "ewm_backend/internals/features/events/requests/service"
	statsService "ewm_backend/internals/features/stats/service"
	userService "ewm_backend/internals/features/users/user/service"
	"ewm_backend/internals/repository"
)

type Services struct {
	Users        *userService.UserService
	Categories   *categoryService.CategoryService
	Events       *eventService.EventService
	Requests     *requestService.RequestService
	Compilations *compilationService.CompilationService
	Comments     *commentService.CommentService
	Hits         eventController.HitRecorder
}

// NewServices wires every feature service to one store. stats may be nil,
// in which case views stay 0 and hits are not recorded.
func NewServices(store repository.Store, stats *statsService.StatsService, log *zap.Logger) Services {
	var (
		views eventService.ViewCounter
		hits  eventController.HitRecorder
	)
	if stats != nil {
		views, hits = stats, stats
	}
	events := eventService.NewEventService(store, views, log)
	return Services{
		Users:        userService.NewUserService(store, log),
		Categories:   categoryService.NewCategoryService(store, log),
		Events:       events,
		Requests:     requestService.NewRequestService(store, log),
		Compilations: compilationService.NewCompilationService(store, events, log),
		Comments:     commentService.NewCommentService(store, events, log),
		Hits:         hits,
	}
}
