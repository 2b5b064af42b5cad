package route

import (
	"github.com/gofiber/fiber/v2"

	commentController "ewm_backend/internals/features/events/comments/controller"
	commentService "ewm_backend/internals/features/events/comments/service"
)

func CommentPublicRoutes(public fiber.Router, svc *commentService.CommentService) {
	ctrl := commentController.NewCommentController(svc)

	public.Get("/events/:eventId/comments", ctrl.GetEventComments)
	public.Get("/events/:eventId/comments/:commentId", ctrl.GetEventComment)
}

// CommentUserRoutes mounts under /users/:userId.
func CommentUserRoutes(user fiber.Router, svc *commentService.CommentService) {
	ctrl := commentController.NewCommentController(svc)

	comments := user.Group("/comments")
	comments.Post("/", ctrl.CreateComment)
	comments.Get("/", ctrl.GetUserComments)
	comments.Get("/:commentId", ctrl.GetUserComment)
	comments.Patch("/:commentId", ctrl.UpdateComment)
	comments.Delete("/:commentId", ctrl.RemoveComment)
}

func CommentAdminRoutes(admin fiber.Router, svc *commentService.CommentService) {
	ctrl := commentController.NewCommentController(svc)

	comments := admin.Group("/comments")
	comments.Get("/", ctrl.GetCommentsByAdmin)
	comments.Delete("/:commentId", ctrl.RemoveCommentByAdmin)
}
