package controller

import (
	"github.com/gofiber/fiber/v2"

	"ewm_backend/internals/features/events/comments/dto"
	"ewm_backend/internals/features/events/comments/service"
	helper "ewm_backend/internals/helpers"
)

type CommentController struct {
	Service *service.CommentService
}

func NewCommentController(svc *service.CommentService) *CommentController {
	return &CommentController{Service: svc}
}

// POST /users/:userId/comments
func (cc *CommentController) CreateComment(c *fiber.Ctx) error {
	userID, err := helper.ParamInt64(c, "userId")
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := cc.Service.CreateComment(c.UserContext(), userID, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, out)
}

// PATCH /users/:userId/comments/:commentId
func (cc *CommentController) UpdateComment(c *fiber.Ctx) error {
	userID, id, err := ids(c, "userId", "commentId")
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := cc.Service.UpdateUserComment(c.UserContext(), userID, id, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// DELETE /users/:userId/comments/:commentId
func (cc *CommentController) RemoveComment(c *fiber.Ctx) error {
	userID, id, err := ids(c, "userId", "commentId")
	if err != nil {
		return err
	}
	if err := cc.Service.RemoveUserComment(c.UserContext(), userID, id); err != nil {
		return err
	}
	return helper.JsonNoContent(c)
}

// GET /users/:userId/comments?from=&size=
func (cc *CommentController) GetUserComments(c *fiber.Ctx) error {
	userID, err := helper.ParamInt64(c, "userId")
	if err != nil {
		return err
	}
	page, err := helper.ParsePage(c)
	if err != nil {
		return err
	}
	out, err := cc.Service.GetUserComments(c.UserContext(), userID, page)
	if err != nil {
		return err
	}
	return helper.JsonList(c, out)
}

// GET /users/:userId/comments/:commentId
func (cc *CommentController) GetUserComment(c *fiber.Ctx) error {
	userID, id, err := ids(c, "userId", "commentId")
	if err != nil {
		return err
	}
	out, err := cc.Service.GetUserCommentByID(c.UserContext(), userID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// DELETE /admin/comments/:commentId
func (cc *CommentController) RemoveCommentByAdmin(c *fiber.Ctx) error {
	id, err := helper.ParamInt64(c, "commentId")
	if err != nil {
		return err
	}
	if err := cc.Service.RemoveCommentByAdmin(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonNoContent(c)
}

// GET /admin/comments?events=&users=&rangeStart=&rangeEnd=&from=&size=
func (cc *CommentController) GetCommentsByAdmin(c *fiber.Ctx) error {
	var (
		q   service.AdminCommentQuery
		err error
	)
	if q.Events, err = helper.QueryInt64s(c, "events"); err != nil {
		return err
	}
	if q.Users, err = helper.QueryInt64s(c, "users"); err != nil {
		return err
	}
	if q.RangeStart, err = helper.QueryDateTime(c, "rangeStart"); err != nil {
		return err
	}
	if q.RangeEnd, err = helper.QueryDateTime(c, "rangeEnd"); err != nil {
		return err
	}
	page, err := helper.ParsePage(c)
	if err != nil {
		return err
	}
	out, err := cc.Service.GetCommentsByAdmin(c.UserContext(), q, page)
	if err != nil {
		return err
	}
	return helper.JsonList(c, out)
}

// GET /events/:eventId/comments
func (cc *CommentController) GetEventComments(c *fiber.Ctx) error {
	eventID, err := helper.ParamInt64(c, "eventId")
	if err != nil {
		return err
	}
	out, err := cc.Service.GetCommentsToEvent(c.UserContext(), eventID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, out)
}

// GET /events/:eventId/comments/:commentId
func (cc *CommentController) GetEventComment(c *fiber.Ctx) error {
	eventID, id, err := ids(c, "eventId", "commentId")
	if err != nil {
		return err
	}
	out, err := cc.Service.GetCommentToEventByID(c.UserContext(), eventID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

func ids(c *fiber.Ctx, first, second string) (int64, int64, error) {
	a, err := helper.ParamInt64(c, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := helper.ParamInt64(c, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
