package controller

import (
	"github.com/gofiber/fiber/v2"

	"ewm_backend/internals/features/events/requests/dto"
	"ewm_backend/internals/features/events/requests/service"
	helper "ewm_backend/internals/helpers"
)

type RequestController struct {
	Service *service.RequestService
}

func NewRequestController(svc *service.RequestService) *RequestController {
	return &RequestController{Service: svc}
}

// POST /users/:userId/requests?eventId=
func (rc *RequestController) CreateRequest(c *fiber.Ctx) error {
	userID, err := helper.ParamInt64(c, "userId")
	if err != nil {
		return err
	}
	if c.Query("eventId") == "" {
		return helper.Validation("Required request parameter 'eventId' is not present")
	}
	eventID, err := helper.QueryInt(c, "eventId", 0)
	if err != nil {
		return err
	}
	out, err := rc.Service.CreateRequest(c.UserContext(), userID, int64(eventID))
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, out)
}

// PATCH /users/:userId/requests/:requestId/cancel
func (rc *RequestController) CancelRequest(c *fiber.Ctx) error {
	userID, err := helper.ParamInt64(c, "userId")
	if err != nil {
		return err
	}
	requestID, err := helper.ParamInt64(c, "requestId")
	if err != nil {
		return err
	}
	out, err := rc.Service.CancelRequest(c.UserContext(), userID, requestID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// GET /users/:userId/requests
func (rc *RequestController) GetUserRequests(c *fiber.Ctx) error {
	userID, err := helper.ParamInt64(c, "userId")
	if err != nil {
		return err
	}
	out, err := rc.Service.GetUserRequests(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, out)
}

// GET /users/:userId/events/:eventId/requests
func (rc *RequestController) GetRequests(c *fiber.Ctx) error {
	userID, eventID, err := userAndEvent(c)
	if err != nil {
		return err
	}
	out, err := rc.Service.GetRequests(c.UserContext(), userID, eventID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, out)
}

// PATCH /users/:userId/events/:eventId/requests
func (rc *RequestController) UpdateRequestsStatus(c *fiber.Ctx) error {
	userID, eventID, err := userAndEvent(c)
	if err != nil {
		return err
	}
	var req dto.StatusUpdateRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := rc.Service.UpdateRequestsStatus(c.UserContext(), userID, eventID, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

func userAndEvent(c *fiber.Ctx) (int64, int64, error) {
	userID, err := helper.ParamInt64(c, "userId")
	if err != nil {
		return 0, 0, err
	}
	eventID, err := helper.ParamInt64(c, "eventId")
	if err != nil {
		return 0, 0, err
	}
	return userID, eventID, nil
}
