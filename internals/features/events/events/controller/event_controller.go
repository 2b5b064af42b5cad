package controller

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ewm_backend/internals/features/events/events/dto"
	"ewm_backend/internals/features/events/events/service"
	helper "ewm_backend/internals/helpers"
)

// HitRecorder stores one view of a public endpoint.
type HitRecorder interface {
	SaveHit(ctx context.Context, uri, ip string)
}

type EventController struct {
	Service *service.EventService
	Hits    HitRecorder
}

func NewEventController(svc *service.EventService, hits HitRecorder) *EventController {
	return &EventController{Service: svc, Hits: hits}
}

// ---------- private: /users/:userId/events ----------

func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	userID, err := helper.ParamInt64(c, "userId")
	if err != nil {
		return err
	}
	var req dto.EventRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := ec.Service.CreateEvent(c.UserContext(), userID, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, out)
}

func (ec *EventController) UpdateUserEvent(c *fiber.Ctx) error {
	userID, eventID, err := userAndEvent(c)
	if err != nil {
		return err
	}
	var req dto.EventRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := ec.Service.UpdateUserEvent(c.UserContext(), userID, eventID, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

func (ec *EventController) GetUserEvents(c *fiber.Ctx) error {
	userID, err := helper.ParamInt64(c, "userId")
	if err != nil {
		return err
	}
	page, err := helper.ParsePage(c)
	if err != nil {
		return err
	}
	out, err := ec.Service.GetUserEvents(c.UserContext(), userID, page)
	if err != nil {
		return err
	}
	return helper.JsonList(c, out)
}

func (ec *EventController) GetUserEventByID(c *fiber.Ctx) error {
	userID, eventID, err := userAndEvent(c)
	if err != nil {
		return err
	}
	out, err := ec.Service.GetUserEventByID(c.UserContext(), userID, eventID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// ---------- admin: /admin/events ----------

func (ec *EventController) UpdateEventByAdmin(c *fiber.Ctx) error {
	eventID, err := helper.ParamInt64(c, "eventId")
	if err != nil {
		return err
	}
	var req dto.EventRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	out, err := ec.Service.UpdateEventByAdmin(c.UserContext(), eventID, req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// GET /admin/events?users=&states=&categories=&rangeStart=&rangeEnd=&from=&size=
func (ec *EventController) GetEventsByAdmin(c *fiber.Ctx) error {
	var (
		q   dto.AdminEventQuery
		err error
	)
	if q.Users, err = helper.QueryInt64s(c, "users"); err != nil {
		return err
	}
	q.States = helper.QueryStrings(c, "states")
	if q.Categories, err = helper.QueryInt64s(c, "categories"); err != nil {
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
	out, err := ec.Service.GetEventsByAdmin(c.UserContext(), q, page)
	if err != nil {
		return err
	}
	return helper.JsonList(c, out)
}

// ---------- public: /events ----------

// GET /events?text=&categories=&paid=&rangeStart=&rangeEnd=&onlyAvailable=&sort=&from=&size=
func (ec *EventController) GetPublicEvents(c *fiber.Ctx) error {
	var (
		q   dto.PublicEventQuery
		err error
	)
	q.Text = strings.TrimSpace(c.Query("text"))
	q.Sort = strings.TrimSpace(c.Query("sort"))
	if q.Categories, err = helper.QueryInt64s(c, "categories"); err != nil {
		return err
	}
	if q.Paid, err = helper.QueryBool(c, "paid"); err != nil {
		return err
	}
	avail, err := helper.QueryBool(c, "onlyAvailable")
	if err != nil {
		return err
	}
	q.OnlyAvailable = avail != nil && *avail
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

	out, err := ec.Service.GetPublicEvents(c.UserContext(), q, page)
	if err != nil {
		return err
	}
	ec.hit(c)
	return helper.JsonList(c, out)
}

// GET /events/:eventId
func (ec *EventController) GetPublicEventByID(c *fiber.Ctx) error {
	eventID, err := helper.ParamInt64(c, "eventId")
	if err != nil {
		return err
	}
	out, err := ec.Service.GetPublicEventByID(c.UserContext(), eventID)
	if err != nil {
		return err
	}
	ec.hit(c)
	return helper.JsonOK(c, out)
}

func (ec *EventController) hit(c *fiber.Ctx) {
	if ec.Hits == nil {
		return
	}
	ec.Hits.SaveHit(c.UserContext(), c.Path(), c.IP())
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
