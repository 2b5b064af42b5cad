package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	"ewm_backend/internals/features/events/events/dto"
	eventModel "ewm_backend/internals/features/events/events/model"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/helpers/dbtime"
	"ewm_backend/internals/repository"
)

const (
	minLeadTime    = 2 * time.Hour
	minPublishLead = 1 * time.Hour

	// Java-style %tc rendering used in date conflict messages.
	conflictDateLayout = "Mon Jan 02 15:04:05 MST 2006"
)

var (
	userActions  = []eventModel.StateAction{eventModel.ActionSendToReview, eventModel.ActionCancelReview}
	adminActions = []eventModel.StateAction{eventModel.ActionPublishEvent, eventModel.ActionRejectEvent}
)

// ViewCounter returns unique view counts keyed by event id. Missing keys mean
// zero views.
type ViewCounter interface {
	Views(ctx context.Context, events []eventModel.EventModel) map[int64]int64
}

type EventService struct {
	Store repository.Store
	Views ViewCounter
	Log   *zap.Logger
	Now   func() time.Time
}

func NewEventService(store repository.Store, views ViewCounter, log *zap.Logger) *EventService {
	return &EventService{
		Store: store,
		Views: views,
		Log:   log.Named("events"),
		Now:   dbtime.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, userID int64, req dto.EventRequest) (*dto.EventFullDto, error) {
	if err := req.ValidateCreate(); err != nil {
		return nil, err
	}
	now := s.Now()
	if err := checkFuture(req.EventDate, now); err != nil {
		return nil, err
	}

	var ev *eventModel.EventModel
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		user, err := tx.FindUser(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return helper.NotFound("Initiator with id %d does not exist", userID)
		}
		if err != nil {
			return err
		}
		category, err := findCategory(ctx, tx, *req.Category)
		if err != nil {
			return err
		}

		ev = &eventModel.EventModel{
			Title:             *req.Title,
			Annotation:        *req.Annotation,
			Description:       *req.Description,
			EventDate:         req.EventDate.Time,
			Location:          eventModel.Location{Lat: *req.Location.Lat, Lon: *req.Location.Lon},
			CategoryID:        category.ID,
			InitiatorID:       user.ID,
			Paid:              valueOr(req.Paid, false),
			ParticipantLimit:  valueOr(req.ParticipantLimit, 0),
			RequestModeration: valueOr(req.RequestModeration, true),
			State:             eventModel.StatePending,
			CreatedOn:         now,
		}
		if err := checkLeadTime(ev.EventDate, now); err != nil {
			return err
		}
		return tx.CreateEvent(ctx, ev)
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("event created", zap.Int64("event_id", ev.ID), zap.Int64("initiator_id", userID))
	out := dto.ToFull(ev, dto.Counters{})
	return &out, nil
}

func (s *EventService) UpdateUserEvent(ctx context.Context, userID, eventID int64, req dto.EventRequest) (*dto.EventFullDto, error) {
	now := s.Now()
	if err := checkFuture(req.EventDate, now); err != nil {
		return nil, err
	}

	var ev *eventModel.EventModel
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		var err error
		ev, err = tx.FindEventByInitiator(ctx, eventID, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return helper.NotFound("Event with initiator id %d and id %d does not exist", userID, eventID)
		}
		if err != nil {
			return err
		}
		if ev.State == eventModel.StatePublished {
			return helper.Conflict("You can't edit a published event")
		}

		state, err := resolveState(ev.State, req.StateAction, userActions)
		if err != nil {
			return err
		}
		if err := checkTransition(ev.State, state); err != nil {
			return err
		}
		if err := merge(ctx, tx, ev, req, state, now); err != nil {
			return err
		}
		if err := checkLeadTime(ev.EventDate, now); err != nil {
			return err
		}
		return tx.SaveEvent(ctx, ev)
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("event updated by initiator", zap.Int64("event_id", ev.ID), zap.String("state", string(ev.State)))
	return s.full(ctx, ev, false)
}

func (s *EventService) UpdateEventByAdmin(ctx context.Context, eventID int64, req dto.EventRequest) (*dto.EventFullDto, error) {
	now := s.Now()
	if err := checkFuture(req.EventDate, now); err != nil {
		return nil, err
	}

	var ev *eventModel.EventModel
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		var err error
		ev, err = tx.FindEvent(ctx, eventID)
		if errors.Is(err, repository.ErrNotFound) {
			return helper.NotFound("Event with id %d does not exist", eventID)
		}
		if err != nil {
			return err
		}

		state, err := resolveState(ev.State, req.StateAction, adminActions)
		if err != nil {
			return err
		}
		if err := checkTransition(ev.State, state); err != nil {
			return err
		}
		if err := merge(ctx, tx, ev, req, state, now); err != nil {
			return err
		}
		if err := checkLeadTime(ev.EventDate, now); err != nil {
			return err
		}
		if ev.PublishedOn != nil && ev.EventDate.Before(ev.PublishedOn.Add(minPublishLead)) {
			return helper.Conflict("%s cannot be earlier than one hour from the publishing date",
				ev.EventDate.Format(conflictDateLayout))
		}
		return tx.SaveEvent(ctx, ev)
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("event updated by admin", zap.Int64("event_id", ev.ID), zap.String("state", string(ev.State)))
	return s.full(ctx, ev, true)
}

func (s *EventService) GetUserEvents(ctx context.Context, userID int64, page repository.Page) ([]dto.EventShortDto, error) {
	if err := s.ensureInitiator(ctx, userID); err != nil {
		return nil, err
	}
	events, err := s.Store.ListEventsByInitiator(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return s.ShortDtos(ctx, events, false)
}

func (s *EventService) GetUserEventByID(ctx context.Context, userID, eventID int64) (*dto.EventFullDto, error) {
	if err := s.ensureInitiator(ctx, userID); err != nil {
		return nil, err
	}
	ev, err := s.Store.FindEventByInitiator(ctx, eventID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, helper.NotFound("Event with initiator id %d and id %d does not exist", userID, eventID)
	}
	if err != nil {
		return nil, err
	}
	return s.full(ctx, ev, false)
}

func (s *EventService) GetEventsByAdmin(ctx context.Context, q dto.AdminEventQuery, page repository.Page) ([]dto.EventFullDto, error) {
	if err := checkRange(q.RangeStart, q.RangeEnd); err != nil {
		return nil, err
	}
	filter := repository.EventFilter{
		Initiators: q.Users,
		Categories: q.Categories,
		RangeStart: q.RangeStart,
		RangeEnd:   q.RangeEnd,
	}
	if q.States != nil {
		filter.States = make([]eventModel.EventState, 0, len(q.States))
		for _, raw := range q.States {
			st, err := eventModel.ParseEventState(raw)
			if err != nil {
				return nil, helper.Validation("Unknown event state: UNSUPPORTED_STATUS")
			}
			filter.States = append(filter.States, st)
		}
	}

	events, err := s.Store.SearchEvents(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	counters, err := s.counters(ctx, events, true)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventFullDto, 0, len(events))
	for i := range events {
		out = append(out, dto.ToFull(&events[i], counters[events[i].ID]))
	}
	return out, nil
}

// GetPublicEvents searches published events. The VIEWS sort key is accepted
// but results stay in event-date order.
func (s *EventService) GetPublicEvents(ctx context.Context, q dto.PublicEventQuery, page repository.Page) ([]dto.EventShortDto, error) {
	sortKey := q.Sort
	if sortKey == "" {
		sortKey = string(eventModel.SortEventDate)
	}
	if _, err := eventModel.ParseEventSort(sortKey); err != nil {
		return nil, helper.Validation("Unknown sort type: UNSUPPORTED_STATUS")
	}
	if err := checkRange(q.RangeStart, q.RangeEnd); err != nil {
		return nil, err
	}

	events, err := s.Store.SearchEvents(ctx, repository.EventFilter{
		States:        []eventModel.EventState{eventModel.StatePublished},
		Categories:    q.Categories,
		Text:          q.Text,
		Paid:          q.Paid,
		OnlyAvailable: q.OnlyAvailable,
		RangeStart:    q.RangeStart,
		RangeEnd:      q.RangeEnd,
	}, page)
	if err != nil {
		return nil, err
	}
	return s.ShortDtos(ctx, events, true)
}

func (s *EventService) GetPublicEventByID(ctx context.Context, eventID int64) (*dto.EventFullDto, error) {
	ev, err := s.Store.FindPublishedEvent(ctx, eventID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, helper.NotFound("Event with id %d does not exist", eventID)
	}
	if err != nil {
		return nil, err
	}
	return s.full(ctx, ev, true)
}

// ShortDtos renders events with their counters. Views are only fetched when
// withViews is set since they cost a call to the stats service.
func (s *EventService) ShortDtos(ctx context.Context, events []eventModel.EventModel, withViews bool) ([]dto.EventShortDto, error) {
	counters, err := s.counters(ctx, events, withViews)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventShortDto, 0, len(events))
	for i := range events {
		out = append(out, dto.ToShort(&events[i], counters[events[i].ID]))
	}
	return out, nil
}

func (s *EventService) full(ctx context.Context, ev *eventModel.EventModel, withViews bool) (*dto.EventFullDto, error) {
	counters, err := s.counters(ctx, []eventModel.EventModel{*ev}, withViews)
	if err != nil {
		return nil, err
	}
	out := dto.ToFull(ev, counters[ev.ID])
	return &out, nil
}

func (s *EventService) counters(ctx context.Context, events []eventModel.EventModel, withViews bool) (map[int64]dto.Counters, error) {
	out := make(map[int64]dto.Counters, len(events))
	if len(events) == 0 {
		return out, nil
	}
	ids := make([]int64, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}

	confirmed, err := s.Store.CountConfirmedByEvents(ctx, ids)
	if err != nil {
		return nil, err
	}
	comments, err := s.Store.CountCommentsByEvents(ctx, ids)
	if err != nil {
		return nil, err
	}
	var views map[int64]int64
	if withViews && s.Views != nil {
		views = s.Views.Views(ctx, events)
	}

	for _, id := range ids {
		out[id] = dto.Counters{Confirmed: confirmed[id], Comments: comments[id], Views: views[id]}
	}
	return out, nil
}

func (s *EventService) ensureInitiator(ctx context.Context, userID int64) error {
	ok, err := s.Store.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return helper.NotFound("Initiator with id %d does not exist", userID)
	}
	return nil
}

// resolveState returns the target state of the requested action, or the
// current state when no action is given.
func resolveState(current eventModel.EventState, raw *string, allowed []eventModel.StateAction) (eventModel.EventState, error) {
	if raw == nil {
		return current, nil
	}
	action, err := eventModel.ParseStateAction(*raw)
	if err != nil {
		return "", helper.Validation("Unknown state action: %s", *raw)
	}
	if !slices.Contains(allowed, action) {
		return "", helper.Conflict("Unknown state action: UNSUPPORTED_STATUS")
	}
	return action.Target(), nil
}

func checkTransition(current, next eventModel.EventState) error {
	if next == eventModel.StatePublished && current != eventModel.StatePending {
		return helper.Conflict("An event can only be published if it is in the publish pending state")
	}
	if next == eventModel.StateCanceled && current == eventModel.StatePublished {
		return helper.Conflict("An event can only be canceled if it is not published")
	}
	return nil
}

// merge applies the present draft fields to ev. createdOn is never touched.
func merge(ctx context.Context, tx repository.Store, ev *eventModel.EventModel, req dto.EventRequest, state eventModel.EventState, now time.Time) error {
	if req.Category != nil {
		category, err := findCategory(ctx, tx, *req.Category)
		if err != nil {
			return err
		}
		ev.CategoryID = category.ID
		ev.Category = *category
	}
	if req.Title != nil {
		ev.Title = *req.Title
	}
	if req.Annotation != nil {
		ev.Annotation = *req.Annotation
	}
	if req.Description != nil {
		ev.Description = *req.Description
	}
	if req.Location != nil {
		ev.Location = eventModel.Location{Lat: *req.Location.Lat, Lon: *req.Location.Lon}
	}
	if req.EventDate != nil {
		ev.EventDate = req.EventDate.Time
	}
	if req.Paid != nil {
		ev.Paid = *req.Paid
	}
	if req.ParticipantLimit != nil {
		ev.ParticipantLimit = *req.ParticipantLimit
	}
	if req.RequestModeration != nil {
		ev.RequestModeration = *req.RequestModeration
	}

	if state == eventModel.StatePublished {
		ev.PublishedOn = &now
	}
	ev.State = state
	return nil
}

func findCategory(ctx context.Context, tx repository.Store, id int64) (*categoryModel.CategoryModel, error) {
	category, err := tx.FindCategory(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, helper.NotFound("Category with id %d does not exist", id)
	}
	return category, err
}

func checkFuture(d *dbtime.DateTime, now time.Time) error {
	if d != nil && !d.After(now) {
		return helper.Validation("Field: eventDate. Error: must be a date in the future. Value: %s", d)
	}
	return nil
}

func checkLeadTime(eventDate, now time.Time) error {
	if eventDate.Before(now.Add(minLeadTime)) {
		return helper.Conflict("%s cannot be earlier than two hours from the current moment",
			eventDate.Format(conflictDateLayout))
	}
	return nil
}

func checkRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return helper.Validation("The start of the range must be before the end of the range")
	}
	return nil
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
