package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"ewm_backend/internals/features/events/comments/dto"
	commentModel "ewm_backend/internals/features/events/comments/model"
	eventDto "ewm_backend/internals/features/events/events/dto"
	eventModel "ewm_backend/internals/features/events/events/model"
	requestModel "ewm_backend/internals/features/events/requests/model"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/helpers/dbtime"
	"ewm_backend/internals/repository"
)

type EventRenderer interface {
	ShortDtos(ctx context.Context, events []eventModel.EventModel, withViews bool) ([]eventDto.EventShortDto, error)
}

// AdminCommentQuery filters the admin listing. Nil slices are absent.
type AdminCommentQuery struct {
	Events     []int64
	Users      []int64
	RangeStart *time.Time
	RangeEnd   *time.Time
}

type CommentService struct {
	Store  repository.Store
	Events EventRenderer
	Log    *zap.Logger
	Now    func() time.Time
}

func NewCommentService(store repository.Store, events EventRenderer, log *zap.Logger) *CommentService {
	return &CommentService{Store: store, Events: events, Log: log.Named("comments"), Now: dbtime.Now}
}

// CreateComment lets a participant with a confirmed request leave one comment
// per event.
func (s *CommentService) CreateComment(ctx context.Context, userID int64, req dto.CommentRequest) (*dto.CommentFullDto, error) {
	if err := req.ValidateCreate(); err != nil {
		return nil, err
	}
	eventID := *req.EventID

	var c *commentModel.CommentModel
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		if err := ensureAuthor(ctx, tx, userID); err != nil {
			return err
		}
		ok, err := tx.EventExists(ctx, eventID)
		if err != nil {
			return err
		}
		if !ok {
			return helper.NotFound("Event with id %d does not exist", eventID)
		}
		ok, err = tx.HasRequestWithStatus(ctx, userID, eventID, requestModel.StatusConfirmed)
		if err != nil {
			return err
		}
		if !ok {
			return helper.Conflict("Request with requester id %d and event id %d does not exist", userID, eventID)
		}
		dup, err := tx.CommentExistsByAuthor(ctx, userID, eventID)
		if err != nil {
			return err
		}
		if dup {
			return helper.Conflict("Comment with author id %d and event id %d exists", userID, eventID)
		}

		c = &commentModel.CommentModel{Text: req.Text, EventID: eventID, AuthorID: userID, Created: s.Now()}
		if err := tx.CreateComment(ctx, c); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return helper.Conflict("Comment with author id %d and event id %d exists", userID, eventID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("comment created", zap.Int64("comment_id", c.ID), zap.Int64("event_id", eventID), zap.Int64("author_id", userID))
	return s.full(ctx, c)
}

func (s *CommentService) UpdateUserComment(ctx context.Context, userID, id int64, req dto.CommentRequest) (*dto.CommentFullDto, error) {
	if err := req.ValidateUpdate(); err != nil {
		return nil, err
	}
	var c *commentModel.CommentModel
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		if err := ensureAuthor(ctx, tx, userID); err != nil {
			return err
		}
		var err error
		c, err = findOwn(ctx, tx, userID, id)
		if err != nil {
			return err
		}
		c.Text = req.Text
		return tx.SaveComment(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return s.full(ctx, c)
}

func (s *CommentService) RemoveUserComment(ctx context.Context, userID, id int64) error {
	return s.Store.InTx(ctx, func(tx repository.Store) error {
		if err := ensureAuthor(ctx, tx, userID); err != nil {
			return err
		}
		if _, err := findOwn(ctx, tx, userID, id); err != nil {
			return err
		}
		return tx.DeleteComment(ctx, id)
	})
}

func (s *CommentService) RemoveCommentByAdmin(ctx context.Context, id int64) error {
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		return tx.DeleteComment(ctx, id)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return helper.NotFound("Comment with id %d does not exist", id)
	}
	if err == nil {
		s.Log.Info("comment removed by admin", zap.Int64("comment_id", id))
	}
	return err
}

func (s *CommentService) GetUserComments(ctx context.Context, userID int64, page repository.Page) ([]dto.CommentFullDto, error) {
	if err := ensureAuthor(ctx, s.Store, userID); err != nil {
		return nil, err
	}
	cs, err := s.Store.ListCommentsByAuthor(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return s.fulls(ctx, cs)
}

func (s *CommentService) GetUserCommentByID(ctx context.Context, userID, id int64) (*dto.CommentFullDto, error) {
	if err := ensureAuthor(ctx, s.Store, userID); err != nil {
		return nil, err
	}
	c, err := findOwn(ctx, s.Store, userID, id)
	if err != nil {
		return nil, err
	}
	return s.full(ctx, c)
}

func (s *CommentService) GetCommentsByAdmin(ctx context.Context, q AdminCommentQuery, page repository.Page) ([]dto.CommentFullDto, error) {
	if q.RangeStart != nil && q.RangeEnd != nil && q.RangeStart.After(*q.RangeEnd) {
		return nil, helper.Validation("The start of the range must be before the end of the range")
	}
	cs, err := s.Store.SearchComments(ctx, repository.CommentFilter{
		Events:     q.Events,
		Authors:    q.Users,
		RangeStart: q.RangeStart,
		RangeEnd:   q.RangeEnd,
	}, page)
	if err != nil {
		return nil, err
	}
	return s.fulls(ctx, cs)
}

func (s *CommentService) GetCommentsToEvent(ctx context.Context, eventID int64) ([]dto.CommentShortDto, error) {
	if err := ensureEvent(ctx, s.Store, eventID); err != nil {
		return nil, err
	}
	cs, err := s.Store.ListCommentsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return dto.ToShorts(cs), nil
}

func (s *CommentService) GetCommentToEventByID(ctx context.Context, eventID, id int64) (*dto.CommentShortDto, error) {
	if err := ensureEvent(ctx, s.Store, eventID); err != nil {
		return nil, err
	}
	c, err := s.Store.FindCommentByEvent(ctx, id, eventID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, helper.NotFound("Comment with id %d and Event id %d does not exist", id, eventID)
	}
	if err != nil {
		return nil, err
	}
	out := dto.ToShort(*c)
	return &out, nil
}

// full reloads c so its author and event are populated.
func (s *CommentService) full(ctx context.Context, c *commentModel.CommentModel) (*dto.CommentFullDto, error) {
	loaded, err := s.Store.FindComment(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	out, err := s.fulls(ctx, []commentModel.CommentModel{*loaded})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *CommentService) fulls(ctx context.Context, cs []commentModel.CommentModel) ([]dto.CommentFullDto, error) {
	events := make([]eventModel.EventModel, len(cs))
	for i := range cs {
		events[i] = cs[i].Event
	}
	shorts, err := s.Events.ShortDtos(ctx, events, false)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommentFullDto, 0, len(cs))
	for i := range cs {
		out = append(out, dto.ToFull(&cs[i], shorts[i]))
	}
	return out, nil
}

func ensureAuthor(ctx context.Context, st repository.Store, userID int64) error {
	ok, err := st.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return helper.NotFound("Author with id %d does not exist", userID)
	}
	return nil
}

func ensureEvent(ctx context.Context, st repository.Store, eventID int64) error {
	ok, err := st.EventExists(ctx, eventID)
	if err != nil {
		return err
	}
	if !ok {
		return helper.NotFound("Event with id %d does not exist", eventID)
	}
	return nil
}

func findOwn(ctx context.Context, st repository.Store, userID, id int64) (*commentModel.CommentModel, error) {
	c, err := st.FindCommentByAuthor(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, helper.NotFound("Comment with id %d and author id %d does not exist", id, userID)
	}
	return c, err
}
