package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ewm_backend/internals/features/events/compilations/dto"
	compilationModel "ewm_backend/internals/features/events/compilations/model"
	eventDto "ewm_backend/internals/features/events/events/dto"
	eventModel "ewm_backend/internals/features/events/events/model"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/repository"
)

// EventRenderer turns events into their short DTOs with counters.
type EventRenderer interface {
	ShortDtos(ctx context.Context, events []eventModel.EventModel, withViews bool) ([]eventDto.EventShortDto, error)
}

type CompilationService struct {
	Store  repository.Store
	Events EventRenderer
	Log    *zap.Logger
}

func NewCompilationService(store repository.Store, events EventRenderer, log *zap.Logger) *CompilationService {
	return &CompilationService{Store: store, Events: events, Log: log.Named("compilations")}
}

func (s *CompilationService) CreateCompilation(ctx context.Context, req dto.CompilationRequest) (*dto.CompilationDto, error) {
	if err := req.ValidateCreate(); err != nil {
		return nil, err
	}
	c := &compilationModel.CompilationModel{
		Title:  *req.Title,
		Pinned: req.Pinned != nil && *req.Pinned,
	}
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		ids, err := existingIDs(ctx, tx, req.Events)
		if err != nil {
			return err
		}
		c.EventIDs = ids
		return tx.CreateCompilation(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("compilation created", zap.Int64("compilation_id", c.ID), zap.Int("events", len(c.EventIDs)))
	return s.render(ctx, c)
}

// UpdateCompilation merges present fields. An absent or empty events list
// keeps the stored one.
func (s *CompilationService) UpdateCompilation(ctx context.Context, id int64, req dto.CompilationRequest) (*dto.CompilationDto, error) {
	var c *compilationModel.CompilationModel
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		var err error
		c, err = find(ctx, tx, id)
		if err != nil {
			return err
		}
		if req.Title != nil {
			c.Title = *req.Title
		}
		if req.Pinned != nil {
			c.Pinned = *req.Pinned
		}
		if len(req.Events) > 0 {
			ids, err := existingIDs(ctx, tx, req.Events)
			if err != nil {
				return err
			}
			c.EventIDs = ids
		}
		return tx.SaveCompilation(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return s.render(ctx, c)
}

func (s *CompilationService) DeleteCompilation(ctx context.Context, id int64) error {
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		return tx.DeleteCompilation(ctx, id)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return helper.NotFound("Compilation with id %d does not exist", id)
	}
	return err
}

func (s *CompilationService) GetCompilations(ctx context.Context, pinned *bool, page repository.Page) ([]dto.CompilationDto, error) {
	cs, err := s.Store.ListCompilations(ctx, pinned, page)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompilationDto, 0, len(cs))
	for i := range cs {
		d, err := s.render(ctx, &cs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

func (s *CompilationService) GetCompilation(ctx context.Context, id int64) (*dto.CompilationDto, error) {
	c, err := find(ctx, s.Store, id)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, c)
}

// render loads the events of c in stored order; ids of events deleted since
// are skipped.
func (s *CompilationService) render(ctx context.Context, c *compilationModel.CompilationModel) (*dto.CompilationDto, error) {
	events, err := s.Store.FindEventsByIDs(ctx, c.EventIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]eventModel.EventModel, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	ordered := make([]eventModel.EventModel, 0, len(events))
	for _, id := range c.EventIDs {
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
		}
	}

	shorts, err := s.Events.ShortDtos(ctx, ordered, true)
	if err != nil {
		return nil, err
	}
	return &dto.CompilationDto{ID: c.ID, Title: c.Title, Pinned: c.Pinned, Events: shorts}, nil
}

func find(ctx context.Context, st repository.Store, id int64) (*compilationModel.CompilationModel, error) {
	c, err := st.FindCompilation(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, helper.NotFound("Compilation with id %d does not exist", id)
	}
	return c, err
}

// existingIDs keeps the ids that name an event, in request order, without
// duplicates. Unknown ids are dropped silently.
func existingIDs(ctx context.Context, st repository.Store, ids []int64) ([]int64, error) {
	out := []int64{}
	if len(ids) == 0 {
		return out, nil
	}
	events, err := st.FindEventsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[int64]bool, len(events))
	for _, e := range events {
		known[e.ID] = true
	}
	for _, id := range ids {
		if known[id] {
			out = append(out, id)
			known[id] = false
		}
	}
	return out, nil
}
