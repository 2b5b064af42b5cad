package gormstore

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	eventModel "ewm_backend/internals/features/events/events/model"
	"ewm_backend/internals/repository"
	"ewm_backend/internals/repository/specification"
)

func (s *Store) events(ctx context.Context) *gorm.DB {
	return s.q(ctx).Model(&eventModel.EventModel{}).Preload("Category").Preload("Initiator")
}

func (s *Store) CreateEvent(ctx context.Context, e *eventModel.EventModel) error {
	if err := s.q(ctx).Omit(clause.Associations).Create(e).Error; err != nil {
		return translate(err)
	}
	return s.reloadEvent(ctx, e)
}

func (s *Store) SaveEvent(ctx context.Context, e *eventModel.EventModel) error {
	if err := s.q(ctx).Omit(clause.Associations).Save(e).Error; err != nil {
		return translate(err)
	}
	return s.reloadEvent(ctx, e)
}

// reloadEvent refreshes associations after a write changed their ids.
func (s *Store) reloadEvent(ctx context.Context, e *eventModel.EventModel) error {
	fresh, err := s.FindEvent(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = *fresh
	return nil
}

func (s *Store) FindEvent(ctx context.Context, id int64) (*eventModel.EventModel, error) {
	var e eventModel.EventModel
	if err := s.events(ctx).Where("events.id = ?", id).First(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *Store) FindEventByInitiator(ctx context.Context, id, initiatorID int64) (*eventModel.EventModel, error) {
	var e eventModel.EventModel
	err := s.events(ctx).Where("events.id = ? AND events.initiator_id = ?", id, initiatorID).First(&e).Error
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *Store) FindPublishedEvent(ctx context.Context, id int64) (*eventModel.EventModel, error) {
	var e eventModel.EventModel
	err := s.events(ctx).Where("events.id = ? AND events.state = ?", id, eventModel.StatePublished).First(&e).Error
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *Store) EventExists(ctx context.Context, id int64) (bool, error) {
	return exists(s.q(ctx).Model(&eventModel.EventModel{}).Where("id = ?", id))
}

func (s *Store) CategoryInUse(ctx context.Context, categoryID int64) (bool, error) {
	return exists(s.q(ctx).Model(&eventModel.EventModel{}).Where("category_id = ?", categoryID))
}

func (s *Store) ListEventsByInitiator(ctx context.Context, initiatorID int64, page repository.Page) ([]eventModel.EventModel, error) {
	var out []eventModel.EventModel
	q := s.events(ctx).Where("events.initiator_id = ?", initiatorID).Order("events.event_date ASC, events.id ASC")
	err := paged(q, page).Find(&out).Error
	return out, translate(err)
}

func (s *Store) SearchEvents(ctx context.Context, f repository.EventFilter, page repository.Page) ([]eventModel.EventModel, error) {
	var out []eventModel.EventModel
	q := specification.Events(f).Apply(s.events(ctx)).Order("events.event_date ASC, events.id ASC")
	err := paged(q, page).Find(&out).Error
	return out, translate(err)
}

func (s *Store) FindEventsByIDs(ctx context.Context, ids []int64) ([]eventModel.EventModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []eventModel.EventModel
	err := s.events(ctx).Where("events.id = ANY(?)", pq.Array(ids)).Order("events.id ASC").Find(&out).Error
	return out, translate(err)
}
