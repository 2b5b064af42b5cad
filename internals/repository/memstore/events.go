package memstore

import (
	"context"
	"errors"
	"slices"
	"sort"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	eventModel "ewm_backend/internals/features/events/events/model"
	requestModel "ewm_backend/internals/features/events/requests/model"
	userModel "ewm_backend/internals/features/users/user/model"
	"ewm_backend/internals/repository"
	"ewm_backend/internals/repository/specification"
)

var errForeignKey = errors.New("foreign key violation")

func (s *Store) CreateEvent(ctx context.Context, e *eventModel.EventModel) error {
	return s.write(func(t *tables) error {
		if err := t.checkEventRefs(e); err != nil {
			return err
		}
		e.ID = t.next("events")
		t.events[e.ID] = strip(*e)
		*e = t.hydrate(t.events[e.ID])
		return nil
	})
}

func (s *Store) SaveEvent(ctx context.Context, e *eventModel.EventModel) error {
	return s.write(func(t *tables) error {
		if _, ok := t.events[e.ID]; !ok {
			return repository.ErrNotFound
		}
		if err := t.checkEventRefs(e); err != nil {
			return err
		}
		t.events[e.ID] = strip(*e)
		*e = t.hydrate(t.events[e.ID])
		return nil
	})
}

func (s *Store) FindEvent(ctx context.Context, id int64) (*eventModel.EventModel, error) {
	return s.findEvent(func(e eventModel.EventModel) bool { return e.ID == id })
}

func (s *Store) FindEventByInitiator(ctx context.Context, id, initiatorID int64) (*eventModel.EventModel, error) {
	return s.findEvent(func(e eventModel.EventModel) bool { return e.ID == id && e.InitiatorID == initiatorID })
}

func (s *Store) FindPublishedEvent(ctx context.Context, id int64) (*eventModel.EventModel, error) {
	return s.findEvent(func(e eventModel.EventModel) bool { return e.ID == id && e.State == eventModel.StatePublished })
}

func (s *Store) findEvent(match func(eventModel.EventModel) bool) (*eventModel.EventModel, error) {
	var (
		out eventModel.EventModel
		ok  bool
	)
	s.read(func(t *tables) {
		for _, e := range t.events {
			if match(e) {
				out, ok = t.hydrate(e), true
				return
			}
		}
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &out, nil
}

func (s *Store) EventExists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	s.read(func(t *tables) { _, ok = t.events[id] })
	return ok, nil
}

func (s *Store) CategoryInUse(ctx context.Context, categoryID int64) (bool, error) {
	var used bool
	s.read(func(t *tables) {
		for _, e := range t.events {
			if e.CategoryID == categoryID {
				used = true
				return
			}
		}
	})
	return used, nil
}

func (s *Store) ListEventsByInitiator(ctx context.Context, initiatorID int64, page repository.Page) ([]eventModel.EventModel, error) {
	return s.SearchEvents(ctx, repository.EventFilter{Initiators: []int64{initiatorID}}, page)
}

func (s *Store) SearchEvents(ctx context.Context, f repository.EventFilter, page repository.Page) ([]eventModel.EventModel, error) {
	spec := specification.Events(f)
	var out []eventModel.EventModel
	s.read(func(t *tables) {
		for _, e := range t.events {
			row := specification.EventRow{Event: &e, Confirmed: t.countRequests(e.ID, requestModel.StatusConfirmed)}
			if spec.Matches(row) {
				out = append(out, t.hydrate(e))
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].EventDate.Before(out[j].EventDate)
		}
		return out[i].ID < out[j].ID
	})
	return window(out, page), nil
}

func (s *Store) FindEventsByIDs(ctx context.Context, ids []int64) ([]eventModel.EventModel, error) {
	var out []eventModel.EventModel
	s.read(func(t *tables) {
		for _, e := range sortedValues(t.events) {
			if slices.Contains(ids, e.ID) {
				out = append(out, t.hydrate(e))
			}
		}
	})
	return out, nil
}

func (t *tables) checkEventRefs(e *eventModel.EventModel) error {
	if _, ok := t.categories[e.CategoryID]; !ok {
		return errForeignKey
	}
	if _, ok := t.users[e.InitiatorID]; !ok {
		return errForeignKey
	}
	return nil
}

func (t *tables) hydrate(e eventModel.EventModel) eventModel.EventModel {
	e.Category = t.categories[e.CategoryID]
	e.Initiator = t.users[e.InitiatorID]
	return e
}

func (t *tables) deleteEvent(id int64) {
	delete(t.events, id)
	for rid, r := range t.requests {
		if r.EventID == id {
			delete(t.requests, rid)
		}
	}
	for cid, c := range t.comments {
		if c.EventID == id {
			delete(t.comments, cid)
		}
	}
}

// strip drops loaded associations; only ids are stored.
func strip(e eventModel.EventModel) eventModel.EventModel {
	e.Category = categoryModel.CategoryModel{}
	e.Initiator = userModel.UserModel{}
	return e
}
