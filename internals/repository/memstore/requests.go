package memstore

import (
	"context"
	"slices"

	requestModel "ewm_backend/internals/features/events/requests/model"
	"ewm_backend/internals/repository"
)

func (s *Store) CreateRequest(ctx context.Context, r *requestModel.RequestModel) error {
	return s.write(func(t *tables) error {
		if _, ok := t.events[r.EventID]; !ok {
			return errForeignKey
		}
		if _, ok := t.users[r.RequesterID]; !ok {
			return errForeignKey
		}
		for _, existing := range t.requests {
			if existing.RequesterID == r.RequesterID && existing.EventID == r.EventID {
				return repository.ErrDuplicate
			}
		}
		r.ID = t.next("requests")
		t.requests[r.ID] = *r
		return nil
	})
}

func (s *Store) SaveRequests(ctx context.Context, rs []requestModel.RequestModel) error {
	return s.write(func(t *tables) error {
		for _, r := range rs {
			if _, ok := t.requests[r.ID]; !ok {
				return repository.ErrNotFound
			}
		}
		for _, r := range rs {
			t.requests[r.ID] = r
		}
		return nil
	})
}

func (s *Store) RequestExists(ctx context.Context, requesterID, eventID int64) (bool, error) {
	var found bool
	s.read(func(t *tables) {
		for _, r := range t.requests {
			if r.RequesterID == requesterID && r.EventID == eventID {
				found = true
				return
			}
		}
	})
	return found, nil
}

func (s *Store) HasRequestWithStatus(ctx context.Context, requesterID, eventID int64, status requestModel.RequestStatus) (bool, error) {
	var found bool
	s.read(func(t *tables) {
		for _, r := range t.requests {
			if r.RequesterID == requesterID && r.EventID == eventID && r.Status == status {
				found = true
				return
			}
		}
	})
	return found, nil
}

func (s *Store) CountRequests(ctx context.Context, eventID int64, status requestModel.RequestStatus) (int64, error) {
	var n int64
	s.read(func(t *tables) { n = t.countRequests(eventID, status) })
	return n, nil
}

func (s *Store) CountConfirmedByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(eventIDs))
	s.read(func(t *tables) {
		for _, r := range t.requests {
			if r.Status == requestModel.StatusConfirmed && slices.Contains(eventIDs, r.EventID) {
				out[r.EventID]++
			}
		}
	})
	return out, nil
}

func (s *Store) FindRequestByRequester(ctx context.Context, id, requesterID int64) (*requestModel.RequestModel, error) {
	var (
		r  requestModel.RequestModel
		ok bool
	)
	s.read(func(t *tables) { r, ok = t.requests[id] })
	if !ok || r.RequesterID != requesterID {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (s *Store) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]requestModel.RequestModel, error) {
	return s.filterRequests(func(r requestModel.RequestModel) bool { return r.RequesterID == requesterID }), nil
}

func (s *Store) ListRequestsByEvent(ctx context.Context, eventID int64) ([]requestModel.RequestModel, error) {
	return s.filterRequests(func(r requestModel.RequestModel) bool { return r.EventID == eventID }), nil
}

func (s *Store) FindPendingRequests(ctx context.Context, ids []int64, eventID int64) ([]requestModel.RequestModel, error) {
	return s.filterRequests(func(r requestModel.RequestModel) bool {
		return r.EventID == eventID && r.Status == requestModel.StatusPending && slices.Contains(ids, r.ID)
	}), nil
}

func (s *Store) filterRequests(match func(requestModel.RequestModel) bool) []requestModel.RequestModel {
	var out []requestModel.RequestModel
	s.read(func(t *tables) {
		for _, r := range sortedValues(t.requests) {
			if match(r) {
				out = append(out, r)
			}
		}
	})
	return out
}

func (t *tables) countRequests(eventID int64, status requestModel.RequestStatus) int64 {
	var n int64
	for _, r := range t.requests {
		if r.EventID == eventID && r.Status == status {
			n++
		}
	}
	return n
}
