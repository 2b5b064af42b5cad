package gormstore

import (
	"context"

	"github.com/lib/pq"

	requestModel "ewm_backend/internals/features/events/requests/model"
)

func (s *Store) CreateRequest(ctx context.Context, r *requestModel.RequestModel) error {
	return translate(s.q(ctx).Create(r).Error)
}

func (s *Store) SaveRequests(ctx context.Context, rs []requestModel.RequestModel) error {
	if len(rs) == 0 {
		return nil
	}
	return translate(s.q(ctx).Save(&rs).Error)
}

func (s *Store) RequestExists(ctx context.Context, requesterID, eventID int64) (bool, error) {
	return exists(s.q(ctx).Model(&requestModel.RequestModel{}).
		Where("requester_id = ? AND event_id = ?", requesterID, eventID))
}

func (s *Store) HasRequestWithStatus(ctx context.Context, requesterID, eventID int64, status requestModel.RequestStatus) (bool, error) {
	return exists(s.q(ctx).Model(&requestModel.RequestModel{}).
		Where("requester_id = ? AND event_id = ? AND status = ?", requesterID, eventID, status))
}

func (s *Store) CountRequests(ctx context.Context, eventID int64, status requestModel.RequestStatus) (int64, error) {
	var n int64
	err := s.q(ctx).Model(&requestModel.RequestModel{}).
		Where("event_id = ? AND status = ?", eventID, status).
		Count(&n).Error
	return n, translate(err)
}

func (s *Store) CountConfirmedByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		EventID int64
		Total   int64
	}
	err := s.q(ctx).Model(&requestModel.RequestModel{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id = ANY(?) AND status = ?", pq.Array(eventIDs), requestModel.StatusConfirmed).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, r := range rows {
		out[r.EventID] = r.Total
	}
	return out, nil
}

func (s *Store) FindRequestByRequester(ctx context.Context, id, requesterID int64) (*requestModel.RequestModel, error) {
	var r requestModel.RequestModel
	if err := s.q(ctx).Where("id = ? AND requester_id = ?", id, requesterID).First(&r).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (s *Store) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]requestModel.RequestModel, error) {
	var out []requestModel.RequestModel
	err := s.q(ctx).Where("requester_id = ?", requesterID).Order("id ASC").Find(&out).Error
	return out, translate(err)
}

func (s *Store) ListRequestsByEvent(ctx context.Context, eventID int64) ([]requestModel.RequestModel, error) {
	var out []requestModel.RequestModel
	err := s.q(ctx).Where("event_id = ?", eventID).Order("id ASC").Find(&out).Error
	return out, translate(err)
}

func (s *Store) FindPendingRequests(ctx context.Context, ids []int64, eventID int64) ([]requestModel.RequestModel, error) {
	var out []requestModel.RequestModel
	err := s.q(ctx).
		Where("id = ANY(?) AND event_id = ? AND status = ?", pq.Array(ids), eventID, requestModel.StatusPending).
		Order("id ASC").
		Find(&out).Error
	return out, translate(err)
}
