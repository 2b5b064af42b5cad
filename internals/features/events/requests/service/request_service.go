package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	eventModel "ewm_backend/internals/features/events/events/model"
	"ewm_backend/internals/features/events/requests/dto"
	requestModel "ewm_backend/internals/features/events/requests/model"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/helpers/dbtime"
	"ewm_backend/internals/repository"
)

type RequestService struct {
	Store repository.Store
	Log   *zap.Logger
	Now   func() time.Time
}

func NewRequestService(store repository.Store, log *zap.Logger) *RequestService {
	return &RequestService{Store: store, Log: log.Named("requests"), Now: dbtime.Now}
}

// CreateRequest files a participation request. It is confirmed immediately
// when the event has no limit or does not moderate requests.
func (s *RequestService) CreateRequest(ctx context.Context, userID, eventID int64) (*dto.ParticipationRequestDto, error) {
	var req *requestModel.RequestModel
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		ok, err := tx.UserExists(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return helper.NotFound("Requester with id %d does not exist", userID)
		}
		ev, err := tx.FindEvent(ctx, eventID)
		if errors.Is(err, repository.ErrNotFound) {
			return helper.NotFound("Event with id %d does not exist", eventID)
		}
		if err != nil {
			return err
		}

		dup, err := tx.RequestExists(ctx, userID, eventID)
		if err != nil {
			return err
		}
		if dup {
			return helper.Conflict("Request with requester id %d and id %d exists", userID, eventID)
		}
		if ev.InitiatorID == userID {
			return helper.Conflict("Event with initiator id %d and id %d exists", userID, eventID)
		}
		if ev.State != eventModel.StatePublished {
			return helper.Conflict("You can't participate in an unpublished event")
		}
		if err := checkLimit(ctx, tx, ev); err != nil {
			return err
		}

		status := requestModel.StatusPending
		if ev.AutoConfirms() {
			status = requestModel.StatusConfirmed
		}
		req = &requestModel.RequestModel{
			EventID:     eventID,
			RequesterID: userID,
			Status:      status,
			Created:     s.Now(),
		}
		if err := tx.CreateRequest(ctx, req); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return helper.Conflict("Request with requester id %d and id %d exists", userID, eventID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("request created",
		zap.Int64("request_id", req.ID),
		zap.Int64("event_id", eventID),
		zap.String("status", string(req.Status)),
	)
	out := dto.FromModel(*req)
	return &out, nil
}

// CancelRequest sets CANCELED whatever the current status is.
func (s *RequestService) CancelRequest(ctx context.Context, userID, requestID int64) (*dto.ParticipationRequestDto, error) {
	var req *requestModel.RequestModel
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		ok, err := tx.UserExists(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return helper.NotFound("Requester with id %d does not exist", userID)
		}
		req, err = tx.FindRequestByRequester(ctx, requestID, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return helper.NotFound("Participation request with id %d and requester id %d does not exist", requestID, userID)
		}
		if err != nil {
			return err
		}
		if ok, err = tx.EventExists(ctx, req.EventID); err != nil {
			return err
		} else if !ok {
			return helper.NotFound("Event with id %d does not exist", req.EventID)
		}
		req.Status = requestModel.StatusCanceled
		return tx.SaveRequests(ctx, []requestModel.RequestModel{*req})
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("request canceled", zap.Int64("request_id", requestID), zap.Int64("requester_id", userID))
	out := dto.FromModel(*req)
	return &out, nil
}

func (s *RequestService) GetUserRequests(ctx context.Context, userID int64) ([]dto.ParticipationRequestDto, error) {
	ok, err := s.Store.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, helper.NotFound("Requester with id %d does not exist", userID)
	}
	rs, err := s.Store.ListRequestsByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(rs), nil
}

// GetRequests lists the requests filed for an event owned by userID.
func (s *RequestService) GetRequests(ctx context.Context, userID, eventID int64) ([]dto.ParticipationRequestDto, error) {
	if _, err := s.ownedEvent(ctx, s.Store, userID, eventID); err != nil {
		return nil, err
	}
	rs, err := s.Store.ListRequestsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(rs), nil
}

// UpdateRequestsStatus confirms or rejects pending requests of an event in
// fetch order. Confirmations beyond the participant limit are rejected.
func (s *RequestService) UpdateRequestsStatus(ctx context.Context, userID, eventID int64, req dto.StatusUpdateRequest) (*dto.StatusUpdateResult, error) {
	target, err := requestModel.ParseRequestStatus(req.Status)
	if err != nil || (target != requestModel.StatusConfirmed && target != requestModel.StatusRejected) {
		return nil, helper.Validation("Unknown participation request status: UNSUPPORTED_STATUS")
	}

	result := &dto.StatusUpdateResult{
		ConfirmedRequests: []dto.ParticipationRequestDto{},
		RejectedRequests:  []dto.ParticipationRequestDto{},
	}
	err = s.Store.InTx(ctx, func(tx repository.Store) error {
		ev, err := s.ownedEvent(ctx, tx, userID, eventID)
		if err != nil {
			return err
		}
		if err := checkLimit(ctx, tx, ev); err != nil {
			return err
		}

		pending, err := tx.FindPendingRequests(ctx, req.RequestIDs, eventID)
		if err != nil {
			return err
		}
		if len(pending) != len(req.RequestIDs) {
			return helper.Conflict("The status can only be changed for participations in the pending state")
		}
		if target == requestModel.StatusConfirmed && ev.AutoConfirms() {
			return nil
		}

		confirmed, err := tx.CountRequests(ctx, eventID, requestModel.StatusConfirmed)
		if err != nil {
			return err
		}
		for i := range pending {
			r := &pending[i]
			if target == requestModel.StatusConfirmed && int64(ev.ParticipantLimit) > confirmed {
				r.Status = requestModel.StatusConfirmed
				confirmed++
				result.ConfirmedRequests = append(result.ConfirmedRequests, dto.FromModel(*r))
				continue
			}
			r.Status = requestModel.StatusRejected
			result.RejectedRequests = append(result.RejectedRequests, dto.FromModel(*r))
		}
		return tx.SaveRequests(ctx, pending)
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("request statuses updated",
		zap.Int64("event_id", eventID),
		zap.String("status", string(target)),
		zap.Int("confirmed", len(result.ConfirmedRequests)),
		zap.Int("rejected", len(result.RejectedRequests)),
	)
	return result, nil
}

func (s *RequestService) ownedEvent(ctx context.Context, st repository.Store, userID, eventID int64) (*eventModel.EventModel, error) {
	ok, err := st.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, helper.NotFound("Initiator with id %d does not exist", userID)
	}
	ev, err := st.FindEventByInitiator(ctx, eventID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, helper.NotFound("Event with id %d and initiator id %d does not exist", eventID, userID)
	}
	return ev, err
}

// checkLimit rejects when a limited event already has limit confirmations.
func checkLimit(ctx context.Context, tx repository.Store, ev *eventModel.EventModel) error {
	if !ev.HasLimit() {
		return nil
	}
	confirmed, err := tx.CountRequests(ctx, ev.ID, requestModel.StatusConfirmed)
	if err != nil {
		return err
	}
	if confirmed >= int64(ev.ParticipantLimit) {
		return helper.Conflict("Event request limit reached")
	}
	return nil
}
