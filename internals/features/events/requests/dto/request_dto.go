package dto

import (
	requestModel "ewm_backend/internals/features/events/requests/model"
	"ewm_backend/internals/helpers/dbtime"
)

type ParticipationRequestDto struct {
	ID        int64           `json:"id"`
	Event     int64           `json:"event"`
	Requester int64           `json:"requester"`
	Status    string          `json:"status"`
	Created   dbtime.DateTime `json:"created"`
}

type StatusUpdateRequest struct {
	RequestIDs []int64 `json:"requestIds" validate:"required,min=1"`
	Status     string  `json:"status" validate:"required"`
}

type StatusUpdateResult struct {
	ConfirmedRequests []ParticipationRequestDto `json:"confirmedRequests"`
	RejectedRequests  []ParticipationRequestDto `json:"rejectedRequests"`
}

func FromModel(m requestModel.RequestModel) ParticipationRequestDto {
	return ParticipationRequestDto{
		ID:        m.ID,
		Event:     m.EventID,
		Requester: m.RequesterID,
		Status:    string(m.Status),
		Created:   dbtime.From(m.Created),
	}
}

func FromModels(ms []requestModel.RequestModel) []ParticipationRequestDto {
	out := make([]ParticipationRequestDto, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
