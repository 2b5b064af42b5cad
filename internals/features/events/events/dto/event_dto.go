package dto

import (
	"strings"

	categoryDto "ewm_backend/internals/features/events/categories/dto"
	eventModel "ewm_backend/internals/features/events/events/model"
	userDto "ewm_backend/internals/features/users/user/dto"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/helpers/dbtime"
)

type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lon *float64 `json:"lon" validate:"required"`
}

// EventRequest is the draft for both create and patch. Nil fields are absent;
// on patch they keep the stored value.
type EventRequest struct {
	Title             *string          `json:"title" validate:"omitnil,min=3,max=120"`
	Annotation        *string          `json:"annotation" validate:"omitnil,min=20,max=2000"`
	Description       *string          `json:"description" validate:"omitnil,min=20,max=7000"`
	EventDate         *dbtime.DateTime `json:"eventDate"`
	Location          *LocationRequest `json:"location" validate:"omitnil"`
	Category          *int64           `json:"category" validate:"omitnil,gt=0"`
	Paid              *bool            `json:"paid"`
	ParticipantLimit  *int             `json:"participantLimit" validate:"omitnil,gte=0"`
	RequestModeration *bool            `json:"requestModeration"`
	StateAction       *string          `json:"stateAction"`
}

// ValidateCreate adds the create-only rules on top of the struct tags.
func (r EventRequest) ValidateCreate() error {
	switch {
	case blank(r.Title):
		return missing("title")
	case blank(r.Annotation):
		return missing("annotation")
	case blank(r.Description):
		return missing("description")
	case r.EventDate == nil:
		return missing("eventDate")
	case r.Location == nil:
		return missing("location")
	case r.Category == nil:
		return missing("category")
	case r.StateAction != nil:
		return helper.Validation("Field: stateAction. Error: must be null. Value: %s", *r.StateAction)
	}
	return nil
}

func blank(s *string) bool { return s == nil || strings.TrimSpace(*s) == "" }

func missing(field string) error {
	return helper.Validation("Field: %s. Error: must not be blank. Value: null", field)
}

type LocationDto struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type EventShortDto struct {
	ID                int64                   `json:"id"`
	Title             string                  `json:"title"`
	Annotation        string                  `json:"annotation"`
	EventDate         dbtime.DateTime         `json:"eventDate"`
	Category          categoryDto.CategoryDto `json:"category"`
	Initiator         userDto.UserShortDto    `json:"initiator"`
	Paid              bool                    `json:"paid"`
	ConfirmedRequests int64                   `json:"confirmedRequests"`
	Comments          int64                   `json:"comments"`
	Views             int64                   `json:"views"`
}

type EventFullDto struct {
	EventShortDto
	Description       string           `json:"description"`
	Location          LocationDto      `json:"location"`
	ParticipantLimit  int              `json:"participantLimit"`
	RequestModeration bool             `json:"requestModeration"`
	PublishedOn       *dbtime.DateTime `json:"publishedOn"`
	State             string           `json:"state"`
	CreatedOn         dbtime.DateTime  `json:"createdOn"`
}

// Counters are the derived numbers attached to an event DTO.
type Counters struct {
	Confirmed int64
	Comments  int64
	Views     int64
}

func ToShort(e *eventModel.EventModel, c Counters) EventShortDto {
	return EventShortDto{
		ID:                e.ID,
		Title:             e.Title,
		Annotation:        e.Annotation,
		EventDate:         dbtime.From(e.EventDate),
		Category:          categoryDto.FromModel(e.Category),
		Initiator:         userDto.ToShort(e.Initiator),
		Paid:              e.Paid,
		ConfirmedRequests: c.Confirmed,
		Comments:          c.Comments,
		Views:             c.Views,
	}
}

func ToFull(e *eventModel.EventModel, c Counters) EventFullDto {
	return EventFullDto{
		EventShortDto:     ToShort(e, c),
		Description:       e.Description,
		Location:          LocationDto{Lat: e.Location.Lat, Lon: e.Location.Lon},
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		PublishedOn:       dbtime.FromPtr(e.PublishedOn),
		State:             string(e.State),
		CreatedOn:         dbtime.From(e.CreatedOn),
	}
}
