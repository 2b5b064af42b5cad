package dto

import (
	commentModel "ewm_backend/internals/features/events/comments/model"
	eventDto "ewm_backend/internals/features/events/events/dto"
	userDto "ewm_backend/internals/features/users/user/dto"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/helpers/dbtime"
)

// CommentRequest carries eventId only on create.
type CommentRequest struct {
	EventID *int64 `json:"eventId"`
	Text    string `json:"text" validate:"required,notblank,min=20,max=2000"`
}

func (r CommentRequest) ValidateCreate() error {
	if r.EventID == nil {
		return helper.Validation("Field: eventId. Error: Event cannot be null. Value: null")
	}
	if *r.EventID <= 0 {
		return helper.Validation("Field: eventId. Error: Event must be a strictly positive number. Value: %d", *r.EventID)
	}
	return nil
}

func (r CommentRequest) ValidateUpdate() error {
	if r.EventID != nil {
		return helper.Validation("Field: eventId. Error: Event must be null. Value: %d", *r.EventID)
	}
	return nil
}

type CommentFullDto struct {
	ID      int64                  `json:"id"`
	Text    string                 `json:"text"`
	Event   eventDto.EventShortDto `json:"event"`
	Author  userDto.UserShortDto   `json:"author"`
	Created dbtime.DateTime        `json:"created"`
}

type CommentShortDto struct {
	ID         int64           `json:"id"`
	Text       string          `json:"text"`
	AuthorName string          `json:"authorName"`
	Created    dbtime.DateTime `json:"created"`
}

func ToFull(c *commentModel.CommentModel, event eventDto.EventShortDto) CommentFullDto {
	return CommentFullDto{
		ID:      c.ID,
		Text:    c.Text,
		Event:   event,
		Author:  userDto.ToShort(c.Author),
		Created: dbtime.From(c.Created),
	}
}

func ToShort(c commentModel.CommentModel) CommentShortDto {
	return CommentShortDto{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.Author.Name,
		Created:    dbtime.From(c.Created),
	}
}

func ToShorts(cs []commentModel.CommentModel) []CommentShortDto {
	out := make([]CommentShortDto, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToShort(c))
	}
	return out
}
