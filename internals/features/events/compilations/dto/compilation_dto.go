package dto

import (
	"strings"

	eventDto "ewm_backend/internals/features/events/events/dto"
	helper "ewm_backend/internals/helpers"
)

type CompilationRequest struct {
	Title  *string `json:"title" validate:"omitnil,max=50"`
	Pinned *bool   `json:"pinned"`
	Events []int64 `json:"events"`
}

func (r CompilationRequest) ValidateCreate() error {
	if r.Title == nil || strings.TrimSpace(*r.Title) == "" {
		return helper.Validation("Field: title. Error: must not be blank. Value: null")
	}
	return nil
}

type CompilationDto struct {
	ID     int64                    `json:"id"`
	Title  string                   `json:"title"`
	Pinned bool                     `json:"pinned"`
	Events []eventDto.EventShortDto `json:"events"`
}
