package dto

import (
	categoryModel "ewm_backend/internals/features/events/categories/model"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required,notblank,min=2,max=50"`
}

type CategoryDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromModel(m categoryModel.CategoryModel) CategoryDto {
	return CategoryDto{ID: m.ID, Name: m.Name}
}

func FromModels(ms []categoryModel.CategoryModel) []CategoryDto {
	out := make([]CategoryDto, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
