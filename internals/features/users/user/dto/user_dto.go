package dto

import (
	userModel "ewm_backend/internals/features/users/user/model"
)

type NewUserRequest struct {
	Name  string `json:"name" validate:"required,notblank,min=2,max=250"`
	Email string `json:"email" validate:"required,email,min=6,max=254"`
}

func (r NewUserRequest) ToModel() *userModel.UserModel {
	return &userModel.UserModel{Name: r.Name, Email: r.Email}
}

type UserDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserShortDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromModel(m userModel.UserModel) UserDto {
	return UserDto{ID: m.ID, Name: m.Name, Email: m.Email}
}

func FromModels(ms []userModel.UserModel) []UserDto {
	out := make([]UserDto, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

func ToShort(m userModel.UserModel) UserShortDto {
	return UserShortDto{ID: m.ID, Name: m.Name}
}
