package gormstore

import (
	"context"

	"github.com/lib/pq"

	userModel "ewm_backend/internals/features/users/user/model"
	"ewm_backend/internals/repository"
)

func (s *Store) CreateUser(ctx context.Context, u *userModel.UserModel) error {
	return translate(s.q(ctx).Create(u).Error)
}

func (s *Store) FindUser(ctx context.Context, id int64) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := s.q(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) UserExists(ctx context.Context, id int64) (bool, error) {
	return exists(s.q(ctx).Model(&userModel.UserModel{}).Where("id = ?", id))
}

func (s *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	return exists(s.q(ctx).Model(&userModel.UserModel{}).Where("LOWER(email) = LOWER(?)", email))
}

func (s *Store) ListUsers(ctx context.Context, ids []int64, page repository.Page) ([]userModel.UserModel, error) {
	q := s.q(ctx).Model(&userModel.UserModel{})
	if ids != nil {
		q = q.Where("id = ANY(?)", pq.Array(ids))
	}
	var out []userModel.UserModel
	err := paged(q.Order("id ASC"), page).Find(&out).Error
	return out, translate(err)
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return deleted(s.q(ctx).Delete(&userModel.UserModel{}, id))
}
