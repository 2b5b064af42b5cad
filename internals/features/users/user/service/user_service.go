package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ewm_backend/internals/features/users/user/dto"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/repository"
)

type UserService struct {
	Store repository.Store
	Log   *zap.Logger
}

func NewUserService(store repository.Store, log *zap.Logger) *UserService {
	return &UserService{Store: store, Log: log.Named("users")}
}

func (s *UserService) CreateUser(ctx context.Context, req dto.NewUserRequest) (*dto.UserDto, error) {
	user := req.ToModel()
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		taken, err := tx.EmailTaken(ctx, req.Email)
		if err != nil {
			return err
		}
		if taken {
			return helper.Conflict("User with email %s exists", req.Email)
		}
		if err := tx.CreateUser(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return helper.Conflict("User with email %s exists", req.Email)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("user created", zap.Int64("user_id", user.ID))
	out := dto.FromModel(*user)
	return &out, nil
}

// GetUsers lists users ordered by id. A nil ids slice lists everyone.
func (s *UserService) GetUsers(ctx context.Context, ids []int64, page repository.Page) ([]dto.UserDto, error) {
	users, err := s.Store.ListUsers(ctx, ids, page)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(users), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		return tx.DeleteUser(ctx, id)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return helper.NotFound("User with id %d does not exist", id)
	}
	if err != nil {
		return err
	}
	s.Log.Info("user deleted", zap.Int64("user_id", id))
	return nil
}
