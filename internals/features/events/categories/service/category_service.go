package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ewm_backend/internals/features/events/categories/dto"
	categoryModel "ewm_backend/internals/features/events/categories/model"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/repository"
)

type CategoryService struct {
	Store repository.Store
	Log   *zap.Logger
}

func NewCategoryService(store repository.Store, log *zap.Logger) *CategoryService {
	return &CategoryService{Store: store, Log: log.Named("categories")}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*dto.CategoryDto, error) {
	c := &categoryModel.CategoryModel{Name: req.Name}
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		if err := s.ensureNameFree(ctx, tx, req.Name, 0); err != nil {
			return err
		}
		return s.dupAsConflict(tx.CreateCategory(ctx, c), req.Name)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(*c)
	return &out, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req dto.CategoryRequest) (*dto.CategoryDto, error) {
	var c *categoryModel.CategoryModel
	err := s.Store.InTx(ctx, func(tx repository.Store) error {
		var err error
		c, err = s.find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.ensureNameFree(ctx, tx, req.Name, id); err != nil {
			return err
		}
		c.Name = req.Name
		return s.dupAsConflict(tx.SaveCategory(ctx, c), req.Name)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(*c)
	return &out, nil
}

// DeleteCategory refuses while any event still references the category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.Store.InTx(ctx, func(tx repository.Store) error {
		if _, err := s.find(ctx, tx, id); err != nil {
			return err
		}
		inUse, err := tx.CategoryInUse(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return helper.Conflict("Category with id %d contains events", id)
		}
		if err := tx.DeleteCategory(ctx, id); err != nil {
			return err
		}
		s.Log.Info("category deleted", zap.Int64("category_id", id))
		return nil
	})
}

func (s *CategoryService) GetCategories(ctx context.Context, page repository.Page) ([]dto.CategoryDto, error) {
	cs, err := s.Store.ListCategories(ctx, page)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(cs), nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*dto.CategoryDto, error) {
	c, err := s.find(ctx, s.Store, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromModel(*c)
	return &out, nil
}

func (s *CategoryService) find(ctx context.Context, st repository.Store, id int64) (*categoryModel.CategoryModel, error) {
	c, err := st.FindCategory(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, helper.NotFound("Category with id %d does not exist", id)
	}
	return c, err
}

func (s *CategoryService) ensureNameFree(ctx context.Context, st repository.Store, name string, exceptID int64) error {
	taken, err := st.CategoryNameTaken(ctx, name, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return helper.Conflict("Category with name %s exists", name)
	}
	return nil
}

func (s *CategoryService) dupAsConflict(err error, name string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return helper.Conflict("Category with name %s exists", name)
	}
	return err
}
