package gormstore

import (
	"context"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	"ewm_backend/internals/repository"
)

func (s *Store) CreateCategory(ctx context.Context, c *categoryModel.CategoryModel) error {
	return translate(s.q(ctx).Create(c).Error)
}

func (s *Store) SaveCategory(ctx context.Context, c *categoryModel.CategoryModel) error {
	return translate(s.q(ctx).Save(c).Error)
}

func (s *Store) FindCategory(ctx context.Context, id int64) (*categoryModel.CategoryModel, error) {
	var c categoryModel.CategoryModel
	if err := s.q(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) CategoryNameTaken(ctx context.Context, name string, exceptID int64) (bool, error) {
	return exists(s.q(ctx).Model(&categoryModel.CategoryModel{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, exceptID))
}

func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	return deleted(s.q(ctx).Delete(&categoryModel.CategoryModel{}, id))
}

func (s *Store) ListCategories(ctx context.Context, page repository.Page) ([]categoryModel.CategoryModel, error) {
	var out []categoryModel.CategoryModel
	err := paged(s.q(ctx).Order("id ASC"), page).Find(&out).Error
	return out, translate(err)
}
