package gormstore

import (
	"context"

	compilationModel "ewm_backend/internals/features/events/compilations/model"
	"ewm_backend/internals/repository"
)

func (s *Store) CreateCompilation(ctx context.Context, c *compilationModel.CompilationModel) error {
	return translate(s.q(ctx).Create(c).Error)
}

func (s *Store) SaveCompilation(ctx context.Context, c *compilationModel.CompilationModel) error {
	return translate(s.q(ctx).Save(c).Error)
}

func (s *Store) FindCompilation(ctx context.Context, id int64) (*compilationModel.CompilationModel, error) {
	var c compilationModel.CompilationModel
	if err := s.q(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) DeleteCompilation(ctx context.Context, id int64) error {
	return deleted(s.q(ctx).Delete(&compilationModel.CompilationModel{}, id))
}

func (s *Store) ListCompilations(ctx context.Context, pinned *bool, page repository.Page) ([]compilationModel.CompilationModel, error) {
	q := s.q(ctx).Model(&compilationModel.CompilationModel{})
	if pinned != nil {
		q = q.Where("pinned = ?", *pinned)
	}
	var out []compilationModel.CompilationModel
	err := paged(q.Order("id ASC"), page).Find(&out).Error
	return out, translate(err)
}
