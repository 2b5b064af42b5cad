package memstore

import (
	"context"
	"errors"
	"strings"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	"ewm_backend/internals/repository"
)

var errCategoryReferenced = errors.New("category is referenced by events")

func (s *Store) CreateCategory(ctx context.Context, c *categoryModel.CategoryModel) error {
	return s.write(func(t *tables) error {
		if t.categoryNameTaken(c.Name, 0) {
			return repository.ErrDuplicate
		}
		c.ID = t.next("categories")
		t.categories[c.ID] = *c
		return nil
	})
}

func (s *Store) SaveCategory(ctx context.Context, c *categoryModel.CategoryModel) error {
	return s.write(func(t *tables) error {
		if _, ok := t.categories[c.ID]; !ok {
			return repository.ErrNotFound
		}
		if t.categoryNameTaken(c.Name, c.ID) {
			return repository.ErrDuplicate
		}
		t.categories[c.ID] = *c
		return nil
	})
}

func (s *Store) FindCategory(ctx context.Context, id int64) (*categoryModel.CategoryModel, error) {
	var (
		c  categoryModel.CategoryModel
		ok bool
	)
	s.read(func(t *tables) { c, ok = t.categories[id] })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s *Store) CategoryNameTaken(ctx context.Context, name string, exceptID int64) (bool, error) {
	var taken bool
	s.read(func(t *tables) { taken = t.categoryNameTaken(name, exceptID) })
	return taken, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	return s.write(func(t *tables) error {
		if _, ok := t.categories[id]; !ok {
			return repository.ErrNotFound
		}
		for _, e := range t.events {
			if e.CategoryID == id {
				return errCategoryReferenced
			}
		}
		delete(t.categories, id)
		return nil
	})
}

func (s *Store) ListCategories(ctx context.Context, page repository.Page) ([]categoryModel.CategoryModel, error) {
	var out []categoryModel.CategoryModel
	s.read(func(t *tables) { out = sortedValues(t.categories) })
	return window(out, page), nil
}

func (t *tables) categoryNameTaken(name string, exceptID int64) bool {
	for _, c := range t.categories {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
