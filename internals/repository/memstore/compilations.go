package memstore

import (
	"context"

	compilationModel "ewm_backend/internals/features/events/compilations/model"
	"ewm_backend/internals/repository"
)

func (s *Store) CreateCompilation(ctx context.Context, c *compilationModel.CompilationModel) error {
	return s.write(func(t *tables) error {
		c.ID = t.next("compilations")
		t.compilations[c.ID] = copyCompilation(*c)
		return nil
	})
}

func (s *Store) SaveCompilation(ctx context.Context, c *compilationModel.CompilationModel) error {
	return s.write(func(t *tables) error {
		if _, ok := t.compilations[c.ID]; !ok {
			return repository.ErrNotFound
		}
		t.compilations[c.ID] = copyCompilation(*c)
		return nil
	})
}

func (s *Store) FindCompilation(ctx context.Context, id int64) (*compilationModel.CompilationModel, error) {
	var (
		c  compilationModel.CompilationModel
		ok bool
	)
	s.read(func(t *tables) { c, ok = t.compilations[id] })
	if !ok {
		return nil, repository.ErrNotFound
	}
	c = copyCompilation(c)
	return &c, nil
}

func (s *Store) DeleteCompilation(ctx context.Context, id int64) error {
	return s.write(func(t *tables) error {
		if _, ok := t.compilations[id]; !ok {
			return repository.ErrNotFound
		}
		delete(t.compilations, id)
		return nil
	})
}

func (s *Store) ListCompilations(ctx context.Context, pinned *bool, page repository.Page) ([]compilationModel.CompilationModel, error) {
	var out []compilationModel.CompilationModel
	s.read(func(t *tables) {
		for _, c := range sortedValues(t.compilations) {
			if pinned == nil || c.Pinned == *pinned {
				out = append(out, copyCompilation(c))
			}
		}
	})
	return window(out, page), nil
}

func copyCompilation(c compilationModel.CompilationModel) compilationModel.CompilationModel {
	c.EventIDs = append(c.EventIDs[:0:0], c.EventIDs...)
	return c
}
