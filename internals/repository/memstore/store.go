// Package memstore is an in-memory repository.Store. It mirrors the Postgres
// schema constraints (unique keys, restrict and cascade deletes) so services
// behave the same on both stores.
package memstore

import (
	"context"
	"sort"
	"sync"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	commentModel "ewm_backend/internals/features/events/comments/model"
	compilationModel "ewm_backend/internals/features/events/compilations/model"
	eventModel "ewm_backend/internals/features/events/events/model"
	requestModel "ewm_backend/internals/features/events/requests/model"
	userModel "ewm_backend/internals/features/users/user/model"
	"ewm_backend/internals/repository"
)

type tables struct {
	users        map[int64]userModel.UserModel
	categories   map[int64]categoryModel.CategoryModel
	events       map[int64]eventModel.EventModel
	requests     map[int64]requestModel.RequestModel
	compilations map[int64]compilationModel.CompilationModel
	comments     map[int64]commentModel.CommentModel
	seq          map[string]int64
}

func newTables() *tables {
	return &tables{
		users:        map[int64]userModel.UserModel{},
		categories:   map[int64]categoryModel.CategoryModel{},
		events:       map[int64]eventModel.EventModel{},
		requests:     map[int64]requestModel.RequestModel{},
		compilations: map[int64]compilationModel.CompilationModel{},
		comments:     map[int64]commentModel.CommentModel{},
		seq:          map[string]int64{},
	}
}

func (t *tables) clone() *tables {
	c := newTables()
	for k, v := range t.users {
		c.users[k] = v
	}
	for k, v := range t.categories {
		c.categories[k] = v
	}
	for k, v := range t.events {
		c.events[k] = v
	}
	for k, v := range t.requests {
		c.requests[k] = v
	}
	for k, v := range t.compilations {
		v.EventIDs = append(v.EventIDs[:0:0], v.EventIDs...)
		c.compilations[k] = v
	}
	for k, v := range t.comments {
		c.comments[k] = v
	}
	for k, v := range t.seq {
		c.seq[k] = v
	}
	return c
}

func (t *tables) next(table string) int64 {
	t.seq[table]++
	return t.seq[table]
}

// Store serialises transactions; a failed InTx restores the snapshot taken
// when it started.
type Store struct {
	mu   *sync.RWMutex
	txMu *sync.Mutex
	t    **tables
	inTx bool
}

var _ repository.Store = (*Store)(nil)

func New() *Store {
	t := newTables()
	return &Store{mu: &sync.RWMutex{}, txMu: &sync.Mutex{}, t: &t}
}

func (s *Store) InTx(ctx context.Context, fn func(tx repository.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := (*s.t).clone()
	s.mu.RUnlock()

	tx := &Store{mu: s.mu, txMu: s.txMu, t: s.t, inTx: true}
	if err := fn(tx); err != nil {
		s.mu.Lock()
		*s.t = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) read(fn func(t *tables)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(*s.t)
}

func (s *Store) write(fn func(t *tables) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(*s.t)
}

func window[T any](items []T, page repository.Page) []T {
	if page.Limit <= 0 {
		return items
	}
	if page.Offset >= len(items) {
		return nil
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Offset:end]
}

func sortedValues[T any](m map[int64]T) []T {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
