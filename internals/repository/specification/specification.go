// Package specification composes optional search predicates. Each predicate
// carries both its SQL form and an in-memory matcher so the GORM and memory
// stores filter identically.
package specification

import (
	"gorm.io/gorm"
)

type Predicate[T any] struct {
	Name  string
	Query string
	Args  []any
	Match func(T) bool
}

// Spec is a conjunction of predicates. The zero value matches everything.
type Spec[T any] struct {
	preds []Predicate[T]
}

func New[T any]() *Spec[T] {
	return &Spec[T]{}
}

func (s *Spec[T]) And(p Predicate[T]) *Spec[T] {
	s.preds = append(s.preds, p)
	return s
}

func (s *Spec[T]) Len() int { return len(s.preds) }

func (s *Spec[T]) Names() []string {
	names := make([]string, len(s.preds))
	for i, p := range s.preds {
		names[i] = p.Name
	}
	return names
}

func (s *Spec[T]) Apply(db *gorm.DB) *gorm.DB {
	for _, p := range s.preds {
		db = db.Where(p.Query, p.Args...)
	}
	return db
}

func (s *Spec[T]) Matches(v T) bool {
	for _, p := range s.preds {
		if !p.Match(v) {
			return false
		}
	}
	return true
}
