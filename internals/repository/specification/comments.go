package specification

import (
	"slices"
	"time"

	"github.com/lib/pq"

	commentModel "ewm_backend/internals/features/events/comments/model"
	"ewm_backend/internals/repository"
)

func Comments(f repository.CommentFilter) *Spec[*commentModel.CommentModel] {
	s := New[*commentModel.CommentModel]()
	if f.Events != nil {
		s.And(CommentEventIn(f.Events))
	}
	if f.Authors != nil {
		s.And(CommentAuthorIn(f.Authors))
	}
	if f.RangeStart != nil {
		s.And(CreatedFrom(*f.RangeStart))
	}
	if f.RangeEnd != nil {
		s.And(CreatedTo(*f.RangeEnd))
	}
	return s
}

func CommentEventIn(ids []int64) Predicate[*commentModel.CommentModel] {
	return Predicate[*commentModel.CommentModel]{
		Name:  "event_in",
		Query: "comments.event_id = ANY(?)",
		Args:  []any{pq.Array(ids)},
		Match: func(c *commentModel.CommentModel) bool { return slices.Contains(ids, c.EventID) },
	}
}

func CommentAuthorIn(ids []int64) Predicate[*commentModel.CommentModel] {
	return Predicate[*commentModel.CommentModel]{
		Name:  "author_in",
		Query: "comments.author_id = ANY(?)",
		Args:  []any{pq.Array(ids)},
		Match: func(c *commentModel.CommentModel) bool { return slices.Contains(ids, c.AuthorID) },
	}
}

func CreatedFrom(t time.Time) Predicate[*commentModel.CommentModel] {
	return Predicate[*commentModel.CommentModel]{
		Name:  "created_from",
		Query: "comments.created >= ?",
		Args:  []any{t},
		Match: func(c *commentModel.CommentModel) bool { return !c.Created.Before(t) },
	}
}

func CreatedTo(t time.Time) Predicate[*commentModel.CommentModel] {
	return Predicate[*commentModel.CommentModel]{
		Name:  "created_to",
		Query: "comments.created <= ?",
		Args:  []any{t},
		Match: func(c *commentModel.CommentModel) bool { return !c.Created.After(t) },
	}
}
