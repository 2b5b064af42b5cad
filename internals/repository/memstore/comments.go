package memstore

import (
	"context"
	"slices"
	"sort"

	commentModel "ewm_backend/internals/features/events/comments/model"
	eventModel "ewm_backend/internals/features/events/events/model"
	userModel "ewm_backend/internals/features/users/user/model"
	"ewm_backend/internals/repository"
	"ewm_backend/internals/repository/specification"
)

func (s *Store) CreateComment(ctx context.Context, c *commentModel.CommentModel) error {
	return s.write(func(t *tables) error {
		if _, ok := t.events[c.EventID]; !ok {
			return errForeignKey
		}
		if _, ok := t.users[c.AuthorID]; !ok {
			return errForeignKey
		}
		for _, existing := range t.comments {
			if existing.AuthorID == c.AuthorID && existing.EventID == c.EventID {
				return repository.ErrDuplicate
			}
		}
		c.ID = t.next("comments")
		t.comments[c.ID] = stripComment(*c)
		*c = t.hydrateComment(t.comments[c.ID])
		return nil
	})
}

func (s *Store) SaveComment(ctx context.Context, c *commentModel.CommentModel) error {
	return s.write(func(t *tables) error {
		if _, ok := t.comments[c.ID]; !ok {
			return repository.ErrNotFound
		}
		t.comments[c.ID] = stripComment(*c)
		*c = t.hydrateComment(t.comments[c.ID])
		return nil
	})
}

func (s *Store) FindComment(ctx context.Context, id int64) (*commentModel.CommentModel, error) {
	return s.findComment(func(c commentModel.CommentModel) bool { return c.ID == id })
}

func (s *Store) FindCommentByAuthor(ctx context.Context, id, authorID int64) (*commentModel.CommentModel, error) {
	return s.findComment(func(c commentModel.CommentModel) bool { return c.ID == id && c.AuthorID == authorID })
}

func (s *Store) FindCommentByEvent(ctx context.Context, id, eventID int64) (*commentModel.CommentModel, error) {
	return s.findComment(func(c commentModel.CommentModel) bool { return c.ID == id && c.EventID == eventID })
}

func (s *Store) findComment(match func(commentModel.CommentModel) bool) (*commentModel.CommentModel, error) {
	var (
		out commentModel.CommentModel
		ok  bool
	)
	s.read(func(t *tables) {
		for _, c := range t.comments {
			if match(c) {
				out, ok = t.hydrateComment(c), true
				return
			}
		}
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &out, nil
}

func (s *Store) CommentExistsByAuthor(ctx context.Context, authorID, eventID int64) (bool, error) {
	_, err := s.findComment(func(c commentModel.CommentModel) bool { return c.AuthorID == authorID && c.EventID == eventID })
	return err == nil, nil
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	return s.write(func(t *tables) error {
		if _, ok := t.comments[id]; !ok {
			return repository.ErrNotFound
		}
		delete(t.comments, id)
		return nil
	})
}

func (s *Store) ListCommentsByAuthor(ctx context.Context, authorID int64, page repository.Page) ([]commentModel.CommentModel, error) {
	return s.SearchComments(ctx, repository.CommentFilter{Authors: []int64{authorID}}, page)
}

func (s *Store) ListCommentsByEvent(ctx context.Context, eventID int64) ([]commentModel.CommentModel, error) {
	return s.SearchComments(ctx, repository.CommentFilter{Events: []int64{eventID}}, repository.Page{})
}

func (s *Store) SearchComments(ctx context.Context, f repository.CommentFilter, page repository.Page) ([]commentModel.CommentModel, error) {
	spec := specification.Comments(f)
	var out []commentModel.CommentModel
	s.read(func(t *tables) {
		for _, c := range t.comments {
			if spec.Matches(&c) {
				out = append(out, t.hydrateComment(c))
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.Before(out[j].Created)
		}
		return out[i].ID < out[j].ID
	})
	return window(out, page), nil
}

func (s *Store) CountCommentsByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(eventIDs))
	s.read(func(t *tables) {
		for _, c := range t.comments {
			if slices.Contains(eventIDs, c.EventID) {
				out[c.EventID]++
			}
		}
	})
	return out, nil
}

func (t *tables) hydrateComment(c commentModel.CommentModel) commentModel.CommentModel {
	c.Author = t.users[c.AuthorID]
	c.Event = t.hydrate(t.events[c.EventID])
	return c
}

func stripComment(c commentModel.CommentModel) commentModel.CommentModel {
	c.Author = userModel.UserModel{}
	c.Event = eventModel.EventModel{}
	return c
}
