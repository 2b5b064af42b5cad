package memstore

import (
	"context"
	"slices"
	"strings"

	userModel "ewm_backend/internals/features/users/user/model"
	"ewm_backend/internals/repository"
)

func (s *Store) CreateUser(ctx context.Context, u *userModel.UserModel) error {
	return s.write(func(t *tables) error {
		for _, existing := range t.users {
			if strings.EqualFold(existing.Email, u.Email) {
				return repository.ErrDuplicate
			}
		}
		u.ID = t.next("users")
		t.users[u.ID] = *u
		return nil
	})
}

func (s *Store) FindUser(ctx context.Context, id int64) (*userModel.UserModel, error) {
	var (
		u  userModel.UserModel
		ok bool
	)
	s.read(func(t *tables) { u, ok = t.users[id] })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *Store) UserExists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	s.read(func(t *tables) { _, ok = t.users[id] })
	return ok, nil
}

func (s *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	s.read(func(t *tables) {
		for _, u := range t.users {
			if strings.EqualFold(u.Email, email) {
				taken = true
				return
			}
		}
	})
	return taken, nil
}

func (s *Store) ListUsers(ctx context.Context, ids []int64, page repository.Page) ([]userModel.UserModel, error) {
	var out []userModel.UserModel
	s.read(func(t *tables) {
		for _, u := range sortedValues(t.users) {
			if ids == nil || slices.Contains(ids, u.ID) {
				out = append(out, u)
			}
		}
	})
	return window(out, page), nil
}

// DeleteUser cascades to the user's events, requests and comments.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return s.write(func(t *tables) error {
		if _, ok := t.users[id]; !ok {
			return repository.ErrNotFound
		}
		delete(t.users, id)
		for eid, e := range t.events {
			if e.InitiatorID == id {
				t.deleteEvent(eid)
			}
		}
		for rid, r := range t.requests {
			if r.RequesterID == id {
				delete(t.requests, rid)
			}
		}
		for cid, c := range t.comments {
			if c.AuthorID == id {
				delete(t.comments, cid)
			}
		}
		return nil
	})
}
