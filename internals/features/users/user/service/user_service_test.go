package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"ewm_backend/internals/features/users/user/dto"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/repository"
	"ewm_backend/internals/repository/memstore"
)

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memstore.New(), zap.NewNop())

	u, err := svc.CreateUser(ctx, dto.NewUserRequest{Name: "Ann", Email: "ann@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 || u.Email != "ann@example.com" {
		t.Fatalf("user=%+v", u)
	}

	_, err = svc.CreateUser(ctx, dto.NewUserRequest{Name: "Other Ann", Email: "ANN@example.com"})
	if helper.StatusOf(err) != 409 {
		t.Fatalf("err=%v want 409", err)
	}
}

func TestGetUsersByIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memstore.New(), zap.NewNop())
	var ids []int64
	for _, e := range []string{"a@x.io", "b@x.io", "c@x.io"} {
		u, err := svc.CreateUser(ctx, dto.NewUserRequest{Name: e, Email: e})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, u.ID)
	}

	out, err := svc.GetUsers(ctx, []int64{ids[2], ids[0]}, repository.Page{Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].ID != ids[0] || out[1].ID != ids[2] {
		t.Fatalf("users=%+v want ids %d,%d", out, ids[0], ids[2])
	}

	all, err := svc.GetUsers(ctx, nil, repository.Page{Limit: 10})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len=%d want=3", len(all))
	}
}

func TestDeleteMissingUser(t *testing.T) {
	svc := NewUserService(memstore.New(), zap.NewNop())
	if err := svc.DeleteUser(context.Background(), 42); helper.StatusOf(err) != 404 {
		t.Fatalf("err=%v want 404", err)
	}
}
