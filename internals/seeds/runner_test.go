package seeds

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"ewm_backend/internals/repository"
	"ewm_backend/internals/repository/memstore"
)

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	for i := 0; i < 2; i++ {
		if err := RunAllSeeds(ctx, store, zap.NewNop()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	cats, err := store.ListCategories(ctx, repository.Page{Limit: 100})
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 6 {
		t.Fatalf("categories=%d want=6", len(cats))
	}
	users, err := store.ListUsers(ctx, nil, repository.Page{Limit: 100})
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("users=%d want=3", len(users))
	}
}
