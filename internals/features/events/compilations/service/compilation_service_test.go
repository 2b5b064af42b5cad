package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	"ewm_backend/internals/features/events/compilations/dto"
	eventDto "ewm_backend/internals/features/events/events/dto"
	eventModel "ewm_backend/internals/features/events/events/model"
	userModel "ewm_backend/internals/features/users/user/model"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/repository"
	"ewm_backend/internals/repository/memstore"
)

type plainRenderer struct{}

func (plainRenderer) ShortDtos(_ context.Context, events []eventModel.EventModel, _ bool) ([]eventDto.EventShortDto, error) {
	out := make([]eventDto.EventShortDto, 0, len(events))
	for i := range events {
		out = append(out, eventDto.ToShort(&events[i], eventDto.Counters{}))
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }

func seedEvents(t *testing.T, st *memstore.Store, n int) []int64 {
	t.Helper()
	ctx := context.Background()
	u := &userModel.UserModel{Name: "Ann", Email: "ann@example.com"}
	if err := st.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	c := &categoryModel.CategoryModel{Name: "Festivals"}
	if err := st.CreateCategory(ctx, c); err != nil {
		t.Fatalf("create category: %v", err)
	}
	now := time.Now()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		e := &eventModel.EventModel{
			Title:       "Festival",
			Annotation:  "Open air music festival",
			Description: "Two days of music across three stages.",
			EventDate:   now.Add(time.Duration(48+i) * time.Hour),
			CategoryID:  c.ID,
			InitiatorID: u.ID,
			State:       eventModel.StatePublished,
			CreatedOn:   now,
		}
		if err := st.CreateEvent(ctx, e); err != nil {
			t.Fatalf("create event: %v", err)
		}
		ids = append(ids, e.ID)
	}
	return ids
}

func eventIDs(d *dto.CompilationDto) []int64 {
	out := make([]int64, 0, len(d.Events))
	for _, e := range d.Events {
		out = append(out, e.ID)
	}
	return out
}

func TestCreateCompilationKeepsEventOrder(t *testing.T) {
	st := memstore.New()
	ids := seedEvents(t, st, 3)
	svc := NewCompilationService(st, plainRenderer{}, zap.NewNop())

	out, err := svc.CreateCompilation(context.Background(), dto.CompilationRequest{
		Title:  ptr("Summer"),
		Events: []int64{ids[2], ids[0], 999},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Pinned {
		t.Fatalf("pinned=true want default false")
	}
	got := eventIDs(out)
	if len(got) != 2 || got[0] != ids[2] || got[1] != ids[0] {
		t.Fatalf("events=%v want [%d %d]", got, ids[2], ids[0])
	}
}

func TestCreateCompilationNeedsTitle(t *testing.T) {
	svc := NewCompilationService(memstore.New(), plainRenderer{}, zap.NewNop())
	_, err := svc.CreateCompilation(context.Background(), dto.CompilationRequest{Title: ptr("   ")})
	if helper.StatusOf(err) != 400 {
		t.Fatalf("err=%v want 400", err)
	}
}

func TestUpdateCompilationMergesPresentFields(t *testing.T) {
	st := memstore.New()
	ids := seedEvents(t, st, 2)
	svc := NewCompilationService(st, plainRenderer{}, zap.NewNop())
	ctx := context.Background()

	c, err := svc.CreateCompilation(ctx, dto.CompilationRequest{Title: ptr("Weekend"), Events: []int64{ids[0]}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := svc.UpdateCompilation(ctx, c.ID, dto.CompilationRequest{Pinned: ptr(true), Events: []int64{}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Title != "Weekend" || !out.Pinned {
		t.Fatalf("title=%q pinned=%v", out.Title, out.Pinned)
	}
	if got := eventIDs(out); len(got) != 1 || got[0] != ids[0] {
		t.Fatalf("events=%v want [%d]", got, ids[0])
	}

	out, err = svc.UpdateCompilation(ctx, c.ID, dto.CompilationRequest{Events: []int64{ids[1], ids[0]}})
	if err != nil {
		t.Fatalf("update events: %v", err)
	}
	if got := eventIDs(out); len(got) != 2 || got[0] != ids[1] {
		t.Fatalf("events=%v want [%d %d]", got, ids[1], ids[0])
	}

	if _, err := svc.UpdateCompilation(ctx, 999, dto.CompilationRequest{}); helper.StatusOf(err) != 404 {
		t.Fatalf("err=%v want 404", err)
	}
}

func TestGetCompilationsFiltersPinned(t *testing.T) {
	svc := NewCompilationService(memstore.New(), plainRenderer{}, zap.NewNop())
	ctx := context.Background()
	for i, pinned := range []bool{true, false, true} {
		if _, err := svc.CreateCompilation(ctx, dto.CompilationRequest{Title: ptr(string(rune('A' + i))), Pinned: ptr(pinned)}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	out, err := svc.GetCompilations(ctx, ptr(true), repository.Page{Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len=%d want=2", len(out))
	}
	for _, c := range out {
		if !c.Pinned || c.Events == nil {
			t.Fatalf("compilation=%+v", c)
		}
	}

	if err := svc.DeleteCompilation(ctx, out[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteCompilation(ctx, out[0].ID); helper.StatusOf(err) != 404 {
		t.Fatalf("err=%v want 404", err)
	}
}
