package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	"ewm_backend/internals/features/events/comments/dto"
	eventDto "ewm_backend/internals/features/events/events/dto"
	eventModel "ewm_backend/internals/features/events/events/model"
	requestModel "ewm_backend/internals/features/events/requests/model"
	userModel "ewm_backend/internals/features/users/user/model"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/repository"
	"ewm_backend/internals/repository/memstore"
)

var testNow = time.Date(2030, 5, 1, 12, 0, 0, 0, time.Local)

type plainRenderer struct{}

func (plainRenderer) ShortDtos(_ context.Context, events []eventModel.EventModel, _ bool) ([]eventDto.EventShortDto, error) {
	out := make([]eventDto.EventShortDto, 0, len(events))
	for i := range events {
		out = append(out, eventDto.ToShort(&events[i], eventDto.Counters{}))
	}
	return out, nil
}

type fixture struct {
	svc    *CommentService
	store  *memstore.Store
	author int64
	event  int64
}

func newFixture(t *testing.T, status requestModel.RequestStatus) fixture {
	t.Helper()
	ctx := context.Background()
	st := memstore.New()

	owner := &userModel.UserModel{Name: "Owner", Email: "owner@example.com"}
	author := &userModel.UserModel{Name: "Guest", Email: "guest@example.com"}
	for _, u := range []*userModel.UserModel{owner, author} {
		if err := st.CreateUser(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	c := &categoryModel.CategoryModel{Name: "Hiking"}
	if err := st.CreateCategory(ctx, c); err != nil {
		t.Fatalf("create category: %v", err)
	}
	e := &eventModel.EventModel{
		Title:       "Ridge walk",
		Annotation:  "A day hike along the ridge",
		Description: "Twelve kilometres, bring water and good shoes.",
		EventDate:   testNow.Add(-24 * time.Hour),
		CategoryID:  c.ID,
		InitiatorID: owner.ID,
		State:       eventModel.StatePublished,
		CreatedOn:   testNow.Add(-72 * time.Hour),
	}
	if err := st.CreateEvent(ctx, e); err != nil {
		t.Fatalf("create event: %v", err)
	}
	if err := st.CreateRequest(ctx, &requestModel.RequestModel{
		EventID: e.ID, RequesterID: author.ID, Status: status, Created: testNow.Add(-48 * time.Hour),
	}); err != nil {
		t.Fatalf("create request: %v", err)
	}

	svc := NewCommentService(st, plainRenderer{}, zap.NewNop())
	svc.Now = func() time.Time { return testNow }
	return fixture{svc: svc, store: st, author: author.ID, event: e.ID}
}

func ptr[T any](v T) *T { return &v }

var longText = strings.Repeat("great hike ", 3)

func TestCreateCommentNeedsConfirmedParticipation(t *testing.T) {
	f := newFixture(t, requestModel.StatusPending)
	_, err := f.svc.CreateComment(context.Background(), f.author, dto.CommentRequest{EventID: ptr(f.event), Text: longText})
	if helper.StatusOf(err) != 409 {
		t.Fatalf("err=%v want 409", err)
	}
}

func TestCreateCommentOncePerEvent(t *testing.T) {
	f := newFixture(t, requestModel.StatusConfirmed)
	ctx := context.Background()

	out, err := f.svc.CreateComment(ctx, f.author, dto.CommentRequest{EventID: ptr(f.event), Text: longText})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Author.ID != f.author || out.Event.ID != f.event || !out.Created.Equal(testNow) {
		t.Fatalf("comment=%+v", out)
	}

	_, err = f.svc.CreateComment(ctx, f.author, dto.CommentRequest{EventID: ptr(f.event), Text: longText})
	if helper.StatusOf(err) != 409 {
		t.Fatalf("err=%v want 409", err)
	}

	shorts, err := f.svc.GetCommentsToEvent(ctx, f.event)
	if err != nil {
		t.Fatalf("event comments: %v", err)
	}
	if len(shorts) != 1 || shorts[0].AuthorName != "Guest" {
		t.Fatalf("comments=%+v", shorts)
	}
}

func TestCreateCommentMissingRefs(t *testing.T) {
	f := newFixture(t, requestModel.StatusConfirmed)
	ctx := context.Background()

	if _, err := f.svc.CreateComment(ctx, 999, dto.CommentRequest{EventID: ptr(f.event), Text: longText}); helper.StatusOf(err) != 404 {
		t.Fatalf("err=%v want 404", err)
	}
	if _, err := f.svc.CreateComment(ctx, f.author, dto.CommentRequest{EventID: ptr(int64(999)), Text: longText}); helper.StatusOf(err) != 404 {
		t.Fatalf("err=%v want 404", err)
	}
	if _, err := f.svc.CreateComment(ctx, f.author, dto.CommentRequest{Text: longText}); helper.StatusOf(err) != 400 {
		t.Fatalf("err=%v want 400", err)
	}
}

func TestUpdateAndRemoveOwnComment(t *testing.T) {
	f := newFixture(t, requestModel.StatusConfirmed)
	ctx := context.Background()
	c, err := f.svc.CreateComment(ctx, f.author, dto.CommentRequest{EventID: ptr(f.event), Text: longText})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.svc.UpdateUserComment(ctx, f.author, c.ID, dto.CommentRequest{EventID: ptr(f.event), Text: longText}); helper.StatusOf(err) != 400 {
		t.Fatalf("err=%v want 400", err)
	}
	edited := "edited: " + longText
	out, err := f.svc.UpdateUserComment(ctx, f.author, c.ID, dto.CommentRequest{Text: edited})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Text != edited {
		t.Fatalf("text=%q want=%q", out.Text, edited)
	}

	owner := int64(1)
	if err := f.svc.RemoveUserComment(ctx, owner, c.ID); helper.StatusOf(err) != 404 {
		t.Fatalf("err=%v want 404", err)
	}
	if err := f.svc.RemoveUserComment(ctx, f.author, c.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := f.svc.RemoveCommentByAdmin(ctx, c.ID); helper.StatusOf(err) != 404 {
		t.Fatalf("err=%v want 404", err)
	}
}

func TestAdminCommentSearch(t *testing.T) {
	f := newFixture(t, requestModel.StatusConfirmed)
	ctx := context.Background()
	if _, err := f.svc.CreateComment(ctx, f.author, dto.CommentRequest{EventID: ptr(f.event), Text: longText}); err != nil {
		t.Fatalf("create: %v", err)
	}
	page := repository.Page{Limit: 10}

	out, err := f.svc.GetCommentsByAdmin(ctx, AdminCommentQuery{Users: []int64{f.author}}, page)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len=%d want=1", len(out))
	}

	later := testNow.Add(time.Hour)
	out, err = f.svc.GetCommentsByAdmin(ctx, AdminCommentQuery{RangeStart: &later}, page)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len=%d want=0", len(out))
	}

	start, end := testNow, testNow.Add(-time.Hour)
	if _, err := f.svc.GetCommentsByAdmin(ctx, AdminCommentQuery{RangeStart: &start, RangeEnd: &end}, page); helper.StatusOf(err) != 400 {
		t.Fatalf("err=%v want 400", err)
	}
}
