package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	eventModel "ewm_backend/internals/features/events/events/model"
	"ewm_backend/internals/features/events/requests/dto"
	requestModel "ewm_backend/internals/features/events/requests/model"
	userModel "ewm_backend/internals/features/users/user/model"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/repository/memstore"
)

var testNow = time.Date(2030, 5, 1, 12, 0, 0, 0, time.Local)

type fixture struct {
	svc       *RequestService
	store     *memstore.Store
	initiator int64
	category  int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memstore.New()
	svc := NewRequestService(st, zap.NewNop())
	svc.Now = func() time.Time { return testNow }
	f := &fixture{svc: svc, store: st}
	f.initiator = f.user(t, "owner")

	c := &categoryModel.CategoryModel{Name: "Talks"}
	if err := st.CreateCategory(context.Background(), c); err != nil {
		t.Fatalf("create category: %v", err)
	}
	f.category = c.ID
	return f
}

func (f *fixture) user(t *testing.T, name string) int64 {
	t.Helper()
	u := &userModel.UserModel{Name: name, Email: name + "@example.com"}
	if err := f.store.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.ID
}

func (f *fixture) event(t *testing.T, limit int, moderation bool, state eventModel.EventState) int64 {
	t.Helper()
	e := &eventModel.EventModel{
		Title:             "Go meetup",
		Annotation:        "Talks about generics and iterators",
		Description:       "Two talks followed by pizza and open discussion.",
		EventDate:         testNow.Add(72 * time.Hour),
		CategoryID:        f.category,
		InitiatorID:       f.initiator,
		ParticipantLimit:  limit,
		RequestModeration: moderation,
		State:             state,
		CreatedOn:         testNow,
	}
	if err := f.store.CreateEvent(context.Background(), e); err != nil {
		t.Fatalf("create event: %v", err)
	}
	return e.ID
}

func (f *fixture) request(t *testing.T, userID, eventID int64) *dto.ParticipationRequestDto {
	t.Helper()
	out, err := f.svc.CreateRequest(context.Background(), userID, eventID)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return out
}

func wantStatus(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("err=nil want status %d", status)
	}
	if got := helper.StatusOf(err); got != status {
		t.Fatalf("status=%d want=%d (err=%v)", got, status, err)
	}
}

func TestRequestAutoConfirmsWithoutLimit(t *testing.T) {
	f := newFixture(t)
	ev := f.event(t, 0, true, eventModel.StatePublished)
	guest := f.user(t, "guest")

	out := f.request(t, guest, ev)
	if out.Status != string(requestModel.StatusConfirmed) {
		t.Fatalf("status=%s want=CONFIRMED", out.Status)
	}

	list, err := f.svc.GetRequests(context.Background(), f.initiator, ev)
	if err != nil {
		t.Fatalf("get requests: %v", err)
	}
	if len(list) != 1 || list[0].Status != string(requestModel.StatusConfirmed) {
		t.Fatalf("requests=%+v", list)
	}
}

func TestRequestPendingUnderModeration(t *testing.T) {
	f := newFixture(t)
	ev := f.event(t, 5, true, eventModel.StatePublished)
	out := f.request(t, f.user(t, "guest"), ev)
	if out.Status != string(requestModel.StatusPending) {
		t.Fatalf("status=%s want=PENDING", out.Status)
	}
	if !out.Created.Equal(testNow) {
		t.Fatalf("created=%v want=%v", out.Created, testNow)
	}
}

func TestCreateRequestRejections(t *testing.T) {
	f := newFixture(t)
	published := f.event(t, 0, true, eventModel.StatePublished)
	pending := f.event(t, 0, true, eventModel.StatePending)
	guest := f.user(t, "guest")
	ctx := context.Background()

	_, err := f.svc.CreateRequest(ctx, 999, published)
	wantStatus(t, err, 404)
	_, err = f.svc.CreateRequest(ctx, guest, 999)
	wantStatus(t, err, 404)

	_, err = f.svc.CreateRequest(ctx, f.initiator, published)
	wantStatus(t, err, 409)
	_, err = f.svc.CreateRequest(ctx, guest, pending)
	wantStatus(t, err, 409)

	f.request(t, guest, published)
	_, err = f.svc.CreateRequest(ctx, guest, published)
	wantStatus(t, err, 409)
}

func TestCreateRequestWhenLimitReached(t *testing.T) {
	f := newFixture(t)
	ev := f.event(t, 1, false, eventModel.StatePublished)
	f.request(t, f.user(t, "first"), ev)

	_, err := f.svc.CreateRequest(context.Background(), f.user(t, "second"), ev)
	wantStatus(t, err, 409)
}

func TestBulkConfirmSpillsOverToRejected(t *testing.T) {
	f := newFixture(t)
	ev := f.event(t, 1, true, eventModel.StatePublished)
	a := f.request(t, f.user(t, "a"), ev)
	b := f.request(t, f.user(t, "b"), ev)

	res, err := f.svc.UpdateRequestsStatus(context.Background(), f.initiator, ev, dto.StatusUpdateRequest{
		RequestIDs: []int64{a.ID, b.ID},
		Status:     "CONFIRMED",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(res.ConfirmedRequests) != 1 || len(res.RejectedRequests) != 1 {
		t.Fatalf("confirmed=%d rejected=%d want 1/1", len(res.ConfirmedRequests), len(res.RejectedRequests))
	}
	if res.ConfirmedRequests[0].ID != a.ID || res.RejectedRequests[0].ID != b.ID {
		t.Fatalf("confirmed=%d rejected=%d want %d/%d", res.ConfirmedRequests[0].ID, res.RejectedRequests[0].ID, a.ID, b.ID)
	}

	// the event is full now
	_, err = f.svc.UpdateRequestsStatus(context.Background(), f.initiator, ev, dto.StatusUpdateRequest{
		RequestIDs: []int64{b.ID},
		Status:     "REJECTED",
	})
	wantStatus(t, err, 409)
}

func TestBulkUpdateOnlyTouchesPending(t *testing.T) {
	f := newFixture(t)
	ev := f.event(t, 3, true, eventModel.StatePublished)
	a := f.request(t, f.user(t, "a"), ev)
	b := f.request(t, f.user(t, "b"), ev)
	ctx := context.Background()

	if _, err := f.svc.UpdateRequestsStatus(ctx, f.initiator, ev, dto.StatusUpdateRequest{
		RequestIDs: []int64{a.ID},
		Status:     "REJECTED",
	}); err != nil {
		t.Fatalf("reject: %v", err)
	}

	_, err := f.svc.UpdateRequestsStatus(ctx, f.initiator, ev, dto.StatusUpdateRequest{
		RequestIDs: []int64{a.ID, b.ID},
		Status:     "CONFIRMED",
	})
	wantStatus(t, err, 409)

	list, err := f.svc.GetRequests(ctx, f.initiator, ev)
	if err != nil {
		t.Fatalf("get requests: %v", err)
	}
	for _, r := range list {
		if r.ID == b.ID && r.Status != string(requestModel.StatusPending) {
			t.Fatalf("request %d status=%s want=PENDING", b.ID, r.Status)
		}
	}
}

func TestBulkConfirmIsNoOpWithoutModeration(t *testing.T) {
	f := newFixture(t)
	ev := f.event(t, 2, true, eventModel.StatePublished)
	a := f.request(t, f.user(t, "a"), ev)

	stored, err := f.store.FindEvent(context.Background(), ev)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	stored.RequestModeration = false
	if err := f.store.SaveEvent(context.Background(), stored); err != nil {
		t.Fatalf("save: %v", err)
	}

	res, err := f.svc.UpdateRequestsStatus(context.Background(), f.initiator, ev, dto.StatusUpdateRequest{
		RequestIDs: []int64{a.ID},
		Status:     "CONFIRMED",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.ConfirmedRequests == nil || res.RejectedRequests == nil {
		t.Fatalf("result slices must be empty, not nil")
	}
	if len(res.ConfirmedRequests)+len(res.RejectedRequests) != 0 {
		t.Fatalf("result=%+v want empty", res)
	}
}

func TestBulkUpdateValidatesStatusAndOwnership(t *testing.T) {
	f := newFixture(t)
	ev := f.event(t, 2, true, eventModel.StatePublished)
	a := f.request(t, f.user(t, "a"), ev)
	ctx := context.Background()

	_, err := f.svc.UpdateRequestsStatus(ctx, f.initiator, ev, dto.StatusUpdateRequest{RequestIDs: []int64{a.ID}, Status: "PENDING"})
	wantStatus(t, err, 400)

	stranger := f.user(t, "stranger")
	_, err = f.svc.UpdateRequestsStatus(ctx, stranger, ev, dto.StatusUpdateRequest{RequestIDs: []int64{a.ID}, Status: "CONFIRMED"})
	wantStatus(t, err, 404)
}

func TestCancelRequestIsUnconditional(t *testing.T) {
	f := newFixture(t)
	ev := f.event(t, 0, true, eventModel.StatePublished)
	guest := f.user(t, "guest")
	req := f.request(t, guest, ev)

	out, err := f.svc.CancelRequest(context.Background(), guest, req.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if out.Status != string(requestModel.StatusCanceled) {
		t.Fatalf("status=%s want=CANCELED", out.Status)
	}

	_, err = f.svc.CancelRequest(context.Background(), f.initiator, req.ID)
	wantStatus(t, err, 404)

	mine, err := f.svc.GetUserRequests(context.Background(), guest)
	if err != nil {
		t.Fatalf("user requests: %v", err)
	}
	if len(mine) != 1 || mine[0].Status != string(requestModel.StatusCanceled) {
		t.Fatalf("requests=%+v", mine)
	}
}
