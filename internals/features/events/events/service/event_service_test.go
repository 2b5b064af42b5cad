package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	"ewm_backend/internals/features/events/events/dto"
	eventModel "ewm_backend/internals/features/events/events/model"
	userModel "ewm_backend/internals/features/users/user/model"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/helpers/dbtime"
	"ewm_backend/internals/repository"
	"ewm_backend/internals/repository/memstore"
)

var testNow = time.Date(2030, 5, 1, 12, 0, 0, 0, time.Local)

type fakeViews map[int64]int64

func (f fakeViews) Views(_ context.Context, events []eventModel.EventModel) map[int64]int64 {
	out := map[int64]int64{}
	for _, e := range events {
		out[e.ID] = f[e.ID]
	}
	return out
}

type fixture struct {
	svc      *EventService
	store    *memstore.Store
	user     int64
	category int64
}

func newFixture(t *testing.T, views ViewCounter) fixture {
	t.Helper()
	ctx := context.Background()
	st := memstore.New()
	u := &userModel.UserModel{Name: "Ann", Email: "ann@example.com"}
	if err := st.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	c := &categoryModel.CategoryModel{Name: "Concerts"}
	if err := st.CreateCategory(ctx, c); err != nil {
		t.Fatalf("create category: %v", err)
	}
	svc := NewEventService(st, views, zap.NewNop())
	svc.Now = func() time.Time { return testNow }
	return fixture{svc: svc, store: st, user: u.ID, category: c.ID}
}

func ptr[T any](v T) *T { return &v }

func draft(category int64, at time.Time) dto.EventRequest {
	return dto.EventRequest{
		Title:       ptr("Jazz night"),
		Annotation:  ptr("An evening of live jazz downtown"),
		Description: ptr("Three bands, one stage and a lot of improvisation."),
		EventDate:   &dbtime.DateTime{Time: at},
		Location:    &dto.LocationRequest{Lat: ptr(55.75), Lon: ptr(37.61)},
		Category:    ptr(category),
	}
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

func (f fixture) create(t *testing.T, req dto.EventRequest) *dto.EventFullDto {
	t.Helper()
	out, err := f.svc.CreateEvent(context.Background(), f.user, req)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	return out
}

func (f fixture) publish(t *testing.T, id int64) *dto.EventFullDto {
	t.Helper()
	out, err := f.svc.UpdateEventByAdmin(context.Background(), id, dto.EventRequest{StateAction: ptr("PUBLISH_EVENT")})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	return out
}

func TestCreateEventAppliesDefaults(t *testing.T) {
	f := newFixture(t, nil)
	out := f.create(t, draft(f.category, testNow.Add(3*time.Hour)))

	if out.State != string(eventModel.StatePending) {
		t.Fatalf("state=%s want=PENDING", out.State)
	}
	if out.Paid || out.ParticipantLimit != 0 || !out.RequestModeration {
		t.Fatalf("defaults paid=%v limit=%d moderation=%v", out.Paid, out.ParticipantLimit, out.RequestModeration)
	}
	if !out.CreatedOn.Equal(testNow) {
		t.Fatalf("createdOn=%v want=%v", out.CreatedOn, testNow)
	}
	if out.PublishedOn != nil {
		t.Fatalf("publishedOn=%v want=nil", out.PublishedOn)
	}
	if out.Initiator.ID != f.user || out.Category.ID != f.category {
		t.Fatalf("initiator=%d category=%d", out.Initiator.ID, out.Category.ID)
	}
}

func TestCreateEventRejectsDatesTooSoon(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.CreateEvent(context.Background(), f.user, draft(f.category, testNow.Add(time.Hour)))
	wantStatus(t, err, 409)

	_, err = f.svc.CreateEvent(context.Background(), f.user, draft(f.category, testNow.Add(-time.Hour)))
	wantStatus(t, err, 400)
}

func TestCreateEventMissingReferences(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.CreateEvent(context.Background(), 999, draft(f.category, testNow.Add(3*time.Hour)))
	wantStatus(t, err, 404)

	_, err = f.svc.CreateEvent(context.Background(), f.user, draft(999, testNow.Add(3*time.Hour)))
	wantStatus(t, err, 404)
}

func TestCreateEventRejectsStateAction(t *testing.T) {
	f := newFixture(t, nil)
	req := draft(f.category, testNow.Add(3*time.Hour))
	req.StateAction = ptr("PUBLISH_EVENT")

	_, err := f.svc.CreateEvent(context.Background(), f.user, req)
	wantStatus(t, err, 400)
}

func TestUserPatchMergesOnlyPresentFields(t *testing.T) {
	f := newFixture(t, nil)
	ev := f.create(t, draft(f.category, testNow.Add(3*time.Hour)))

	out, err := f.svc.UpdateUserEvent(context.Background(), f.user, ev.ID, dto.EventRequest{
		Title:       ptr("Late jazz night"),
		StateAction: ptr("CANCEL_REVIEW"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Title != "Late jazz night" || out.Annotation != ev.Annotation {
		t.Fatalf("title=%q annotation=%q", out.Title, out.Annotation)
	}
	if out.State != string(eventModel.StateCanceled) {
		t.Fatalf("state=%s want=CANCELED", out.State)
	}

	out, err = f.svc.UpdateUserEvent(context.Background(), f.user, ev.ID, dto.EventRequest{StateAction: ptr("SEND_TO_REVIEW")})
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if out.State != string(eventModel.StatePending) {
		t.Fatalf("state=%s want=PENDING", out.State)
	}
}

func TestUserCannotPublish(t *testing.T) {
	f := newFixture(t, nil)
	ev := f.create(t, draft(f.category, testNow.Add(3*time.Hour)))

	_, err := f.svc.UpdateUserEvent(context.Background(), f.user, ev.ID, dto.EventRequest{StateAction: ptr("PUBLISH_EVENT")})
	wantStatus(t, err, 409)

	_, err = f.svc.UpdateUserEvent(context.Background(), f.user, ev.ID, dto.EventRequest{StateAction: ptr("DANCE")})
	wantStatus(t, err, 400)
}

func TestInitiatorCannotEditPublishedEvent(t *testing.T) {
	f := newFixture(t, nil)
	ev := f.create(t, draft(f.category, testNow.Add(3*time.Hour)))
	f.publish(t, ev.ID)

	_, err := f.svc.UpdateUserEvent(context.Background(), f.user, ev.ID, dto.EventRequest{Title: ptr("Renamed")})
	wantStatus(t, err, 409)

	got, err := f.svc.GetUserEventByID(context.Background(), f.user, ev.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != ev.Title {
		t.Fatalf("title=%q want=%q", got.Title, ev.Title)
	}
}

func TestAdminPublishSetsPublishedOn(t *testing.T) {
	f := newFixture(t, fakeViews{})
	ev := f.create(t, draft(f.category, testNow.Add(3*time.Hour)))

	out := f.publish(t, ev.ID)
	if out.State != string(eventModel.StatePublished) {
		t.Fatalf("state=%s want=PUBLISHED", out.State)
	}
	if out.PublishedOn == nil || !out.PublishedOn.Equal(testNow) {
		t.Fatalf("publishedOn=%v want=%v", out.PublishedOn, testNow)
	}
	if !out.CreatedOn.Equal(ev.CreatedOn.Time) {
		t.Fatalf("createdOn changed: %v -> %v", ev.CreatedOn, out.CreatedOn)
	}
}

func TestAdminCannotPublishCanceledEvent(t *testing.T) {
	f := newFixture(t, nil)
	ev := f.create(t, draft(f.category, testNow.Add(3*time.Hour)))
	if _, err := f.svc.UpdateEventByAdmin(context.Background(), ev.ID, dto.EventRequest{StateAction: ptr("REJECT_EVENT")}); err != nil {
		t.Fatalf("reject: %v", err)
	}

	_, err := f.svc.UpdateEventByAdmin(context.Background(), ev.ID, dto.EventRequest{StateAction: ptr("PUBLISH_EVENT")})
	wantStatus(t, err, 409)

	stored, err := f.store.FindEvent(context.Background(), ev.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.State != eventModel.StateCanceled {
		t.Fatalf("state=%s want=CANCELED", stored.State)
	}
}

func TestAdminCannotRejectPublishedEvent(t *testing.T) {
	f := newFixture(t, nil)
	ev := f.create(t, draft(f.category, testNow.Add(3*time.Hour)))
	f.publish(t, ev.ID)

	_, err := f.svc.UpdateEventByAdmin(context.Background(), ev.ID, dto.EventRequest{StateAction: ptr("REJECT_EVENT")})
	wantStatus(t, err, 409)
}

func TestPublicEventsOnlyPublishedWithViews(t *testing.T) {
	f := newFixture(t, nil)
	pending := f.create(t, draft(f.category, testNow.Add(3*time.Hour)))
	published := f.create(t, draft(f.category, testNow.Add(4*time.Hour)))
	f.publish(t, published.ID)
	f.svc.Views = fakeViews{published.ID: 7}

	page, _ := helper.PageFromOffset(0, 10)
	out, err := f.svc.GetPublicEvents(context.Background(), dto.PublicEventQuery{}, page)
	if err != nil {
		t.Fatalf("public events: %v", err)
	}
	if len(out) != 1 || out[0].ID != published.ID {
		t.Fatalf("events=%+v want only %d (pending %d hidden)", out, published.ID, pending.ID)
	}
	if out[0].Views != 7 {
		t.Fatalf("views=%d want=7", out[0].Views)
	}

	_, err = f.svc.GetPublicEventByID(context.Background(), pending.ID)
	wantStatus(t, err, 404)
}

func TestPublicEventsRejectsBadQuery(t *testing.T) {
	f := newFixture(t, nil)
	page := repository.Page{Limit: 10}

	_, err := f.svc.GetPublicEvents(context.Background(), dto.PublicEventQuery{Sort: "RATING"}, page)
	wantStatus(t, err, 400)

	start, end := testNow.Add(time.Hour), testNow
	_, err = f.svc.GetPublicEvents(context.Background(), dto.PublicEventQuery{RangeStart: &start, RangeEnd: &end}, page)
	wantStatus(t, err, 400)

	if _, err := f.svc.GetPublicEvents(context.Background(), dto.PublicEventQuery{Sort: "VIEWS"}, page); err != nil {
		t.Fatalf("views sort: %v", err)
	}
}

func TestAdminSearchFiltersByState(t *testing.T) {
	f := newFixture(t, nil)
	a := f.create(t, draft(f.category, testNow.Add(3*time.Hour)))
	b := f.create(t, draft(f.category, testNow.Add(5*time.Hour)))
	f.publish(t, b.ID)
	page := repository.Page{Limit: 10}

	out, err := f.svc.GetEventsByAdmin(context.Background(), dto.AdminEventQuery{States: []string{"PENDING"}}, page)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(out) != 1 || out[0].ID != a.ID {
		t.Fatalf("events=%+v want only %d", out, a.ID)
	}

	_, err = f.svc.GetEventsByAdmin(context.Background(), dto.AdminEventQuery{States: []string{"ARCHIVED"}}, page)
	wantStatus(t, err, 400)

	out, err = f.svc.GetEventsByAdmin(context.Background(), dto.AdminEventQuery{}, page)
	if err != nil {
		t.Fatalf("search all: %v", err)
	}
	if len(out) != 2 || out[0].ID != a.ID || out[1].ID != b.ID {
		t.Fatalf("events=%+v want [%d %d] in date order", out, a.ID, b.ID)
	}
}
