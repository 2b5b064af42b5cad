package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	eventModel "ewm_backend/internals/features/events/events/model"
	"ewm_backend/internals/features/stats/dto"
)

type fakeClient struct {
	hits  []dto.EndpointHit
	stats []dto.ViewStats
	err   error
	asked [][]string
}

func (f *fakeClient) Hit(_ context.Context, hit dto.EndpointHit) error {
	f.hits = append(f.hits, hit)
	return f.err
}

func (f *fakeClient) Stats(_ context.Context, _, _ time.Time, uris []string, unique bool) ([]dto.ViewStats, error) {
	f.asked = append(f.asked, uris)
	if !unique {
		return nil, errors.New("expected unique views")
	}
	return f.stats, f.err
}

type mapCache map[string]int64

func (m mapCache) Get(_ context.Context, uris []string) (map[string]int64, error) {
	out := map[string]int64{}
	for _, u := range uris {
		if n, ok := m[u]; ok {
			out[u] = n
		}
	}
	return out, nil
}

func (m mapCache) Put(_ context.Context, counts map[string]int64) error {
	for u, n := range counts {
		m[u] = n
	}
	return nil
}

func events(ids ...int64) []eventModel.EventModel {
	out := make([]eventModel.EventModel, 0, len(ids))
	for _, id := range ids {
		out = append(out, eventModel.EventModel{ID: id, CreatedOn: time.Now().Add(-time.Hour)})
	}
	return out
}

func TestViewsMapsURIsToEvents(t *testing.T) {
	c := &fakeClient{stats: []dto.ViewStats{{App: "ewm", URI: "/events/2", Hits: 5}}}
	s := NewStatsService("ewm", c, nil, zap.NewNop())

	got := s.Views(context.Background(), events(1, 2))
	if got[1] != 0 || got[2] != 5 {
		t.Fatalf("views=%v want 1:0 2:5", got)
	}
}

func TestViewsDegradeToZero(t *testing.T) {
	c := &fakeClient{err: errors.New("stats down")}
	s := NewStatsService("ewm", c, nil, zap.NewNop())

	got := s.Views(context.Background(), events(1))
	if n, ok := got[1]; !ok || n != 0 {
		t.Fatalf("views=%v want 1:0", got)
	}
}

func TestViewsUseCache(t *testing.T) {
	cache := mapCache{"/events/1": 9}
	c := &fakeClient{stats: []dto.ViewStats{{URI: "/events/2", Hits: 3}}}
	s := NewStatsService("ewm", c, cache, zap.NewNop())

	got := s.Views(context.Background(), events(1, 2))
	if got[1] != 9 || got[2] != 3 {
		t.Fatalf("views=%v want 1:9 2:3", got)
	}
	if len(c.asked) != 1 || len(c.asked[0]) != 1 || c.asked[0][0] != "/events/2" {
		t.Fatalf("asked=%v want only /events/2", c.asked)
	}
	if cache["/events/2"] != 3 {
		t.Fatalf("cache=%v want /events/2 stored", cache)
	}
}

func TestSaveHitSwallowsErrors(t *testing.T) {
	c := &fakeClient{err: errors.New("stats down")}
	s := NewStatsService("ewm-main-service", c, nil, zap.NewNop())

	s.SaveHit(context.Background(), "/events/3", "10.1.1.1")
	if len(c.hits) != 1 || c.hits[0].App != "ewm-main-service" || c.hits[0].IP != "10.1.1.1" {
		t.Fatalf("hits=%+v", c.hits)
	}
}
