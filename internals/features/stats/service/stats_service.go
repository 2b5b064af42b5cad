package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	eventModel "ewm_backend/internals/features/events/events/model"
	"ewm_backend/internals/features/stats/dto"
	"ewm_backend/internals/helpers/dbtime"
)

type StatsClient interface {
	Hit(ctx context.Context, hit dto.EndpointHit) error
	Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]dto.ViewStats, error)
}

// Cache is an optional read-through store of per-uri view counts.
type Cache interface {
	Get(ctx context.Context, uris []string) (map[string]int64, error)
	Put(ctx context.Context, counts map[string]int64) error
}

type StatsService struct {
	App    string
	Client StatsClient
	Cache  Cache
	Log    *zap.Logger
	Now    func() time.Time
}

func NewStatsService(app string, client StatsClient, cache Cache, log *zap.Logger) *StatsService {
	return &StatsService{App: app, Client: client, Cache: cache, Log: log.Named("stats"), Now: dbtime.Now}
}

func EventURI(id int64) string {
	return "/events/" + strconv.FormatInt(id, 10)
}

// SaveHit records a hit. Failures are logged and never reach the caller.
func (s *StatsService) SaveHit(ctx context.Context, uri, ip string) {
	hit := dto.EndpointHit{App: s.App, URI: uri, IP: ip, Timestamp: dbtime.DateTime{Time: s.Now()}}
	if err := s.Client.Hit(ctx, hit); err != nil {
		s.Log.Warn("save hit failed", zap.String("uri", uri), zap.Error(err))
	}
}

// Views returns unique views per event id counted from the earliest creation
// time among events. Events the stats service does not know get 0.
func (s *StatsService) Views(ctx context.Context, events []eventModel.EventModel) map[int64]int64 {
	out := make(map[int64]int64, len(events))
	if len(events) == 0 {
		return out
	}

	start := events[0].CreatedOn
	byURI := make(map[string]int64, len(events))
	uris := make([]string, 0, len(events))
	for _, e := range events {
		out[e.ID] = 0
		if e.CreatedOn.Before(start) {
			start = e.CreatedOn
		}
		uri := EventURI(e.ID)
		if _, dup := byURI[uri]; !dup {
			uris = append(uris, uri)
		}
		byURI[uri] = e.ID
	}

	counts := s.cached(ctx, uris)
	missing := make([]string, 0, len(uris))
	for _, u := range uris {
		if _, ok := counts[u]; !ok {
			missing = append(missing, u)
		}
	}

	if len(missing) > 0 {
		fetched, err := s.fetch(ctx, start, missing)
		if err != nil {
			s.Log.Warn("views unavailable", zap.Int("uris", len(missing)), zap.Error(err))
		} else {
			for u, n := range fetched {
				counts[u] = n
			}
			s.store(ctx, fetched)
		}
	}

	for u, n := range counts {
		if id, ok := byURI[u]; ok {
			out[id] = n
		}
	}
	return out
}

// fetch asks the stats service for uris. Every requested uri appears in the
// result so that zero counts are cached too.
func (s *StatsService) fetch(ctx context.Context, start time.Time, uris []string) (map[string]int64, error) {
	stats, err := s.Client.Stats(ctx, start, s.Now(), uris, true)
	if err != nil {
		return nil, fmt.Errorf("stats request: %w", err)
	}
	out := make(map[string]int64, len(uris))
	for _, u := range uris {
		out[u] = 0
	}
	for _, v := range stats {
		uri := strings.TrimSpace(v.URI)
		if _, ok := out[uri]; ok {
			out[uri] = v.Hits
		}
	}
	return out, nil
}

func (s *StatsService) cached(ctx context.Context, uris []string) map[string]int64 {
	if s.Cache == nil {
		return map[string]int64{}
	}
	counts, err := s.Cache.Get(ctx, uris)
	if err != nil {
		s.Log.Debug("views cache read failed", zap.Error(err))
		return map[string]int64{}
	}
	return counts
}

func (s *StatsService) store(ctx context.Context, counts map[string]int64) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Put(ctx, counts); err != nil {
		s.Log.Debug("views cache write failed", zap.Error(err))
	}
}
