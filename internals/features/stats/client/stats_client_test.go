package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ewm_backend/internals/features/stats/dto"
	"ewm_backend/internals/helpers/dbtime"
)

func TestHitPostsJSON(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/hit" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	at := time.Date(2030, 1, 2, 3, 4, 5, 0, time.Local)
	c := New(srv.URL, time.Second)
	err := c.Hit(context.Background(), dto.EndpointHit{App: "ewm-main-service", URI: "/events/1", IP: "10.0.0.1", Timestamp: dbtime.From(at)})
	if err != nil {
		t.Fatalf("hit: %v", err)
	}
	for _, want := range []string{`"app":"ewm-main-service"`, `"uri":"/events/1"`, `"ip":"10.0.0.1"`, `"timestamp":"2030-01-02 03:04:05"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body=%s missing %s", body, want)
		}
	}
}

func TestStatsSendsQueryAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("start") != "2030-01-01 00:00:00" || q.Get("unique") != "true" {
			t.Errorf("query=%v", q)
		}
		if uris := q["uris"]; len(uris) != 2 || uris[0] != "/events/1" {
			t.Errorf("uris=%v", uris)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"app":"ewm-main-service","uri":"/events/1","hits":4}]`)
	}))
	defer srv.Close()

	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)
	out, err := New(srv.URL, time.Second).Stats(context.Background(), start, start.Add(time.Hour), []string{"/events/1", "/events/2"}, true)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(out) != 1 || out[0].URI != "/events/1" || out[0].Hits != 4 {
		t.Fatalf("stats=%+v", out)
	}
}

func TestStatsReportsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Stats(context.Background(), time.Now(), time.Now(), nil, false)
	if err == nil || !strings.Contains(err.Error(), "http 500") {
		t.Fatalf("err=%v want http 500", err)
	}
}
