package dbtime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateTimeJSONRoundTrip(t *testing.T) {
	want := time.Date(2026, 3, 14, 9, 30, 5, 0, time.Local)
	b, err := json.Marshal(From(want))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-03-14 09:30:05"` {
		t.Fatalf("marshal=%s want=%q", b, "2026-03-14 09:30:05")
	}

	var got DateTime
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got=%v want=%v", got.Time, want)
	}
}

func TestDateTimeRejectsOtherLayouts(t *testing.T) {
	var d DateTime
	if err := json.Unmarshal([]byte(`"2026-03-14T09:30:05Z"`), &d); err == nil {
		t.Fatalf("expected error for ISO layout")
	}
	if err := json.Unmarshal([]byte(`12345`), &d); err == nil {
		t.Fatalf("expected error for number")
	}
}

func TestDateTimeNull(t *testing.T) {
	var p *DateTime
	b, _ := json.Marshal(struct {
		At *DateTime `json:"at"`
	}{At: p})
	if string(b) != `{"at":null}` {
		t.Fatalf("got=%s", b)
	}
	if FromPtr(nil) != nil {
		t.Fatalf("FromPtr(nil) should be nil")
	}
}
