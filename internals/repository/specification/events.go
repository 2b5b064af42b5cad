package specification

import (
	"slices"
	"strings"
	"time"

	"github.com/lib/pq"

	eventModel "ewm_backend/internals/features/events/events/model"
	requestModel "ewm_backend/internals/features/events/requests/model"
	"ewm_backend/internals/repository"
)

// EventRow is what event predicates see in memory: the event and its number
// of confirmed requests.
type EventRow struct {
	Event     *eventModel.EventModel
	Confirmed int64
}

func Events(f repository.EventFilter) *Spec[EventRow] {
	s := New[EventRow]()
	if f.Initiators != nil {
		s.And(InitiatorIn(f.Initiators))
	}
	if f.States != nil {
		s.And(StateIn(f.States))
	}
	if f.Categories != nil {
		s.And(CategoryIn(f.Categories))
	}
	if f.Text != "" {
		s.And(TextContains(f.Text))
	}
	if f.Paid != nil {
		s.And(PaidEq(*f.Paid))
	}
	if f.OnlyAvailable {
		s.And(OnlyAvailable())
	}
	if f.RangeStart != nil {
		s.And(EventDateFrom(*f.RangeStart))
	}
	if f.RangeEnd != nil {
		s.And(EventDateTo(*f.RangeEnd))
	}
	return s
}

func InitiatorIn(ids []int64) Predicate[EventRow] {
	return Predicate[EventRow]{
		Name:  "initiator_in",
		Query: "events.initiator_id = ANY(?)",
		Args:  []any{pq.Array(ids)},
		Match: func(r EventRow) bool { return slices.Contains(ids, r.Event.InitiatorID) },
	}
}

func StateIn(states []eventModel.EventState) Predicate[EventRow] {
	raw := make([]string, len(states))
	for i, st := range states {
		raw[i] = string(st)
	}
	return Predicate[EventRow]{
		Name:  "state_in",
		Query: "events.state = ANY(?)",
		Args:  []any{pq.Array(raw)},
		Match: func(r EventRow) bool { return slices.Contains(states, r.Event.State) },
	}
}

func CategoryIn(ids []int64) Predicate[EventRow] {
	return Predicate[EventRow]{
		Name:  "category_in",
		Query: "events.category_id = ANY(?)",
		Args:  []any{pq.Array(ids)},
		Match: func(r EventRow) bool { return slices.Contains(ids, r.Event.CategoryID) },
	}
}

// TextContains matches annotation or description, ignoring case.
func TextContains(text string) Predicate[EventRow] {
	needle := strings.ToUpper(text)
	pattern := "%" + escapeLike(needle) + "%"
	return Predicate[EventRow]{
		Name:  "text_contains",
		Query: "(UPPER(events.annotation) LIKE ? OR UPPER(events.description) LIKE ?)",
		Args:  []any{pattern, pattern},
		Match: func(r EventRow) bool {
			return strings.Contains(strings.ToUpper(r.Event.Annotation), needle) ||
				strings.Contains(strings.ToUpper(r.Event.Description), needle)
		},
	}
}

func PaidEq(paid bool) Predicate[EventRow] {
	return Predicate[EventRow]{
		Name:  "paid_eq",
		Query: "events.paid = ?",
		Args:  []any{paid},
		Match: func(r EventRow) bool { return r.Event.Paid == paid },
	}
}

// OnlyAvailable keeps limited events that still have free places. Events
// without a limit are excluded.
func OnlyAvailable() Predicate[EventRow] {
	return Predicate[EventRow]{
		Name: "only_available",
		Query: "events.participant_limit > 0 AND events.participant_limit > " +
			"(SELECT COUNT(*) FROM participation_requests pr WHERE pr.event_id = events.id AND pr.status = ?)",
		Args: []any{string(requestModel.StatusConfirmed)},
		Match: func(r EventRow) bool {
			return r.Event.ParticipantLimit > 0 && int64(r.Event.ParticipantLimit) > r.Confirmed
		},
	}
}

func EventDateFrom(t time.Time) Predicate[EventRow] {
	return Predicate[EventRow]{
		Name:  "event_date_from",
		Query: "events.event_date >= ?",
		Args:  []any{t},
		Match: func(r EventRow) bool { return !r.Event.EventDate.Before(t) },
	}
}

func EventDateTo(t time.Time) Predicate[EventRow] {
	return Predicate[EventRow]{
		Name:  "event_date_to",
		Query: "events.event_date <= ?",
		Args:  []any{t},
		Match: func(r EventRow) bool { return !r.Event.EventDate.After(t) },
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
