package model

import (
	"fmt"
	"strings"
)

type EventState string

const (
	StatePending   EventState = "PENDING"
	StatePublished EventState = "PUBLISHED"
	StateCanceled  EventState = "CANCELED"
)

func ParseEventState(s string) (EventState, error) {
	switch st := EventState(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatePending, StatePublished, StateCanceled:
		return st, nil
	}
	return "", fmt.Errorf("unknown event state %q", s)
}

// StateAction is a requested lifecycle transition. Each action maps to exactly
// one target state; which actions a caller may use is decided by the service.
type StateAction string

const (
	ActionSendToReview StateAction = "SEND_TO_REVIEW"
	ActionCancelReview StateAction = "CANCEL_REVIEW"
	ActionPublishEvent StateAction = "PUBLISH_EVENT"
	ActionRejectEvent  StateAction = "REJECT_EVENT"
)

var actionTargets = map[StateAction]EventState{
	ActionSendToReview: StatePending,
	ActionCancelReview: StateCanceled,
	ActionPublishEvent: StatePublished,
	ActionRejectEvent:  StateCanceled,
}

func ParseStateAction(s string) (StateAction, error) {
	a := StateAction(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := actionTargets[a]; !ok {
		return "", fmt.Errorf("unknown state action %q", s)
	}
	return a, nil
}

func (a StateAction) Target() EventState { return actionTargets[a] }

type EventSort string

const (
	SortEventDate EventSort = "EVENT_DATE"
	SortViews     EventSort = "VIEWS"
)

func ParseEventSort(s string) (EventSort, error) {
	switch so := EventSort(strings.ToUpper(strings.TrimSpace(s))); so {
	case SortEventDate, SortViews:
		return so, nil
	}
	return "", fmt.Errorf("unknown sort %q", s)
}
