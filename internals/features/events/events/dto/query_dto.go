package dto

import "time"

// AdminEventQuery holds the admin search parameters as received.
type AdminEventQuery struct {
	Users      []int64
	States     []string
	Categories []int64
	RangeStart *time.Time
	RangeEnd   *time.Time
}

type PublicEventQuery struct {
	Text          string
	Categories    []int64
	Paid          *bool
	OnlyAvailable bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	Sort          string
}
