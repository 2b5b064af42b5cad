package model

import (
	"fmt"
	"strings"
	"time"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusConfirmed RequestStatus = "CONFIRMED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCanceled  RequestStatus = "CANCELED"
)

func ParseRequestStatus(s string) (RequestStatus, error) {
	switch st := RequestStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCanceled:
		return st, nil
	}
	return "", fmt.Errorf("unknown request status %q", s)
}

// RequestModel is a participation request. One per (requester, event).
type RequestModel struct {
	ID          int64         `gorm:"column:id;primaryKey"`
	EventID     int64         `gorm:"column:event_id;not null"`
	RequesterID int64         `gorm:"column:requester_id;not null"`
	Status      RequestStatus `gorm:"column:status;size:16;not null"`
	Created     time.Time     `gorm:"column:created;not null"`
}

func (RequestModel) TableName() string {
	return "participation_requests"
}
