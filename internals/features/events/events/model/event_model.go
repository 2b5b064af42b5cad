package model

import (
	"time"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	userModel "ewm_backend/internals/features/users/user/model"
)

type Location struct {
	Lat float64 `gorm:"column:lat;not null"`
	Lon float64 `gorm:"column:lon;not null"`
}

type EventModel struct {
	ID                int64                       `gorm:"column:id;primaryKey"`
	Title             string                      `gorm:"column:title;size:120;not null"`
	Annotation        string                      `gorm:"column:annotation;size:2000;not null"`
	Description       string                      `gorm:"column:description;size:7000;not null"`
	EventDate         time.Time                   `gorm:"column:event_date;not null"`
	Location          Location                    `gorm:"embedded"`
	CategoryID        int64                       `gorm:"column:category_id;not null"`
	Category          categoryModel.CategoryModel `gorm:"foreignKey:CategoryID"`
	InitiatorID       int64                       `gorm:"column:initiator_id;not null"`
	Initiator         userModel.UserModel         `gorm:"foreignKey:InitiatorID"`
	Paid              bool                        `gorm:"column:paid;not null"`
	ParticipantLimit  int                         `gorm:"column:participant_limit;not null"`
	RequestModeration bool                        `gorm:"column:request_moderation;not null"`
	PublishedOn       *time.Time                  `gorm:"column:published_on"`
	State             EventState                  `gorm:"column:state;size:16;not null"`
	CreatedOn         time.Time                   `gorm:"column:created_on;not null"`
}

func (EventModel) TableName() string {
	return "events"
}

// HasLimit is false for events that accept unlimited participants.
func (e *EventModel) HasLimit() bool { return e.ParticipantLimit > 0 }

// AutoConfirms reports whether new requests skip moderation.
func (e *EventModel) AutoConfirms() bool {
	return e.ParticipantLimit == 0 || !e.RequestModeration
}
