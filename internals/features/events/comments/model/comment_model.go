package model

import (
	"time"

	eventModel "ewm_backend/internals/features/events/events/model"
	userModel "ewm_backend/internals/features/users/user/model"
)

type CommentModel struct {
	ID       int64                 `gorm:"column:id;primaryKey"`
	Text     string                `gorm:"column:text;size:2000;not null"`
	EventID  int64                 `gorm:"column:event_id;not null"`
	Event    eventModel.EventModel `gorm:"foreignKey:EventID"`
	AuthorID int64                 `gorm:"column:author_id;not null"`
	Author   userModel.UserModel   `gorm:"foreignKey:AuthorID"`
	Created  time.Time             `gorm:"column:created;not null"`
}

func (CommentModel) TableName() string {
	return "comments"
}
