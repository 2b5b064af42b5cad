package model

import (
	"gorm.io/datatypes"
)

// CompilationModel keeps its event ids as an ordered JSON array; the order is
// the order events are rendered in.
type CompilationModel struct {
	ID       int64                      `gorm:"column:id;primaryKey"`
	Title    string                     `gorm:"column:title;size:50;not null"`
	Pinned   bool                       `gorm:"column:pinned;not null"`
	EventIDs datatypes.JSONSlice[int64] `gorm:"column:event_ids;type:jsonb;not null"`
}

func (CompilationModel) TableName() string {
	return "compilations"
}
