package model

type CategoryModel struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;size:50;not null" json:"name"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
