package model

// UserModel maps the users table. Email uniqueness is case-insensitive and is
// enforced by a LOWER(email) unique index.
type UserModel struct {
	ID    int64  `gorm:"column:id;primaryKey" json:"id"`
	Name  string `gorm:"column:name;size:250;not null" json:"name"`
	Email string `gorm:"column:email;size:254;not null" json:"email"`
}

func (UserModel) TableName() string {
	return "users"
}
