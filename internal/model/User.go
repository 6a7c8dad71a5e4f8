package model

type User struct {
	BaseModel
	Email          string `gorm:"unique;not null;type:citext" json:"email" form:"email" binding:"required,email"`
	HashedPassword string `gorm:"type:text;not null" json:"-"`
	IsActive       bool   `gorm:"type:boolean;default:true;not null" json:"is_active"`
}

func (u User) TableName() string {
	return "users"
}
