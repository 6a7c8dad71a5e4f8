package model

import "time"

type PasswordResetCode struct {
	BaseModel
	Code      string    `gorm:"type:text;not null;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"-"`
	Used      bool      `gorm:"type:boolean;default:false;not null" json:"-"`

	UserID uint `gorm:"not null;index" json:"-"`
	User   User `json:"-"`
}

func (p PasswordResetCode) TableName() string {
	return "password_reset_codes"
}

func (p PasswordResetCode) Usable(now time.Time) bool {
	return !p.Used && now.Before(p.ExpiresAt)
}
