package model

type UserCustomOption struct {
	BaseModel
	OptionType string `gorm:"type:text;not null;index" json:"option_type" form:"option_type" binding:"required,strNotEmpty"`
	Value      string `gorm:"type:text;not null" json:"value" form:"value" binding:"required,strNotEmpty"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `json:"-"`
}

func (o UserCustomOption) TableName() string {
	return "user_custom_options"
}
