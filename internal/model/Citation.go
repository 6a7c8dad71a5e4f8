package model

type Citation struct {
	BaseModel
	Text        string `gorm:"type:text;not null" json:"text" form:"text" binding:"required,strNotEmpty"`
	Credibility string `gorm:"type:text" json:"credibility" form:"credibility"`

	ProjectID uint    `gorm:"not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project   Project `json:"-"`
}

func (c Citation) TableName() string {
	return "citations"
}
