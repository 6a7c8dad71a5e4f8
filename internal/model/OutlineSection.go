package model

type OutlineSection struct {
	BaseModel
	Title         string `gorm:"type:text;not null" json:"title" form:"title" binding:"required,strNotEmpty"`
	OrderIndex    int    `gorm:"not null;default:0" json:"order_index" form:"order_index"`
	SectionNumber string `gorm:"type:text" json:"section_number" form:"section_number"`

	ParentSectionID *uint           `gorm:"index" json:"parent_section_id" form:"parent_section_id"`
	ParentSection   *OutlineSection `json:"-"`

	ProjectID uint    `gorm:"not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project   Project `json:"-"`
}

func (s OutlineSection) TableName() string {
	return "outline_sections"
}
