package model

type CardLink struct {
	BaseModel
	SourceCardID uint   `gorm:"not null;index;uniqueIndex:uq_card_links_edge" json:"source_card_id" form:"source_card_id" binding:"required"`
	TargetCardID uint   `gorm:"not null;index;uniqueIndex:uq_card_links_edge" json:"target_card_id" form:"target_card_id" binding:"required"`
	SourceHandle string `gorm:"type:text" json:"source_handle" form:"source_handle"`
	TargetHandle string `gorm:"type:text" json:"target_handle" form:"target_handle"`

	ProjectID uint    `gorm:"not null;index;uniqueIndex:uq_card_links_edge" json:"project_id" form:"project_id" binding:"required"`
	Project   Project `json:"-"`
}

func (cl CardLink) TableName() string {
	return "card_links"
}
