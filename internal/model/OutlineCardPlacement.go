package model

// A card sits in at most one outline section; the unique index on CardID
// makes repeated placement an upsert at the repository layer.
type OutlineCardPlacement struct {
	BaseModel
	OrderIndex int `gorm:"not null;default:0" json:"order_index" form:"order_index"`

	CardID uint `gorm:"not null;uniqueIndex" json:"card_id" form:"card_id" binding:"required"`
	Card   Card `json:"-"`

	SectionID uint           `gorm:"not null;index" json:"section_id" form:"section_id" binding:"required"`
	Section   OutlineSection `json:"-"`

	ProjectID uint    `gorm:"not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project   Project `json:"-"`
}

func (p OutlineCardPlacement) TableName() string {
	return "outline_card_placements"
}
