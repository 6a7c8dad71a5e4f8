package model

import (
	constant "github.com/papermapper/papermapper/internal/constant"
)

// Card is the positioned canvas proxy for one typed payload row. The
// (Type, DataID) pair is polymorphic; cross-table integrity is enforced
// by the deletion cascade, not by a database constraint.
type Card struct {
	BaseModel
	Type      constant.CardType `gorm:"type:text;not null" json:"type" form:"type" binding:"required"`
	DataID    uint              `gorm:"not null" json:"data_id" form:"data_id" binding:"required"`
	PositionX *float64          `gorm:"type:double precision" json:"position_x" form:"position_x"`
	PositionY *float64          `gorm:"type:double precision" json:"position_y" form:"position_y"`

	ProjectID uint    `gorm:"not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project   Project `json:"-"`
}

func (c Card) TableName() string {
	return "cards"
}
