package model

import (
	constant "github.com/papermapper/papermapper/internal/constant"
)

type Project struct {
	BaseModel
	Name         string                 `gorm:"type:varchar(200);not null" json:"name" form:"name" binding:"required,strNotEmpty"`
	ClassSubject string                 `gorm:"type:text" json:"class_subject" form:"class_subject"`
	PaperType    string                 `gorm:"type:text" json:"paper_type" form:"paper_type"`
	DueDate      string                 `gorm:"type:text" json:"due_date" form:"due_date"`
	Status       constant.ProjectStatus `gorm:"type:text;default:'not_started';not null" json:"status"`

	// One optional assignment file; replaced wholesale on re-upload.
	AssignmentFile     string `gorm:"type:text" json:"assignment_file"`
	AssignmentFilename string `gorm:"type:text" json:"assignment_filename"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `json:"-"`
}

func (p Project) TableName() string {
	return "projects"
}
