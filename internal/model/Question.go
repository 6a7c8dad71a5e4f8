package model

import (
	"github.com/lib/pq"
)

type Question struct {
	BaseModel
	QuestionText string         `gorm:"type:text;not null" json:"question_text" form:"question_text" binding:"required,strNotEmpty"`
	Category     string         `gorm:"type:text" json:"category" form:"category"`
	Status       string         `gorm:"type:text" json:"status" form:"status"`
	Priority     string         `gorm:"type:text" json:"priority" form:"priority"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags" form:"tags"`

	Files         string `gorm:"type:text" json:"files"`
	FileFilenames string `gorm:"type:text" json:"file_filenames"`

	ProjectID uint    `gorm:"not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project   Project `json:"-"`
}

func (q Question) TableName() string {
	return "questions"
}

func (q *Question) PayloadID() uint { return q.ID }

func (q *Question) AttachmentLists() (string, string) {
	return q.Files, q.FileFilenames
}

func (q *Question) SetAttachmentLists(files, filenames string) {
	q.Files = files
	q.FileFilenames = filenames
}
