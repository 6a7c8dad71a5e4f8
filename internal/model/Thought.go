package model

import (
	"github.com/lib/pq"
)

type Thought struct {
	BaseModel
	ThoughtText string         `gorm:"type:text;not null" json:"thought_text" form:"thought_text" binding:"required,strNotEmpty"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags" form:"tags"`

	Files         string `gorm:"type:text" json:"files"`
	FileFilenames string `gorm:"type:text" json:"file_filenames"`

	ProjectID uint    `gorm:"not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project   Project `json:"-"`
}

func (t Thought) TableName() string {
	return "thoughts"
}

func (t *Thought) PayloadID() uint { return t.ID }

func (t *Thought) AttachmentLists() (string, string) {
	return t.Files, t.FileFilenames
}

func (t *Thought) SetAttachmentLists(files, filenames string) {
	t.Files = files
	t.FileFilenames = filenames
}
