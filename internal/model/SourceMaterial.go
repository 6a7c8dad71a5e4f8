package model

import (
	"github.com/lib/pq"
)

type SourceMaterial struct {
	BaseModel
	Content      string         `gorm:"type:text" json:"content" form:"content"`
	Summary      string         `gorm:"type:text" json:"summary" form:"summary"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags" form:"tags"`
	ArgumentType string         `gorm:"type:text" json:"argument_type" form:"argument_type"`
	Function     string         `gorm:"type:text" json:"function" form:"function"`
	Notes        string         `gorm:"type:text" json:"notes" form:"notes"`

	Files         string `gorm:"type:text" json:"files"`
	FileFilenames string `gorm:"type:text" json:"file_filenames"`

	CitationID *uint     `gorm:"index" json:"citation_id" form:"citation_id"`
	Citation   *Citation `json:"-"`

	ProjectID uint    `gorm:"not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project   Project `json:"-"`
}

func (sm SourceMaterial) TableName() string {
	return "source_materials"
}

func (sm *SourceMaterial) PayloadID() uint { return sm.ID }

func (sm *SourceMaterial) AttachmentLists() (string, string) {
	return sm.Files, sm.FileFilenames
}

func (sm *SourceMaterial) SetAttachmentLists(files, filenames string) {
	sm.Files = files
	sm.FileFilenames = filenames
}
