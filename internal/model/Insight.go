package model

import (
	"github.com/lib/pq"
)

type Insight struct {
	BaseModel
	InsightText   string         `gorm:"type:text;not null" json:"insight_text" form:"insight_text" binding:"required,strNotEmpty"`
	SourcesLinked string         `gorm:"type:text" json:"sources_linked" form:"sources_linked"`
	InsightType   string         `gorm:"type:text" json:"insight_type" form:"insight_type"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags" form:"tags"`

	Files         string `gorm:"type:text" json:"files"`
	FileFilenames string `gorm:"type:text" json:"file_filenames"`

	ProjectID uint    `gorm:"not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project   Project `json:"-"`
}

func (i Insight) TableName() string {
	return "insights"
}

func (i *Insight) PayloadID() uint { return i.ID }

func (i *Insight) AttachmentLists() (string, string) {
	return i.Files, i.FileFilenames
}

func (i *Insight) SetAttachmentLists(files, filenames string) {
	i.Files = files
	i.FileFilenames = filenames
}
