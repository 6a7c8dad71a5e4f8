package model

import (
	"github.com/lib/pq"
)

type Claim struct {
	BaseModel
	ClaimText string         `gorm:"type:text;not null" json:"claim_text" form:"claim_text" binding:"required,strNotEmpty"`
	ClaimType string         `gorm:"type:text" json:"claim_type" form:"claim_type"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags" form:"tags"`

	Files         string `gorm:"type:text" json:"files"`
	FileFilenames string `gorm:"type:text" json:"file_filenames"`

	ProjectID uint    `gorm:"not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project   Project `json:"-"`
}

func (c Claim) TableName() string {
	return "claims"
}

func (c *Claim) PayloadID() uint { return c.ID }

func (c *Claim) AttachmentLists() (string, string) {
	return c.Files, c.FileFilenames
}

func (c *Claim) SetAttachmentLists(files, filenames string) {
	c.Files = files
	c.FileFilenames = filenames
}
