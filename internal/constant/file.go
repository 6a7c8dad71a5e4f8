package constant

const (
	// Upload-side limits enforced by the attachment store before new
	// objects are accepted. Deletes never re-validate.
	MaxAttachmentsPerCard    = 5
	MaxAttachmentSize        = 50 << 20  // 50MB per file
	MaxAttachmentSizePerCard = 200 << 20 // 200MB aggregate per card
)

// Storage folders, one per attachment owner kind.
const (
	FolderSourceMaterials = "source-materials"
	FolderQuestions       = "questions"
	FolderInsights        = "insights"
	FolderThoughts        = "thoughts"
	FolderClaims          = "claims"
	FolderAssignments     = "assignments"
	FolderGeneral         = "general"
)
