package repository

import (
	"context"

	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"gorm.io/gorm"
)

// appendAttachmentsTo records freshly uploaded objects on a payload row.
// Both delimited lists are rebuilt together so they stay index-aligned.
func (b baseRepository) appendAttachmentsTo(ctx context.Context, db *gorm.DB, payload model.Payload, urls, names []string) error {
	files, filenames := payload.AttachmentLists()
	newFiles, newNames := util.AppendFileEntries(files, filenames, urls, names)
	payload.SetAttachmentLists(newFiles, newNames)

	return db.WithContext(ctx).Model(payload).Updates(map[string]any{
		"files":          newFiles,
		"file_filenames": newNames,
	}).Error
}

// removeAttachmentFrom deletes one stored object best-effort and drops its
// reference plus the aligned filename from the payload row.
func (b baseRepository) removeAttachmentFrom(ctx context.Context, db *gorm.DB, payload model.Payload, url string) error {
	if key := b.storage.ExtractKeyFromURL(url); key != "" {
		if !b.storage.Delete(ctx, key) {
			b.logger.Warnf("Failed to delete attachment object %s, leaving orphan", key)
		}
	}

	files, filenames := payload.AttachmentLists()
	newFiles, newNames := util.RemoveFileEntry(files, filenames, url)
	payload.SetAttachmentLists(newFiles, newNames)

	return db.WithContext(ctx).Model(payload).Updates(map[string]any{
		"files":          newFiles,
		"file_filenames": newNames,
	}).Error
}
