package filestorage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/config"
	"github.com/papermapper/papermapper/internal/util"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// R2Storage wraps an S3-compatible bucket holding card attachments.
// Database rows reference objects by public URL; the store is best-effort
// on delete, so orphaned objects are tolerated while dangling rows are not.
type R2Storage struct {
	s3            *minio.Client
	bucket        string
	publicURLBase string
	logger        *zap.SugaredLogger
}

type UploadResult struct {
	FileURL  string
	Key      string
	Filename string
}

func NewR2Storage(s3 *minio.Client, cfg *config.StorageConfig, logger *zap.SugaredLogger) *R2Storage {
	return &R2Storage{
		s3:            s3,
		bucket:        cfg.BUCKET,
		publicURLBase: strings.TrimSuffix(cfg.PUBLIC_URL_BASE, "/"),
		logger:        logger,
	}
}

// ValidateNewAttachments enforces the upload-side limits before any object
// is written: at most 5 attachments per card, 50MB per file, 200MB total.
func ValidateNewAttachments(existingCount int, incoming []*multipart.FileHeader) error {
	if existingCount+len(incoming) > constant.MaxAttachmentsPerCard {
		return fmt.Errorf("a card can have at most %d attachments", constant.MaxAttachmentsPerCard)
	}

	var total int64
	for _, fh := range incoming {
		if fh.Size > constant.MaxAttachmentSize {
			return fmt.Errorf("file %q exceeds the %dMB per-file limit", fh.Filename, constant.MaxAttachmentSize>>20)
		}
		total += fh.Size
	}

	if total > constant.MaxAttachmentSizePerCard {
		return fmt.Errorf("upload exceeds the %dMB per-card limit", constant.MaxAttachmentSizePerCard>>20)
	}

	return nil
}

func (r *R2Storage) ensureBucket(ctx context.Context) error {
	exists, err := r.s3.BucketExists(ctx, r.bucket)
	if err != nil {
		return err
	}

	if !exists {
		if err := r.s3.MakeBucket(ctx, r.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	return nil
}

// Upload stores one multipart file under folder/<uuid><ext> and returns
// its public URL together with the original filename.
func (r *R2Storage) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (UploadResult, error) {
	if err := r.ensureBucket(ctx); err != nil {
		return UploadResult{}, fmt.Errorf("failed to ensure bucket: %w", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	key := util.ToFolderObjectKey(folder, util.ToUniqueObjectName(fileHeader.Filename))

	_, err = r.s3.PutObject(ctx, r.bucket, key, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to upload %q: %w", fileHeader.Filename, err)
	}

	return UploadResult{
		FileURL:  r.PublicURL(key),
		Key:      key,
		Filename: fileHeader.Filename,
	}, nil
}

// UploadMany stores files sequentially, one object per attachment.
func (r *R2Storage) UploadMany(ctx context.Context, fileHeaders []*multipart.FileHeader, folder string) ([]UploadResult, error) {
	results := make([]UploadResult, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		res, err := r.Upload(ctx, fh, folder)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}

// Delete removes one object. Failures are logged and reported as false,
// never as an error; a missing object counts as deleted.
func (r *R2Storage) Delete(ctx context.Context, key string) bool {
	if key == "" {
		return false
	}

	if err := r.s3.RemoveObject(ctx, r.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		r.logger.Warnf("Failed to delete object %s: %v", key, err)
		return false
	}

	return true
}

func (r *R2Storage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", r.publicURLBase, key)
}

// ExtractKeyFromURL maps an attachment reference back to its object key.
// References that do not match the store's public URL shape yield "" and
// are skipped by callers.
func (r *R2Storage) ExtractKeyFromURL(url string) string {
	if r.publicURLBase == "" {
		return ""
	}

	prefix := r.publicURLBase + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}

	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return ""
	}

	return key
}

// GetObject streams one stored object, used by the secure file endpoint.
func (r *R2Storage) GetObject(ctx context.Context, key string) (*minio.Object, error) {
	return r.s3.GetObject(ctx, r.bucket, key, minio.GetObjectOptions{})
}
