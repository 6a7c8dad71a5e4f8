package repository

import (
	"context"

	"github.com/papermapper/papermapper/internal/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AttachmentStore is the slice of the object-storage client the
// repositories need for best-effort cleanup. Delete never errors; a
// failed delete returns false and is logged by the caller's policy.
type AttachmentStore interface {
	ExtractKeyFromURL(url string) string
	Delete(ctx context.Context, key string) bool
}

type baseRepository struct {
	db      *gorm.DB
	logger  *zap.SugaredLogger
	storage AttachmentStore
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB             *gorm.DB
	User           *UserRepository
	Project        *ProjectRepository
	Citation       *CitationRepository
	SourceMaterial *SourceMaterialRepository
	Question       *QuestionRepository
	Insight        *InsightRepository
	Thought        *ThoughtRepository
	Claim          *ClaimRepository
	Card           *CardRepository
	CardLink       *CardLinkRepository
	CustomOption   *CustomOptionRepository
	PasswordReset  *PasswordResetRepository
	Outline        *OutlineRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, storage AttachmentStore) *baseRepository {
	return &baseRepository{db: db, logger: logger, storage: storage}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, storage AttachmentStore) *Repository {
	br := newBaseRepository(db, logger, storage)
	_projectRepo := &ProjectRepository{baseRepository: br}

	return &Repository{
		DB:             db,
		User:           &UserRepository{baseRepository: br, project: _projectRepo},
		Project:        _projectRepo,
		Citation:       &CitationRepository{baseRepository: br},
		SourceMaterial: &SourceMaterialRepository{baseRepository: br},
		Question:       &QuestionRepository{baseRepository: br},
		Insight:        &InsightRepository{baseRepository: br},
		Thought:        &ThoughtRepository{baseRepository: br},
		Claim:          &ClaimRepository{baseRepository: br},
		Card:           &CardRepository{baseRepository: br, project: _projectRepo},
		CardLink:       &CardLinkRepository{baseRepository: br},
		CustomOption:   &CustomOptionRepository{baseRepository: br},
		PasswordReset:  &PasswordResetRepository{baseRepository: br},
		Outline:        &OutlineRepository{baseRepository: br},
	}
}

// withTx runs fn inside a transaction; GORM rolls back when fn errors.
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}

// cleanupAttachments best-effort deletes every stored object referenced by
// a delimited files list. References that do not match the store's URL
// shape are skipped; individual delete failures are logged and never
// surfaced, so database row deletion proceeds regardless.
func (b baseRepository) cleanupAttachments(ctx context.Context, files string) {
	for _, url := range util.SplitFileList(files) {
		key := b.storage.ExtractKeyFromURL(url)
		if key == "" {
			b.logger.Debugf("Skipping attachment reference outside the store: %s", url)
			continue
		}

		if !b.storage.Delete(ctx, key) {
			b.logger.Warnf("Failed to delete attachment object %s, leaving orphan", key)
		}
	}
}
