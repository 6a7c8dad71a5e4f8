package repository

import (
	"context"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"gorm.io/gorm"
)

type SourceMaterialRepository struct {
	*baseRepository
}

func (smr SourceMaterialRepository) Create(ctx context.Context, tx *gorm.DB, sm *model.SourceMaterial) (*model.SourceMaterial, error) {
	smr.logger.Debugf("Create source material with data: %+v \n", sm)

	db := smr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(sm).Error; err != nil {
		return nil, err
	}

	return sm, nil
}

func (smr SourceMaterialRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.SourceMaterial, error) {
	db := smr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var sm model.SourceMaterial
	if err := db.WithContext(ctx).First(&sm, id).Error; err != nil {
		return nil, err
	}

	return &sm, nil
}

func (smr SourceMaterialRepository) List(ctx context.Context, tx *gorm.DB, projectID uint, skip, limit int) ([]model.SourceMaterial, error) {
	db := smr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	skip, limit = util.NormalizeListRange(skip, limit)

	query := db.WithContext(ctx).Model(&model.SourceMaterial{})
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var sms []model.SourceMaterial
	if err := query.Offset(skip).Limit(limit).Find(&sms).Error; err != nil {
		return nil, err
	}

	return sms, nil
}

func (smr SourceMaterialRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) (*model.SourceMaterial, error) {
	smr.logger.Debugf("Update source material %d with data: %+v \n", id, updates)

	db := smr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var sm model.SourceMaterial
	if err := db.WithContext(ctx).First(&sm, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&sm).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &sm, nil
}

// Delete removes the row after best-effort cleanup of its attachment
// objects. Cards referencing the row are the card repository's concern.
func (smr SourceMaterialRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	db := smr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var sm model.SourceMaterial
	if err := db.WithContext(ctx).First(&sm, id).Error; err != nil {
		return err
	}

	smr.cleanupAttachments(ctx, sm.Files)

	return db.WithContext(ctx).Delete(&model.SourceMaterial{}, id).Error
}

func (smr SourceMaterialRepository) AppendAttachments(ctx context.Context, tx *gorm.DB, id uint, urls, names []string) (*model.SourceMaterial, error) {
	db := smr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var sm model.SourceMaterial
	if err := db.WithContext(ctx).First(&sm, id).Error; err != nil {
		return nil, err
	}

	if err := smr.appendAttachmentsTo(ctx, db, &sm, urls, names); err != nil {
		return nil, err
	}

	return &sm, nil
}

func (smr SourceMaterialRepository) RemoveAttachment(ctx context.Context, tx *gorm.DB, id uint, url string) (*model.SourceMaterial, error) {
	db := smr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var sm model.SourceMaterial
	if err := db.WithContext(ctx).First(&sm, id).Error; err != nil {
		return nil, err
	}

	if err := smr.removeAttachmentFrom(ctx, db, &sm, url); err != nil {
		return nil, err
	}

	return &sm, nil
}
