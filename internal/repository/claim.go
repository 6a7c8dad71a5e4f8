package repository

import (
	"context"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"gorm.io/gorm"
)

type ClaimRepository struct {
	*baseRepository
}

func (clr ClaimRepository) Create(ctx context.Context, tx *gorm.DB, cl *model.Claim) (*model.Claim, error) {
	clr.logger.Debugf("Create claim with data: %+v \n", cl)

	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(cl).Error; err != nil {
		return nil, err
	}

	return cl, nil
}

func (clr ClaimRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Claim, error) {
	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var cl model.Claim
	if err := db.WithContext(ctx).First(&cl, id).Error; err != nil {
		return nil, err
	}

	return &cl, nil
}

func (clr ClaimRepository) List(ctx context.Context, tx *gorm.DB, projectID uint, skip, limit int) ([]model.Claim, error) {
	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	skip, limit = util.NormalizeListRange(skip, limit)

	query := db.WithContext(ctx).Model(&model.Claim{})
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var cls []model.Claim
	if err := query.Offset(skip).Limit(limit).Find(&cls).Error; err != nil {
		return nil, err
	}

	return cls, nil
}

func (clr ClaimRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) (*model.Claim, error) {
	clr.logger.Debugf("Update claim %d with data: %+v \n", id, updates)

	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var cl model.Claim
	if err := db.WithContext(ctx).First(&cl, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&cl).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &cl, nil
}

func (clr ClaimRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var cl model.Claim
	if err := db.WithContext(ctx).First(&cl, id).Error; err != nil {
		return err
	}

	clr.cleanupAttachments(ctx, cl.Files)

	return db.WithContext(ctx).Delete(&model.Claim{}, id).Error
}

func (clr ClaimRepository) AppendAttachments(ctx context.Context, tx *gorm.DB, id uint, urls, names []string) (*model.Claim, error) {
	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var cl model.Claim
	if err := db.WithContext(ctx).First(&cl, id).Error; err != nil {
		return nil, err
	}

	if err := clr.appendAttachmentsTo(ctx, db, &cl, urls, names); err != nil {
		return nil, err
	}

	return &cl, nil
}

func (clr ClaimRepository) RemoveAttachment(ctx context.Context, tx *gorm.DB, id uint, url string) (*model.Claim, error) {
	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var cl model.Claim
	if err := db.WithContext(ctx).First(&cl, id).Error; err != nil {
		return nil, err
	}

	if err := clr.removeAttachmentFrom(ctx, db, &cl, url); err != nil {
		return nil, err
	}

	return &cl, nil
}
