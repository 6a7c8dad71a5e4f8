package repository

import (
	"context"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"gorm.io/gorm"
)

type InsightRepository struct {
	*baseRepository
}

func (ir InsightRepository) Create(ctx context.Context, tx *gorm.DB, in *model.Insight) (*model.Insight, error) {
	ir.logger.Debugf("Create insight with data: %+v \n", in)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(in).Error; err != nil {
		return nil, err
	}

	return in, nil
}

func (ir InsightRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Insight, error) {
	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var in model.Insight
	if err := db.WithContext(ctx).First(&in, id).Error; err != nil {
		return nil, err
	}

	return &in, nil
}

func (ir InsightRepository) List(ctx context.Context, tx *gorm.DB, projectID uint, skip, limit int) ([]model.Insight, error) {
	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	skip, limit = util.NormalizeListRange(skip, limit)

	query := db.WithContext(ctx).Model(&model.Insight{})
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var ins []model.Insight
	if err := query.Offset(skip).Limit(limit).Find(&ins).Error; err != nil {
		return nil, err
	}

	return ins, nil
}

func (ir InsightRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) (*model.Insight, error) {
	ir.logger.Debugf("Update insight %d with data: %+v \n", id, updates)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var in model.Insight
	if err := db.WithContext(ctx).First(&in, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&in).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &in, nil
}

func (ir InsightRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var in model.Insight
	if err := db.WithContext(ctx).First(&in, id).Error; err != nil {
		return err
	}

	ir.cleanupAttachments(ctx, in.Files)

	return db.WithContext(ctx).Delete(&model.Insight{}, id).Error
}

func (ir InsightRepository) AppendAttachments(ctx context.Context, tx *gorm.DB, id uint, urls, names []string) (*model.Insight, error) {
	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var in model.Insight
	if err := db.WithContext(ctx).First(&in, id).Error; err != nil {
		return nil, err
	}

	if err := ir.appendAttachmentsTo(ctx, db, &in, urls, names); err != nil {
		return nil, err
	}

	return &in, nil
}

func (ir InsightRepository) RemoveAttachment(ctx context.Context, tx *gorm.DB, id uint, url string) (*model.Insight, error) {
	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var in model.Insight
	if err := db.WithContext(ctx).First(&in, id).Error; err != nil {
		return nil, err
	}

	if err := ir.removeAttachmentFrom(ctx, db, &in, url); err != nil {
		return nil, err
	}

	return &in, nil
}
