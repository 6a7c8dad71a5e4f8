package repository

import (
	"context"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"gorm.io/gorm"
)

type ThoughtRepository struct {
	*baseRepository
}

func (tr ThoughtRepository) Create(ctx context.Context, tx *gorm.DB, th *model.Thought) (*model.Thought, error) {
	tr.logger.Debugf("Create thought with data: %+v \n", th)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(th).Error; err != nil {
		return nil, err
	}

	return th, nil
}

func (tr ThoughtRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Thought, error) {
	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var th model.Thought
	if err := db.WithContext(ctx).First(&th, id).Error; err != nil {
		return nil, err
	}

	return &th, nil
}

func (tr ThoughtRepository) List(ctx context.Context, tx *gorm.DB, projectID uint, skip, limit int) ([]model.Thought, error) {
	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	skip, limit = util.NormalizeListRange(skip, limit)

	query := db.WithContext(ctx).Model(&model.Thought{})
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var ths []model.Thought
	if err := query.Offset(skip).Limit(limit).Find(&ths).Error; err != nil {
		return nil, err
	}

	return ths, nil
}

func (tr ThoughtRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) (*model.Thought, error) {
	tr.logger.Debugf("Update thought %d with data: %+v \n", id, updates)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var th model.Thought
	if err := db.WithContext(ctx).First(&th, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&th).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &th, nil
}

func (tr ThoughtRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var th model.Thought
	if err := db.WithContext(ctx).First(&th, id).Error; err != nil {
		return err
	}

	tr.cleanupAttachments(ctx, th.Files)

	return db.WithContext(ctx).Delete(&model.Thought{}, id).Error
}

func (tr ThoughtRepository) AppendAttachments(ctx context.Context, tx *gorm.DB, id uint, urls, names []string) (*model.Thought, error) {
	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var th model.Thought
	if err := db.WithContext(ctx).First(&th, id).Error; err != nil {
		return nil, err
	}

	if err := tr.appendAttachmentsTo(ctx, db, &th, urls, names); err != nil {
		return nil, err
	}

	return &th, nil
}

func (tr ThoughtRepository) RemoveAttachment(ctx context.Context, tx *gorm.DB, id uint, url string) (*model.Thought, error) {
	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var th model.Thought
	if err := db.WithContext(ctx).First(&th, id).Error; err != nil {
		return nil, err
	}

	if err := tr.removeAttachmentFrom(ctx, db, &th, url); err != nil {
		return nil, err
	}

	return &th, nil
}
