package repository

import (
	"context"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	*baseRepository
}

func (qr QuestionRepository) Create(ctx context.Context, tx *gorm.DB, q *model.Question) (*model.Question, error) {
	qr.logger.Debugf("Create question with data: %+v \n", q)

	db := qr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}

	return q, nil
}

func (qr QuestionRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Question, error) {
	db := qr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var q model.Question
	if err := db.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, err
	}

	return &q, nil
}

func (qr QuestionRepository) List(ctx context.Context, tx *gorm.DB, projectID uint, skip, limit int) ([]model.Question, error) {
	db := qr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	skip, limit = util.NormalizeListRange(skip, limit)

	query := db.WithContext(ctx).Model(&model.Question{})
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var qs []model.Question
	if err := query.Offset(skip).Limit(limit).Find(&qs).Error; err != nil {
		return nil, err
	}

	return qs, nil
}

func (qr QuestionRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) (*model.Question, error) {
	qr.logger.Debugf("Update question %d with data: %+v \n", id, updates)

	db := qr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var q model.Question
	if err := db.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&q).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &q, nil
}

func (qr QuestionRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	db := qr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var q model.Question
	if err := db.WithContext(ctx).First(&q, id).Error; err != nil {
		return err
	}

	qr.cleanupAttachments(ctx, q.Files)

	return db.WithContext(ctx).Delete(&model.Question{}, id).Error
}

func (qr QuestionRepository) AppendAttachments(ctx context.Context, tx *gorm.DB, id uint, urls, names []string) (*model.Question, error) {
	db := qr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var q model.Question
	if err := db.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, err
	}

	if err := qr.appendAttachmentsTo(ctx, db, &q, urls, names); err != nil {
		return nil, err
	}

	return &q, nil
}

func (qr QuestionRepository) RemoveAttachment(ctx context.Context, tx *gorm.DB, id uint, url string) (*model.Question, error) {
	db := qr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var q model.Question
	if err := db.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, err
	}

	if err := qr.removeAttachmentFrom(ctx, db, &q, url); err != nil {
		return nil, err
	}

	return &q, nil
}
