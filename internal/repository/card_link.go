package repository

import (
	"context"
	"errors"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"gorm.io/gorm"
)

type CardLinkRepository struct {
	*baseRepository
}

// Create inserts an edge between two cards. An edge already present for
// the same (source, target, project) triple is returned as-is instead of
// erroring, so repeated connect requests from the canvas are harmless.
func (clr CardLinkRepository) Create(ctx context.Context, tx *gorm.DB, link *model.CardLink) (*model.CardLink, error) {
	clr.logger.Debugf("Create card link with data: %+v \n", link)

	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var existing model.CardLink
	err := db.WithContext(ctx).
		Where("source_card_id = ? AND target_card_id = ? AND project_id = ?",
			link.SourceCardID, link.TargetCardID, link.ProjectID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := db.WithContext(ctx).Create(link).Error; err != nil {
		// A concurrent insert can still hit the unique index; the edge
		// exists either way, so hand it back.
		var raced model.CardLink
		if ferr := db.WithContext(ctx).
			Where("source_card_id = ? AND target_card_id = ? AND project_id = ?",
				link.SourceCardID, link.TargetCardID, link.ProjectID).
			First(&raced).Error; ferr == nil {
			return &raced, nil
		}
		return nil, err
	}

	return link, nil
}

func (clr CardLinkRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.CardLink, error) {
	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var link model.CardLink
	if err := db.WithContext(ctx).First(&link, id).Error; err != nil {
		return nil, err
	}

	return &link, nil
}

func (clr CardLinkRepository) List(ctx context.Context, tx *gorm.DB, projectID uint, skip, limit int) ([]model.CardLink, error) {
	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	skip, limit = util.NormalizeListRange(skip, limit)

	query := db.WithContext(ctx).Model(&model.CardLink{})
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var links []model.CardLink
	if err := query.Offset(skip).Limit(limit).Find(&links).Error; err != nil {
		return nil, err
	}

	return links, nil
}

func (clr CardLinkRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) (*model.CardLink, error) {
	clr.logger.Debugf("Update card link %d with data: %+v \n", id, updates)

	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var link model.CardLink
	if err := db.WithContext(ctx).First(&link, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&link).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &link, nil
}

func (clr CardLinkRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	db := clr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Delete(&model.CardLink{}, id).Error
}
