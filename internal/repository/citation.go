package repository

import (
	"context"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"gorm.io/gorm"
)

type CitationRepository struct {
	*baseRepository
}

func (cr CitationRepository) Create(ctx context.Context, tx *gorm.DB, c *model.Citation) (*model.Citation, error) {
	cr.logger.Debugf("Create citation with data: %+v \n", c)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}

	return c, nil
}

func (cr CitationRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Citation, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var c model.Citation
	if err := db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}

	return &c, nil
}

func (cr CitationRepository) List(ctx context.Context, tx *gorm.DB, projectID uint, skip, limit int) ([]model.Citation, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	skip, limit = util.NormalizeListRange(skip, limit)

	query := db.WithContext(ctx).Model(&model.Citation{})
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var cs []model.Citation
	if err := query.Offset(skip).Limit(limit).Find(&cs).Error; err != nil {
		return nil, err
	}

	return cs, nil
}

func (cr CitationRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) (*model.Citation, error) {
	cr.logger.Debugf("Update citation %d with data: %+v \n", id, updates)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var c model.Citation
	if err := db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&c).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &c, nil
}

// Delete detaches the citation from any source materials referencing it
// before removing the row, in one transaction.
func (cr CitationRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return cr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Model(&model.SourceMaterial{}).
			Where("citation_id = ?", id).
			Update("citation_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Citation{}, id).Error
	})
}
