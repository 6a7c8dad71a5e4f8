package repository

import (
	"context"
	"errors"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"gorm.io/gorm"
)

type OutlineRepository struct {
	*baseRepository
}

func (or OutlineRepository) CreateSection(ctx context.Context, tx *gorm.DB, section *model.OutlineSection) (*model.OutlineSection, error) {
	or.logger.Debugf("Create outline section with data: %+v \n", section)

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(section).Error; err != nil {
		return nil, err
	}

	return section, nil
}

func (or OutlineRepository) GetSection(ctx context.Context, tx *gorm.DB, id uint) (*model.OutlineSection, error) {
	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var section model.OutlineSection
	if err := db.WithContext(ctx).First(&section, id).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

// ListSections returns the project's outline ordered for rendering.
func (or OutlineRepository) ListSections(ctx context.Context, tx *gorm.DB, projectID uint) ([]model.OutlineSection, error) {
	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var sections []model.OutlineSection
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("order_index, id").
		Find(&sections).Error; err != nil {
		return nil, err
	}

	return sections, nil
}

func (or OutlineRepository) UpdateSection(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) (*model.OutlineSection, error) {
	or.logger.Debugf("Update outline section %d with data: %+v \n", id, updates)

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var section model.OutlineSection
	if err := db.WithContext(ctx).First(&section, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&section).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &section, nil
}

// DeleteSection removes a section, its card placements, and reparents
// child sections to the deleted section's parent so subtrees survive.
func (or OutlineRepository) DeleteSection(ctx context.Context, tx *gorm.DB, id uint) error {
	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var section model.OutlineSection
	if err := db.WithContext(ctx).First(&section, id).Error; err != nil {
		return err
	}

	return or.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", id).
			Delete(&model.OutlineCardPlacement{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.OutlineSection{}).
			Where("parent_section_id = ?", id).
			Update("parent_section_id", section.ParentSectionID).Error; err != nil {
			return err
		}

		return tx.Delete(&model.OutlineSection{}, id).Error
	})
}

// PlaceCard puts a card into a section. A card already placed elsewhere
// is moved, not duplicated; the unique index on card_id backs this up.
func (or OutlineRepository) PlaceCard(ctx context.Context, tx *gorm.DB, placement *model.OutlineCardPlacement) (*model.OutlineCardPlacement, error) {
	or.logger.Debugf("Place card with data: %+v \n", placement)

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var existing model.OutlineCardPlacement
	err := db.WithContext(ctx).
		Where("card_id = ?", placement.CardID).
		First(&existing).Error
	switch {
	case err == nil:
		if uerr := db.WithContext(ctx).Model(&existing).Updates(map[string]any{
			"section_id":  placement.SectionID,
			"order_index": placement.OrderIndex,
		}).Error; uerr != nil {
			return nil, uerr
		}
		existing.SectionID = placement.SectionID
		existing.OrderIndex = placement.OrderIndex
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if cerr := db.WithContext(ctx).Create(placement).Error; cerr != nil {
			return nil, cerr
		}
		return placement, nil
	default:
		return nil, err
	}
}

func (or OutlineRepository) ListPlacements(ctx context.Context, tx *gorm.DB, projectID uint) ([]model.OutlineCardPlacement, error) {
	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var placements []model.OutlineCardPlacement
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("section_id, order_index, id").
		Find(&placements).Error; err != nil {
		return nil, err
	}

	return placements, nil
}

func (or OutlineRepository) RemovePlacement(ctx context.Context, tx *gorm.DB, cardID uint) error {
	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Delete(&model.OutlineCardPlacement{}).Error
}
