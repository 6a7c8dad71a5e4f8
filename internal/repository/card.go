package repository

import (
	"context"
	"errors"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"gorm.io/gorm"
)

type CardRepository struct {
	*baseRepository
	project *ProjectRepository
}

// Create inserts the card and, in the same transaction, moves a
// not_started project to in_progress. Further-along statuses are left
// untouched.
func (cr CardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Card) (*model.Card, error) {
	cr.logger.Debugf("Create card with data: %+v \n", card)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := cr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Model(&model.Card{}).Create(card).Error; err != nil {
			return err
		}

		return cr.project.BumpStatusOnCardCreate(ctx, tx, card.ProjectID)
	})
	if err != nil {
		return card, err
	}

	return card, nil
}

func (cr CardRepository) GetByID(ctx context.Context, tx *gorm.DB, cardID uint) (*model.Card, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var card model.Card
	if err := db.WithContext(ctx).First(&card, cardID).Error; err != nil {
		return nil, err
	}

	return &card, nil
}

func (cr CardRepository) List(ctx context.Context, tx *gorm.DB, projectID uint, skip, limit int) ([]model.Card, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	skip, limit = util.NormalizeListRange(skip, limit)

	query := db.WithContext(ctx).Model(&model.Card{})
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var cards []model.Card
	if err := query.Offset(skip).Limit(limit).Find(&cards).Error; err != nil {
		return nil, err
	}

	return cards, nil
}

func (cr CardRepository) Update(ctx context.Context, tx *gorm.DB, cardID uint, updates map[string]any) (*model.Card, error) {
	cr.logger.Debugf("Update card %d with data: %+v \n", cardID, updates)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var card model.Card
	if err := db.WithContext(ctx).First(&card, cardID).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&card).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &card, nil
}

// DeleteCascade removes a card and everything it exclusively owns: the
// typed payload row behind (type, data_id), every link touching the card,
// its outline placement, and the card row itself, committed as one
// transaction. Attachment objects referenced by the payload are deleted
// from the store first, best-effort; storage failures never abort the row
// cascade. Deleting a card that no longer exists is success, so retried
// deletes are safe.
func (cr CardRepository) DeleteCascade(ctx context.Context, tx *gorm.DB, cardID uint) error {
	cr.logger.Debugf("Delete card cascade for cardID: %d \n", cardID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var card model.Card
	if err := db.WithContext(ctx).First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Already deleted, treat as success.
			return nil
		}
		return err
	}

	payload, known := model.PayloadForCardType(card.Type)
	havePayload := false
	if known && card.DataID != 0 {
		err := db.WithContext(ctx).First(payload, card.DataID).Error
		switch {
		case err == nil:
			havePayload = true
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Payload already gone; nothing to clean up.
		default:
			return err
		}
	}

	if havePayload {
		files, _ := payload.AttachmentLists()
		cr.cleanupAttachments(ctx, files)
	}

	return cr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		if havePayload {
			// Zero rows affected means a concurrent delete won; deletes
			// commute, so that is still success.
			if err := tx.Where("id = ?", card.DataID).Delete(payload).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("source_card_id = ? OR target_card_id = ?", cardID, cardID).
			Delete(&model.CardLink{}).Error; err != nil {
			return err
		}

		if err := tx.Where("card_id = ?", cardID).
			Delete(&model.OutlineCardPlacement{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.Card{}, cardID).Error; err != nil {
			return err
		}

		return cr.project.RefreshStatusAfterCardDelete(ctx, tx, card.ProjectID)
	})
}
