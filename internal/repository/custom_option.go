package repository

import (
	"context"
	"errors"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"gorm.io/gorm"
)

type CustomOptionRepository struct {
	*baseRepository
}

// Create stores a user-defined dropdown value. The same (type, value)
// pair saved twice returns the existing row rather than duplicating it.
func (cor CustomOptionRepository) Create(ctx context.Context, tx *gorm.DB, opt *model.UserCustomOption) (*model.UserCustomOption, error) {
	db := cor.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var existing model.UserCustomOption
	err := db.WithContext(ctx).
		Where("user_id = ? AND option_type = ? AND value = ?", opt.UserID, opt.OptionType, opt.Value).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := db.WithContext(ctx).Create(opt).Error; err != nil {
		return nil, err
	}

	return opt, nil
}

// ListForUser returns the user's options, optionally filtered by type.
func (cor CustomOptionRepository) ListForUser(ctx context.Context, tx *gorm.DB, userID uint, optionType string) ([]model.UserCustomOption, error) {
	db := cor.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.UserCustomOption{}).
		Where("user_id = ?", userID)
	if optionType != "" {
		query = query.Where("option_type = ?", optionType)
	}

	var opts []model.UserCustomOption
	if err := query.Order("option_type, value").Find(&opts).Error; err != nil {
		return nil, err
	}

	return opts, nil
}

// Update is scoped to the owner and returns the refreshed row.
func (cor CustomOptionRepository) Update(ctx context.Context, tx *gorm.DB, userID, optionID uint, updates map[string]any) (*model.UserCustomOption, error) {
	db := cor.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var opt model.UserCustomOption
	if err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", optionID, userID).
		First(&opt).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&opt).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &opt, nil
}

// Delete is scoped to the owner so one user cannot remove another's row.
func (cor CustomOptionRepository) Delete(ctx context.Context, tx *gorm.DB, userID, optionID uint) error {
	db := cor.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).
		Where("id = ? AND user_id = ?", optionID, userID).
		Delete(&model.UserCustomOption{}).Error
}
