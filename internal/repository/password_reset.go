package repository

import (
	"context"
	"errors"
	"time"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"gorm.io/gorm"
)

var ErrResetCodeInvalid = errors.New("reset code is invalid or expired")

type PasswordResetRepository struct {
	*baseRepository
}

// CreateCode issues a fresh code for the user and burns every code issued
// before it, so only the most recent email is usable.
func (prr PasswordResetRepository) CreateCode(ctx context.Context, tx *gorm.DB, userID uint, code string, ttl time.Duration) (*model.PasswordResetCode, error) {
	db := prr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	reset := &model.PasswordResetCode{
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
		UserID:    userID,
	}

	err := prr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Model(&model.PasswordResetCode{}).
			Where("user_id = ? AND used = ?", userID, false).
			Update("used", true).Error; err != nil {
			return err
		}

		return tx.Create(reset).Error
	})
	if err != nil {
		return nil, err
	}

	return reset, nil
}

// GetUsable returns the unexpired, unused entry matching code. Codes are
// looked up globally; the row carries the user it belongs to.
func (prr PasswordResetRepository) GetUsable(ctx context.Context, tx *gorm.DB, code string) (*model.PasswordResetCode, error) {
	db := prr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var reset model.PasswordResetCode
	err := db.WithContext(ctx).
		Where("code = ? AND used = ?", code, false).
		Order("id DESC").
		First(&reset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetCodeInvalid
		}
		return nil, err
	}

	if !reset.Usable(time.Now()) {
		return nil, ErrResetCodeInvalid
	}

	return &reset, nil
}

// ConsumeAndResetPassword marks the code used and writes the new password
// hash in one transaction. The conditional update on used makes the code
// single-use even under concurrent submissions.
func (prr PasswordResetRepository) ConsumeAndResetPassword(ctx context.Context, tx *gorm.DB, code, hashedPassword string) error {
	db := prr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	reset, err := prr.GetUsable(ctx, tx, code)
	if err != nil {
		return err
	}

	return prr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		res := tx.Model(&model.PasswordResetCode{}).
			Where("id = ? AND used = ?", reset.ID, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrResetCodeInvalid
		}

		return tx.Model(&model.User{}).
			Where("id = ?", reset.UserID).
			Update("hashed_password", hashedPassword).Error
	})
}
