package repository

import (
	"context"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
	project *ProjectRepository
}

func (ur UserRepository) Create(ctx context.Context, tx *gorm.DB, user *model.User) (*model.User, error) {
	ur.logger.Debugf("Create user with email: %s \n", user.Email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (ur UserRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*model.User, error) {
	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail relies on the citext column for case-insensitive match.
func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (ur UserRepository) UpdatePassword(ctx context.Context, tx *gorm.DB, userID uint, hashedPassword string) error {
	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("hashed_password", hashedPassword).Error
}

// DeleteAccount removes the user and everything hanging off them. Each
// project is deleted through the project cascade so its stored objects
// are cleaned up too; the remaining user-scoped rows and the user itself
// go in a final transaction.
func (ur UserRepository) DeleteAccount(ctx context.Context, tx *gorm.DB, userID uint) error {
	ur.logger.Debugf("Delete account for userID: %d \n", userID)

	db := ur.getDB(tx)

	// Deleting shrinks the set, so refetching the first page until it
	// comes back empty walks every project regardless of count.
	for {
		projects, err := ur.project.ListForUser(ctx, tx, userID, 0, 0)
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			break
		}

		for _, p := range projects {
			if err := ur.project.Delete(ctx, tx, p.ID); err != nil {
				return err
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return ur.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&model.UserCustomOption{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).
			Delete(&model.PasswordResetCode{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.User{}, userID).Error
	})
}
