package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/worknow-dev/worknow/internal/apperrors"
	"github.com/worknow-dev/worknow/internal/models"
)

// AccountStore covers the engine-facing slice of account persistence.
type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// BackfillUserContact fills in name and email on the user's account when the
// stored values are empty. Existing non-empty values are never overwritten.
func (s *AccountStore) BackfillUserContact(ctx context.Context, userID uint, name, email string) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user not found")
		}
		return apperrors.Internal("failed to load user", err)
	}

	updates := map[string]interface{}{}
	if name != "" && user.Name == "" {
		updates["name"] = name
	}
	if email != "" && user.Email == "" {
		updates["email"] = email
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return apperrors.Internal("failed to update user contact", err)
	}
	return nil
}
