package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"swoon/internal/models/db_models"
)

type ProfileRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.TasteProfile, error)
	Replace(ctx context.Context, profile *db_models.TasteProfile) error
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &ProfileRepository{db: db}
}

func (p *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*db_models.TasteProfile, error) {
	var profile db_models.TasteProfile
	err := p.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Replace swaps the user's profile in one transaction so a concurrent
// reader sees either the previous profile in full or the new one, never a
// partial write.
func (p *ProfileRepository) Replace(ctx context.Context, profile *db_models.TasteProfile) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).
			Where("user_id = ?", profile.UserID).
			Delete(&db_models.TasteProfile{}).Error; err != nil {
			return err
		}
		return tx.WithContext(ctx).Create(profile).Error
	})
}
