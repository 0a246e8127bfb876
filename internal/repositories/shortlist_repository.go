package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"swoon/internal/models/db_models"
)

type ShortlistRepositoryInterface interface {
	Get(ctx context.Context, userID, venueID uuid.UUID) (*db_models.ShortlistEntry, error)
	Create(ctx context.Context, entry *db_models.ShortlistEntry) error
	Delete(ctx context.Context, userID, venueID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ShortlistEntry, error)
}

type ShortlistRepository struct {
	db *gorm.DB
}

func NewShortlistRepository(db *gorm.DB) ShortlistRepositoryInterface {
	return &ShortlistRepository{db: db}
}

func (s *ShortlistRepository) Get(ctx context.Context, userID, venueID uuid.UUID) (*db_models.ShortlistEntry, error) {
	var entry db_models.ShortlistEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND venue_id = ?", userID, venueID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Create ignores a duplicate (user, venue) pair so a double save leaves
// exactly one entry.
func (s *ShortlistRepository) Create(ctx context.Context, entry *db_models.ShortlistEntry) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "venue_id"}},
		DoNothing: true,
	}).Create(entry).Error
}

// Delete is a hard delete; removal from a shortlist leaves no tombstone.
func (s *ShortlistRepository) Delete(ctx context.Context, userID, venueID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Unscoped().
		Where("user_id = ? AND venue_id = ?", userID, venueID).
		Delete(&db_models.ShortlistEntry{}).Error
}

func (s *ShortlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ShortlistEntry, error) {
	var entries []db_models.ShortlistEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
