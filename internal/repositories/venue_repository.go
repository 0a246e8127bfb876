package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"swoon/internal/models/db_models"
)

type VenueRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Venue, error)
	GetBySourceID(ctx context.Context, sourceID string) (*db_models.Venue, error)
	Upsert(ctx context.Context, venue *db_models.Venue) error
	ListWeddingVenues(ctx context.Context) ([]db_models.Venue, error)
	ListOnboardingSeeds(ctx context.Context) ([]db_models.Venue, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Venue, error)
}

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepositoryInterface {
	return &VenueRepository{db: db}
}

func (v *VenueRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := v.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (v *VenueRepository) GetBySourceID(ctx context.Context, sourceID string) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := v.db.WithContext(ctx).Where("source_id = ?", sourceID).First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

// Upsert keyed on source_id so re-crawling a tile replaces venue data
// instead of duplicating it.
func (v *VenueRepository) Upsert(ctx context.Context, venue *db_models.Venue) error {
	return v.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "source_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "latitude", "longitude", "address", "description",
			"raw_markdown", "pricing_tier", "is_wedding_venue", "is_estate",
			"is_historic", "has_lodging", "has_garden", "is_waterfront",
			"last_crawled_at", "updated_at",
		}),
	}).Create(venue).Error
}

func (v *VenueRepository) ListWeddingVenues(ctx context.Context) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := v.db.WithContext(ctx).
		Where("is_wedding_venue = ?", true).
		Order("id asc").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (v *VenueRepository) ListOnboardingSeeds(ctx context.Context) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := v.db.WithContext(ctx).
		Where("is_onboarding_seed = ?", true).
		Order("id asc").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (v *VenueRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Venue, error) {
	if len(ids) == 0 {
		return []db_models.Venue{}, nil
	}
	var venues []db_models.Venue
	err := v.db.WithContext(ctx).Where("id IN ?", ids).Order("id asc").Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
