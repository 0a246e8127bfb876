package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"swoon/internal/models/db_models"
)

// TileLedgerInterface is the crawl deduplication ledger. Lookup returns
// (nil, nil) for a tile that was never collected; an element count of 0 on
// an existing row means the tile was crawled and empty.
type TileLedgerInterface interface {
	Lookup(ctx context.Context, tileKey string) (*db_models.CollectedTile, error)
	Record(ctx context.Context, tileKey string, elementCount int, collectedAt time.Time) error
}

type TileLedger struct {
	db *gorm.DB
}

func NewTileLedger(db *gorm.DB) TileLedgerInterface {
	return &TileLedger{db: db}
}

func (t *TileLedger) Lookup(ctx context.Context, tileKey string) (*db_models.CollectedTile, error) {
	var tile db_models.CollectedTile
	err := t.db.WithContext(ctx).Where("tile_key = ?", tileKey).First(&tile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tile, nil
}

// Record upserts one ledger row. Re-recording the same key overwrites the
// previous observation in a single atomic statement; it never duplicates.
func (t *TileLedger) Record(ctx context.Context, tileKey string, elementCount int, collectedAt time.Time) error {
	row := db_models.CollectedTile{
		TileKey:      tileKey,
		CollectedAt:  collectedAt,
		ElementCount: elementCount,
	}
	return t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tile_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"collected_at", "element_count"}),
	}).Create(&row).Error
}
