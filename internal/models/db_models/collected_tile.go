package db_models

import "time"

// CollectedTile is one ledger row per crawled tile. The key is the sole
// identity; re-collection overwrites CollectedAt and ElementCount in place.
// ElementCount 0 means "crawled, nothing there", which is distinct from the
// row being absent.
type CollectedTile struct {
	TileKey      string `gorm:"primaryKey;column:tile_key"`
	CollectedAt  time.Time
	ElementCount int
}
