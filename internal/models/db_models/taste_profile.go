package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// TasteProfile is the single active profile per user. Regeneration replaces
// the row inside one transaction so readers never observe a half-written
// vector next to a stale confidence.
type TasteProfile struct {
	UserID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Embedding        pgvector.Vector `gorm:"type:vector(1536)"`
	Confidence       float64
	DescriptiveWords pq.StringArray `gorm:"type:text[]"`
	SwipeCount       int
	GeneratedAt      time.Time

	// Set when the profile was built from zero likes (neutral catalog
	// mean). Zero confidence alone does not imply this: contradictory
	// likes also produce confidence 0.
	Undetermined bool
}
