package db_models

import (
	"time"

	"github.com/google/uuid"
)

// ShortlistEntry snapshots the taste score at save time so "sort by taste
// score" never drifts when the profile is later refined.
type ShortlistEntry struct {
	BaseModel
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_shortlist_user_venue"`
	VenueID            uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_shortlist_user_venue"`
	SavedAt            time.Time
	TasteScoreSnapshot float64
}
