package db_models

import "github.com/google/uuid"

// Session contexts for swipe decisions.
const (
	SessionOnboarding = "onboarding"
	SessionDiscovery  = "discovery"
)

// Swipe decisions. An undo row is appended as its own event so the audit
// trail stays reconstructable; history is never deleted or rewritten.
const (
	DecisionLike = "like"
	DecisionSkip = "skip"
	DecisionUndo = "undo"
)

type SwipeEvent struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;index:idx_swipe_session"`
	VenueID        uuid.UUID `gorm:"type:uuid"`
	SessionContext string    `gorm:"index:idx_swipe_session"`
	Decision       string
	Sequence       int  `gorm:"index:idx_swipe_session"`
	Undone         bool // set on a like/skip row when reverted by a later undo
}
