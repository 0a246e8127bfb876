package db_models

// Pricing tiers, ordered cheapest first.
const (
	TierLow    = "low"
	TierMedium = "medium"
	TierHigh   = "high"
	TierLuxury = "luxury"
)

// TierRank orders pricing tiers for sorting. Unknown tiers sort last.
func TierRank(tier string) int {
	switch tier {
	case TierLow:
		return 0
	case TierMedium:
		return 1
	case TierHigh:
		return 2
	case TierLuxury:
		return 3
	default:
		return 4
	}
}

type Venue struct {
	BaseModel
	SourceID    string `gorm:"uniqueIndex"` // stable id from the crawler source
	Name        string
	Latitude    float64
	Longitude   float64
	Address     string
	Description string
	RawMarkdown string
	PricingTier string

	IsWeddingVenue bool
	IsEstate       bool
	IsHistoric     bool
	HasLodging     bool
	HasGarden      bool
	IsWaterfront   bool

	// Curated venues shown during onboarding swiping.
	IsOnboardingSeed bool

	LastCrawledAt int64
}
