package request_models

// CrawlRequest describes one crawl run over a bounding region. Staleness
// controls when an already-collected tile becomes eligible for re-crawl.
type CrawlRequest struct {
	MinLon         float64 `json:"min_lon"`
	MinLat         float64 `json:"min_lat"`
	MaxLon         float64 `json:"max_lon"`
	MaxLat         float64 `json:"max_lat"`
	EdgeDegrees    float64 `json:"edge_degrees"`
	StalenessDays  int     `json:"staleness_days,omitempty"`  // default 30
	Workers        int     `json:"workers,omitempty"`         // default 4
	TimeoutSeconds int     `json:"timeout_seconds,omitempty"` // per-tile fetch, default 30
}

// RawVenueRecord is what the crawler hands the core for one venue found in
// a tile.
type RawVenueRecord struct {
	SourceID    string  `json:"source_id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	RawMarkdown string  `json:"raw_markdown"`
}

// VenueExtraction is the structured result of attribute extraction over a
// venue's raw markdown.
type VenueExtraction struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	PricingTier    string `json:"pricing_tier"`
	IsWeddingVenue bool   `json:"is_wedding_venue"`
	IsEstate       bool   `json:"is_estate"`
	IsHistoric     bool   `json:"is_historic"`
	HasLodging     bool   `json:"has_lodging"`
	HasGarden      bool   `json:"has_garden"`
	IsWaterfront   bool   `json:"is_waterfront"`
}
