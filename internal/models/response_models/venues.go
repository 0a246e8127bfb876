package response_models

type Venue struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Address        string   `json:"address"`
	Description    string   `json:"description"`
	PricingTier    string   `json:"pricing_tier"`
	IsEstate       bool     `json:"is_estate"`
	IsHistoric     bool     `json:"is_historic"`
	HasLodging     bool     `json:"has_lodging"`
	HasGarden      bool     `json:"has_garden"`
	IsWaterfront   bool     `json:"is_waterfront"`
	TasteScore     *float64 `json:"taste_score,omitempty"`
	ShortlistedNow bool     `json:"shortlisted,omitempty"`
}

type SearchResponse struct {
	Venues   []Venue `json:"venues"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Total    int     `json:"total"`
	Sort     string  `json:"sort"`
}

type FeedResponse struct {
	Venues    []Venue `json:"venues"`
	Exhausted bool    `json:"exhausted"`
}
