package request_models

// SearchQuery is the validated filter/sort/page triple handed to the
// ranking engine. Controllers validate raw parameters before building it.
type SearchQuery struct {
	PriceTiers   []string `json:"price_tiers,omitempty"`
	IsEstate     bool     `json:"is_estate,omitempty"`
	IsHistoric   bool     `json:"is_historic,omitempty"`
	HasLodging   bool     `json:"has_lodging,omitempty"`
	HasGarden    bool     `json:"has_garden,omitempty"`
	IsWaterfront bool     `json:"is_waterfront,omitempty"`
	Sort         string   `json:"sort"`
	Page         int      `json:"page"`
	PageSize     int      `json:"page_size"`
}
