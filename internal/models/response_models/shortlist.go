package response_models

import "time"

type ShortlistItem struct {
	Venue      Venue     `json:"venue"`
	SavedAt    time.Time `json:"saved_at"`
	TasteScore float64   `json:"taste_score"`
}

type ToggleShortlistResponse struct {
	Shortlisted bool     `json:"shortlisted"` // state after the toggle
	TasteScore  *float64 `json:"taste_score,omitempty"`
}
