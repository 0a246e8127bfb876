package response_models

import "time"

type TasteProfile struct {
	Confidence       float64   `json:"confidence"`
	DescriptiveWords []string  `json:"descriptive_words"`
	SwipeCount       int       `json:"swipe_count"`
	GeneratedAt      time.Time `json:"generated_at"`
	Undetermined     bool      `json:"undetermined"` // true when built from zero likes
}
