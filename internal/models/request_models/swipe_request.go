package request_models

type SwipeRequest struct {
	VenueID        string `json:"venue_id" binding:"required,uuid"`
	SessionContext string `json:"session_context" binding:"required,oneof=onboarding discovery"`
	Decision       string `json:"decision" binding:"required,oneof=like skip"`
}

type UndoSwipeRequest struct {
	SessionContext string `json:"session_context" binding:"required,oneof=onboarding discovery"`
}

type ToggleShortlistRequest struct {
	VenueID string `json:"venue_id" binding:"required,uuid"`
}
