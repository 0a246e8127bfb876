package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"swoon/internal/models/db_models"
	"swoon/internal/models/request_models"
	"swoon/internal/services"
	"swoon/pkg/utils"
)

type VenuesController struct {
	venueService services.VenueServiceInterface
}

func NewVenuesController(venueService services.VenueServiceInterface) *VenuesController {
	return &VenuesController{
		venueService: venueService,
	}
}

func (v *VenuesController) GetVenueByID(c *gin.Context) {
	venueID := c.Param("id")
	if venueID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Venue ID is required")
		return
	}

	venue, err := v.venueService.GetVenueByID(c.Request.Context(), venueID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venue, "Venue fetched successfully")
}

// Search validates the filter/sort/page parameters before anything reaches
// the ranking engine; invalid input never crosses the boundary.
func (v *VenuesController) Search(c *gin.Context) {
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	sortMode := c.DefaultQuery("sort", services.SortName)
	if !services.ValidSort(sortMode) || sortMode == services.SortDateSaved {
		utils.RespondError(c, http.StatusBadRequest, "Invalid sort parameter")
		return
	}

	tiers := c.QueryArray("price_tier")
	for _, tier := range tiers {
		if db_models.TierRank(tier) > 3 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid price tier: "+tier)
			return
		}
	}

	query := request_models.SearchQuery{
		PriceTiers:   tiers,
		IsEstate:     c.Query("is_estate") == "true",
		IsHistoric:   c.Query("is_historic") == "true",
		HasLodging:   c.Query("has_lodging") == "true",
		HasGarden:    c.Query("has_garden") == "true",
		IsWaterfront: c.Query("is_waterfront") == "true",
		Sort:         sortMode,
		Page:         page,
		PageSize:     pageSize,
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	results, svcErr := v.venueService.SearchVenues(c.Request.Context(), &userID, query)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, results, "Venues fetched successfully")
}
