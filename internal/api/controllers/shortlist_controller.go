package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"swoon/internal/models/request_models"
	"swoon/internal/services"
	"swoon/pkg/utils"
)

type ShortlistController struct {
	shortlistService services.ShortlistServiceInterface
}

func NewShortlistController(shortlistService services.ShortlistServiceInterface) *ShortlistController {
	return &ShortlistController{
		shortlistService: shortlistService,
	}
}

func (s *ShortlistController) Toggle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.ToggleShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid shortlist payload")
		return
	}

	result, err := s.shortlistService.Toggle(c.Request.Context(), userID, req.VenueID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Shortlist updated")
}

func (s *ShortlistController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	sortMode := c.DefaultQuery("sort", services.SortDateSaved)
	if !services.ValidSort(sortMode) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid sort parameter")
		return
	}

	items, err := s.shortlistService.List(c.Request.Context(), userID, sortMode, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Shortlist fetched successfully")
}
