package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"swoon/internal/models/db_models"
	"swoon/internal/models/request_models"
	"swoon/internal/services"
	"swoon/pkg/utils"
)

type SwipeController struct {
	swipeService services.SwipeServiceInterface
}

func NewSwipeController(swipeService services.SwipeServiceInterface) *SwipeController {
	return &SwipeController{
		swipeService: swipeService,
	}
}

func (s *SwipeController) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid swipe payload")
		return
	}

	if err := s.swipeService.SubmitSwipe(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Swipe recorded")
}

func (s *SwipeController) Undo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UndoSwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid undo payload")
		return
	}

	if err := s.swipeService.UndoSwipe(c.Request.Context(), userID, req.SessionContext); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Undo applied")
}

func (s *SwipeController) Feed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessionContext := c.DefaultQuery("session", db_models.SessionDiscovery)
	if sessionContext != db_models.SessionOnboarding && sessionContext != db_models.SessionDiscovery {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session context")
		return
	}

	_, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	feed, err := s.swipeService.GetFeed(c.Request.Context(), userID, sessionContext, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feed, "Feed fetched successfully")
}
