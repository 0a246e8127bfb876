package controllers

import (
	"github.com/gin-gonic/gin"
	"swoon/internal/services"
	"swoon/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

func (p *ProfileController) GetCurrent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := p.profileService.GetCurrentProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// Refine regenerates the profile from all accumulated swipes. The same
// endpoint finalizes onboarding and refreshes after discovery swiping.
func (p *ProfileController) Refine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := p.profileService.Regenerate(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile regenerated")
}
