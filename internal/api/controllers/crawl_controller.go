package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"swoon/internal/models/request_models"
	"swoon/internal/services"
	"swoon/pkg/utils"
)

type CrawlController struct {
	crawlService services.CrawlServiceInterface
}

func NewCrawlController(crawlService services.CrawlServiceInterface) *CrawlController {
	return &CrawlController{
		crawlService: crawlService,
	}
}

func (cc *CrawlController) Plan(c *gin.Context) {
	var req request_models.CrawlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid crawl payload")
		return
	}

	plan, err := cc.crawlService.Plan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Crawl plan computed")
}

func (cc *CrawlController) Run(c *gin.Context) {
	var req request_models.CrawlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid crawl payload")
		return
	}

	report, err := cc.crawlService.Run(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Crawl run finished")
}
