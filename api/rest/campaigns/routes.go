package campaigns

import (
	"github.com/gin-gonic/gin"
	"github.com/smartzap/server/internal/metalimits"
	"github.com/smartzap/server/smartzap/campaigns"
	"github.com/smartzap/server/smartzap/contacts"
)

func RegisterRoutes(router *gin.RouterGroup, campaignRepo *campaigns.Repository, contactRepo *contacts.Repository, limitsService *metalimits.Service) {
	campaignsGroup := router.Group("/campaigns")
	{
		campaignsGroup.POST("/validate", ValidateCampaignHandler(limitsService, contactRepo))
		campaignsGroup.POST("", CreateCampaignHandler(campaignRepo, contactRepo, limitsService))
		campaignsGroup.GET("", ListCampaignsHandler(campaignRepo))
		campaignsGroup.GET("/:id", GetCampaignHandler(campaignRepo))
	}
}
