package limits

import (
	"github.com/gin-gonic/gin"
	"github.com/smartzap/server/internal/metalimits"
)

func RegisterRoutes(router *gin.RouterGroup, limitsService *metalimits.Service) {
	router.GET("/limits", GetLimitsHandler(limitsService))
	router.POST("/limits/refresh", RefreshLimitsHandler(limitsService))
}
