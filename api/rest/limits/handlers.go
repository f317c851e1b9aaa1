package limits

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartzap/server/internal/metalimits"
)

// GetLimitsHandler returns the current account limits snapshot,
// refreshing it from the provider when the cached copy is stale
func GetLimitsHandler(limitsService *metalimits.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := limitsService.CurrentLimits(c.Request.Context())
		c.JSON(http.StatusOK, newResponse(snapshot))
	}
}

// RefreshLimitsHandler forces a provider fetch, bypassing the cache
func RefreshLimitsHandler(limitsService *metalimits.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := limitsService.Refresh(c.Request.Context())
		c.JSON(http.StatusOK, newResponse(snapshot))
	}
}
