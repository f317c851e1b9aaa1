package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	restcampaigns "github.com/smartzap/server/api/rest/campaigns"
	restcontacts "github.com/smartzap/server/api/rest/contacts"
	restconversations "github.com/smartzap/server/api/rest/conversations"
	"github.com/smartzap/server/api/rest/health"
	restlimits "github.com/smartzap/server/api/rest/limits"
	"github.com/smartzap/server/internal/auth"
	"github.com/smartzap/server/internal/ratelimit"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	rateLimiter, err := ratelimit.Middleware(server.config.RedisURL)
	if err != nil {
		return err
	}

	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter)

	{
		v1.GET("/ping", health.PingHandler)

		authed := v1.Group("")
		authed.Use(auth.AuthMiddleware())
		{
			restlimits.RegisterRoutes(authed, server.limitsService)
			restcampaigns.RegisterRoutes(authed, server.campaignRepo, server.contactRepo, server.limitsService)
			restconversations.RegisterRoutes(authed, server.convRepo, server.controller, server.config.HumanModeTimeoutHours)
			restcontacts.RegisterRoutes(authed, server.contactRepo)
		}
	}

	return nil
}

// configures cross-origin access for the dashboard frontend
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://app.smartzap.com.br"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
