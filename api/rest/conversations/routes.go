package conversations

import (
	"github.com/gin-gonic/gin"
	"github.com/smartzap/server/internal/automation"
	"github.com/smartzap/server/smartzap/conversations"
)

func RegisterRoutes(router *gin.RouterGroup, convRepo *conversations.Repository, controller *automation.Controller, defaultTimeoutHours int) {
	conversationsGroup := router.Group("/conversations")
	{
		conversationsGroup.POST("", CreateConversationHandler(convRepo))
		conversationsGroup.GET("", ListConversationsHandler(convRepo))
		conversationsGroup.GET("/:id", GetConversationHandler(convRepo))

		// automation state transitions
		conversationsGroup.PUT("/:id/mode", SwitchModeHandler(controller, defaultTimeoutHours))
		conversationsGroup.POST("/:id/handoff", HandoffHandler(controller))
		conversationsGroup.POST("/:id/return-to-bot", ReturnToBotHandler(controller))
		conversationsGroup.POST("/:id/pause", PauseAutomationHandler(controller))
		conversationsGroup.POST("/:id/resume", ResumeAutomationHandler(controller))
		conversationsGroup.POST("/:id/close", CloseConversationHandler(controller))
		conversationsGroup.POST("/:id/reopen", ReopenConversationHandler(controller))
	}
}
