package conversations

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartzap/server/api/rest/pagination"
	"github.com/smartzap/server/internal/automation"
	"github.com/smartzap/server/internal/errors"
	"github.com/smartzap/server/smartzap/conversations"
)

// maps controller errors onto HTTP responses. any transition handler
// funnels its error through here so the mapping stays in one place.
func respondTransitionError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, automation.ErrConversationNotFound):
		errors.NotFound(c, "conversation")
	case stderrors.Is(err, automation.ErrConversationClosed):
		errors.ConversationClosed(c)
	case stderrors.Is(err, automation.ErrAlreadyOpen):
		errors.Conflict(c, "conversation is already open")
	case stderrors.Is(err, automation.ErrInvalidMode):
		errors.BadRequest(c, "mode must be bot or human", nil)
	default:
		errors.InternalError(c, "failed to update conversation", err)
	}
}

// CreateConversationHandler creates a new open conversation in bot mode
func CreateConversationHandler(convRepo *conversations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req conversations.CreateConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.ContactPhone == "" {
			errors.BadRequest(c, "contact_phone is required", nil)
			return
		}

		conv, err := convRepo.Create(c.Request.Context(), &req)
		if err != nil {
			errors.InternalError(c, "failed to create conversation", err)
			return
		}

		c.JSON(http.StatusCreated, conv)
	}
}

// ListConversationsHandler lists conversations by recent activity,
// optionally filtered by ?status=open|closed
func ListConversationsHandler(convRepo *conversations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, 20, 100)

		status := automation.Status(c.Query("status"))
		if status != "" && status != automation.StatusOpen && status != automation.StatusClosed {
			errors.BadRequest(c, "status must be open or closed", nil)
			return
		}

		list, err := convRepo.List(c.Request.Context(), params.Limit, params.Offset, status)
		if err != nil {
			errors.InternalError(c, "failed to list conversations", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"conversations": list})
	}
}

// GetConversationHandler gets a single conversation by ID
func GetConversationHandler(convRepo *conversations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		conv, err := convRepo.GetByID(c.Request.Context(), id)
		if err != nil {
			if stderrors.Is(err, automation.ErrConversationNotFound) {
				errors.NotFound(c, "conversation")
				return
			}

			errors.InternalError(c, "failed to get conversation", err)
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

// SwitchModeHandler switches a conversation between bot and human
// control. defaultTimeoutHours is the account-wide takeover timeout
// applied when the request carries no override; zero means takeovers
// never expire.
func SwitchModeHandler(controller *automation.Controller, defaultTimeoutHours int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req SwitchModeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		timeoutHours := defaultTimeoutHours
		if req.TimeoutHours != nil {
			if *req.TimeoutHours < 0 {
				errors.BadRequest(c, "timeout_hours must not be negative", nil)
				return
			}
			timeoutHours = *req.TimeoutHours
		}

		conv, err := controller.SwitchMode(
			c.Request.Context(),
			id,
			automation.Mode(req.Mode),
			automation.HumanModeTimeoutMs(timeoutHours),
		)
		if err != nil {
			respondTransitionError(c, err)
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

// HandoffHandler transfers a conversation to human control on behalf
// of the bot, optionally pausing automation in the same transition
func HandoffHandler(controller *automation.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req HandoffRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.PauseMinutes < 0 {
			errors.BadRequest(c, "pause_minutes must not be negative", nil)
			return
		}

		conv, err := controller.Handoff(c.Request.Context(), id, automation.HandoffRequest{
			Reason:       req.Reason,
			Summary:      req.Summary,
			PauseMinutes: req.PauseMinutes,
		})
		if err != nil {
			respondTransitionError(c, err)
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

// ReturnToBotHandler returns a conversation to bot control
func ReturnToBotHandler(controller *automation.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		conv, err := controller.ReturnToBot(c.Request.Context(), id)
		if err != nil {
			respondTransitionError(c, err)
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

// PauseAutomationHandler suppresses automated replies for a duration
// without changing who owns the conversation
func PauseAutomationHandler(controller *automation.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req PauseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.DurationMinutes <= 0 {
			errors.BadRequest(c, "duration_minutes must be positive", nil)
			return
		}

		conv, err := controller.PauseAutomation(c.Request.Context(), id, req.DurationMinutes, req.Reason)
		if err != nil {
			respondTransitionError(c, err)
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

// ResumeAutomationHandler lifts an automation pause
func ResumeAutomationHandler(controller *automation.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		conv, err := controller.ResumeAutomation(c.Request.Context(), id)
		if err != nil {
			respondTransitionError(c, err)
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

// CloseConversationHandler closes a conversation
func CloseConversationHandler(controller *automation.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		conv, err := controller.Close(c.Request.Context(), id)
		if err != nil {
			respondTransitionError(c, err)
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}

// ReopenConversationHandler reopens a closed conversation
func ReopenConversationHandler(controller *automation.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		conv, err := controller.Reopen(c.Request.Context(), id)
		if err != nil {
			respondTransitionError(c, err)
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}
