package automation

import (
	"context"
	"time"

	"github.com/smartzap/server/internal/logger"
)

// state machine over {mode, human_mode_expires_at, automation_paused_until,
// status}. every transition validates the current state before mutating,
// and each mutation is a single partial update against the store.
//
// expiry is evaluated lazily: nothing demotes human mode at the expiry
// instant. readers call HumanModeExpired / AutomationPaused against "now".
type Controller struct {
	repo Repository
	now  func() time.Time
}

func NewController(repo Repository) *Controller {
	return &Controller{repo: repo, now: time.Now}
}

// converts the account-wide takeover timeout setting to milliseconds.
// zero hours means takeovers never expire ("Nunca").
func HumanModeTimeoutMs(hours int) int64 {
	if hours <= 0 {
		return 0
	}

	return int64(hours) * 3_600_000
}

// switches a conversation between bot and human control. moving to
// human with timeoutMs > 0 arms the auto-return expiry; with 0 the
// takeover never expires. moving to bot always clears the expiry.
func (c *Controller) SwitchMode(ctx context.Context, id string, target Mode, timeoutMs int64) (*Conversation, error) {
	if target != ModeBot && target != ModeHuman {
		return nil, ErrInvalidMode
	}

	if err := c.requireOpen(ctx, id); err != nil {
		return nil, err
	}

	update := StateUpdate{Mode: &target}

	if target == ModeHuman && timeoutMs > 0 {
		expiresAt := c.now().Add(time.Duration(timeoutMs) * time.Millisecond)
		update.HumanModeExpiresAt = &expiresAt
	} else {
		update.ClearHumanModeExpiry = true
	}

	return c.repo.UpdateAutomationState(ctx, id, update)
}

// transfers a conversation to human control on behalf of the bot.
// reaches the same state shape as SwitchMode(human, 0), optionally
// pausing automation in the same update.
func (c *Controller) Handoff(ctx context.Context, id string, req HandoffRequest) (*Conversation, error) {
	if err := c.requireOpen(ctx, id); err != nil {
		return nil, err
	}

	human := ModeHuman
	update := StateUpdate{
		Mode:                 &human,
		ClearHumanModeExpiry: true,
	}

	if req.PauseMinutes > 0 {
		pausedUntil := c.now().Add(time.Duration(req.PauseMinutes) * time.Minute)
		update.AutomationPausedUntil = &pausedUntil
	}

	logger.Info("conversation handed off to human",
		"conversation_id", id,
		"reason", req.Reason,
		"summary", req.Summary,
		"pause_minutes", req.PauseMinutes,
	)

	return c.repo.UpdateAutomationState(ctx, id, update)
}

// returns a conversation to bot control, clearing any takeover expiry
func (c *Controller) ReturnToBot(ctx context.Context, id string) (*Conversation, error) {
	return c.SwitchMode(ctx, id, ModeBot, 0)
}

// suppresses automated replies for a duration without changing who
// owns the conversation
func (c *Controller) PauseAutomation(ctx context.Context, id string, durationMinutes int, reason string) (*Conversation, error) {
	if err := c.requireOpen(ctx, id); err != nil {
		return nil, err
	}

	pausedUntil := c.now().Add(time.Duration(durationMinutes) * time.Minute)

	if reason != "" {
		logger.Info("automation paused",
			"conversation_id", id,
			"duration_minutes", durationMinutes,
			"reason", reason,
		)
	}

	return c.repo.UpdateAutomationState(ctx, id, StateUpdate{
		AutomationPausedUntil: &pausedUntil,
	})
}

// lifts an automation pause, leaving the mode untouched
func (c *Controller) ResumeAutomation(ctx context.Context, id string) (*Conversation, error) {
	if err := c.requireOpen(ctx, id); err != nil {
		return nil, err
	}

	return c.repo.UpdateAutomationState(ctx, id, StateUpdate{
		ClearAutomationPause: true,
	})
}

// closes a conversation. mode, expiry and pause are left as they are,
// inert until reopened.
func (c *Controller) Close(ctx context.Context, id string) (*Conversation, error) {
	if err := c.requireOpen(ctx, id); err != nil {
		return nil, err
	}

	closed := StatusClosed
	return c.repo.UpdateAutomationState(ctx, id, StateUpdate{Status: &closed})
}

// reopens a closed conversation
func (c *Controller) Reopen(ctx context.Context, id string) (*Conversation, error) {
	conv, err := c.repo.GetAutomationState(ctx, id)
	if err != nil {
		return nil, err
	}

	if conv.Status == StatusOpen {
		return nil, ErrAlreadyOpen
	}

	open := StatusOpen
	return c.repo.UpdateAutomationState(ctx, id, StateUpdate{Status: &open})
}

// reports whether a human takeover has effectively ended: the operator
// still holds the conversation but the armed expiry is in the past.
// consumers should treat this as "return to bot on next interaction".
func HumanModeExpired(conv *Conversation, now time.Time) bool {
	if conv == nil || conv.Mode != ModeHuman || conv.HumanModeExpiresAt == nil {
		return false
	}

	return !conv.HumanModeExpiresAt.After(now)
}

// reports whether automated replies are currently suppressed
func AutomationPaused(conv *Conversation, now time.Time) bool {
	if conv == nil || conv.AutomationPausedUntil == nil {
		return false
	}

	return conv.AutomationPausedUntil.After(now)
}

// rejects transitions on closed conversations before any mutation
func (c *Controller) requireOpen(ctx context.Context, id string) error {
	conv, err := c.repo.GetAutomationState(ctx, id)
	if err != nil {
		return err
	}

	if conv.Status == StatusClosed {
		return ErrConversationClosed
	}

	return nil
}
