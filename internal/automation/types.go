package automation

import (
	"context"
	"time"
)

// conversation ownership mode: bot replies automatically, human means
// an operator has taken over
type Mode string

const (
	ModeBot   Mode = "bot"
	ModeHuman Mode = "human"
)

// conversation lifecycle status. closed conversations accept no
// further transitions.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// the subset of a conversation record the mode state machine operates on
type Conversation struct {
	ID                    string     `json:"id"`
	Mode                  Mode       `json:"mode"`
	HumanModeExpiresAt    *time.Time `json:"human_mode_expires_at,omitempty"`
	AutomationPausedUntil *time.Time `json:"automation_paused_until,omitempty"`
	Status                Status     `json:"status"`
}

// partial update for a single conversation record. nil fields are left
// untouched; the Clear flags set their timestamp to null explicitly.
type StateUpdate struct {
	Mode                  *Mode
	HumanModeExpiresAt    *time.Time
	ClearHumanModeExpiry  bool
	AutomationPausedUntil *time.Time
	ClearAutomationPause  bool
	Status                *Status
}

// persistence collaborator for conversation automation state.
// implementations return ErrConversationNotFound for unknown IDs and
// apply each update as a single-record read-modify-write.
type Repository interface {
	GetAutomationState(ctx context.Context, id string) (*Conversation, error)
	UpdateAutomationState(ctx context.Context, id string, update StateUpdate) (*Conversation, error)
}

// parameters for a bot-initiated transfer to human control
type HandoffRequest struct {
	Reason       string `json:"reason,omitempty"`
	Summary      string `json:"summary,omitempty"`
	PauseMinutes int    `json:"pause_minutes,omitempty"`
}
