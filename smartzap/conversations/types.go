package conversations

import (
	"time"

	"github.com/smartzap/server/internal/automation"
)

// represents a shared-inbox conversation with a contact
type Conversation struct {
	ID                    string            `json:"id"`
	ContactPhone          string            `json:"contact_phone"`
	ContactName           string            `json:"contact_name"`
	Mode                  automation.Mode   `json:"mode"`
	HumanModeExpiresAt    *time.Time        `json:"human_mode_expires_at,omitempty"`
	AutomationPausedUntil *time.Time        `json:"automation_paused_until,omitempty"`
	Status                automation.Status `json:"status"`
	UnreadCount           int               `json:"unread_count"`
	LastMessageAt         *time.Time        `json:"last_message_at,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// contains data for creating a conversation
type CreateConversationRequest struct {
	ContactPhone string `json:"contact_phone"`
	ContactName  string `json:"contact_name"`
}
