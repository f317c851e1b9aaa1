package campaigns

import "time"

// campaign status constants (must match DB check constraint)
const (
	StatusDraft     = "draft"
	StatusQueued    = "queued"
	StatusSending   = "sending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusBlocked   = "blocked"
)

// represents a template broadcast campaign
type Campaign struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	TemplateName     string    `json:"template_name"`
	TemplateLanguage string    `json:"template_language"`
	RecipientCount   int       `json:"recipient_count"`
	SentCount        int       `json:"sent_count"`
	FailedCount      int       `json:"failed_count"`
	Status           string    `json:"status"`
	BlockedReason    *string   `json:"blocked_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// contains data for creating a campaign
type CreateCampaignRequest struct {
	Name             string   `json:"name"`
	TemplateName     string   `json:"template_name"`
	TemplateLanguage string   `json:"template_language"`
	ContactIDs       []string `json:"contact_ids"`
}
