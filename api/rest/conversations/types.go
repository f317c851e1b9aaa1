package conversations

// SwitchModeRequest selects who owns a conversation. timeout_hours
// overrides the account-wide takeover timeout for this switch only;
// it is ignored when switching to bot.
type SwitchModeRequest struct {
	Mode         string `json:"mode"`
	TimeoutHours *int   `json:"timeout_hours,omitempty"`
}

// HandoffRequest carries the bot's context when escalating to a human
type HandoffRequest struct {
	Reason       string `json:"reason"`
	Summary      string `json:"summary,omitempty"`
	PauseMinutes int    `json:"pause_minutes,omitempty"`
}

// PauseRequest suppresses automated replies for a duration
type PauseRequest struct {
	DurationMinutes int    `json:"duration_minutes"`
	Reason          string `json:"reason,omitempty"`
}
