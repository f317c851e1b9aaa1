package campaigns

// ValidateRequest carries the audience to validate against the
// account's current limits. Either contact_ids or contact_count is
// required; when both are present contact_ids wins.
type ValidateRequest struct {
	ContactIDs   []string `json:"contact_ids,omitempty"`
	ContactCount int      `json:"contact_count,omitempty"`
}
