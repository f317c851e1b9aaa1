package contacts

import "time"

// represents an opted-in WhatsApp contact
type Contact struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Tags      []string  `json:"tags"`
	OptedOut  bool      `json:"opted_out"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// contains data for creating a contact
type CreateContactRequest struct {
	Phone string   `json:"phone"`
	Name  string   `json:"name"`
	Tags  []string `json:"tags,omitempty"`
}
