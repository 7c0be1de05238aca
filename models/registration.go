package models

import "time"

// Registration is the payload carried inside an action token. All state
// needed to approve or deny a request travels in this record.
type Registration struct {
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	SubmittedAt time.Time `json:"submitted_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// FullName returns the display name used for directory entries and emails.
func (r *Registration) FullName() string {
	return r.FirstName + " " + r.LastName
}
