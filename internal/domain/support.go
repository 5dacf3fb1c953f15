package domain

import "time"

// SupportProblem is a support request submitted from the app.
type SupportProblem struct {
	ID          string    `json:"id,omitempty"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
