package domain

import "time"

// Application records a user applying to a job. ApplicantID identifies the
// account that created it and is the only account allowed to delete it.
type Application struct {
	ID          string    `json:"id"`
	ApplicantID string    `json:"user_id"`
	JobID       string    `json:"job_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
