package domain

import "time"

// Job is a posting created by an employer. EmployerID identifies the owning
// account and never changes after creation.
type Job struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	EmployerID string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
