package handler

import "github.com/jobboard/job-board-api/internal/core/domain"

type createJobRequest struct {
	Title    string `json:"title"    validate:"required,max=255"`
	Company  string `json:"company"  validate:"required,max=255"`
	Location string `json:"location" validate:"required,max=255"`
}

// updateJobRequest uses pointers so absent fields stay untouched. The owner
// is not part of the payload; it never changes.
type updateJobRequest struct {
	Title    *string `json:"title"    validate:"omitempty,max=255"`
	Company  *string `json:"company"  validate:"omitempty,max=255"`
	Location *string `json:"location" validate:"omitempty,max=255"`
}

type jobEnvelope struct {
	Job *domain.Job `json:"job"`
}

type jobsEnvelope struct {
	Jobs []*domain.Job `json:"jobs"`
}
