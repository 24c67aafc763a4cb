package handler

import "github.com/jobboard/job-board-api/internal/core/domain"

type createApplicationRequest struct {
	JobID       string `json:"job_id"       validate:"required"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=10000"`
}

type applicationEnvelope struct {
	Application *domain.Application `json:"application"`
}

type applicationsEnvelope struct {
	Applications []*domain.Application `json:"applications"`
}
