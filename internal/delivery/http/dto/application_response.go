package dto

import (
	"time"

	"job-board/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	JobSeekerID uuid.UUID `json:"job_seeker_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	CoverLetter string    `json:"cover_letter"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

// ApplicationWithJobResponse adds posting display fields for the
// "my applications" listing.
type ApplicationWithJobResponse struct {
	ApplicationResponse
	JobTitle    string `json:"job_title"`
	JobCompany  string `json:"job_company"`
	JobLocation string `json:"job_location"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		JobSeekerID: a.JobSeekerID,
		FullName:    a.FullName,
		Email:       a.Email,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		AppliedAt:   a.AppliedAt,
	}
}

func NewApplicationListResponse(apps []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}

func NewApplicationWithJobListResponse(apps []application.WithJob) []ApplicationWithJobResponse {
	out := make([]ApplicationWithJobResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, ApplicationWithJobResponse{
			ApplicationResponse: NewApplicationResponse(a.Application),
			JobTitle:            a.JobTitle,
			JobCompany:          a.JobCompany,
			JobLocation:         a.JobLocation,
		})
	}
	return out
}
