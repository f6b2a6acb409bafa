package application

import (
	"time"

	"github.com/google/uuid"
)

// Application snapshots the applicant's name and email at submission time.
// Later profile edits do not rewrite history.
type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	JobSeekerID uuid.UUID
	FullName    string
	Email       string
	CoverLetter string
	Status      Status
	AppliedAt   time.Time
}

// WithJob joins an application with display fields of its posting.
type WithJob struct {
	Application
	JobTitle    string
	JobCompany  string
	JobLocation string
}
