package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists for this job and seeker")
)

type Repository interface {
	// Create fails with ErrDuplicate when an application for the same
	// (job, job seeker) pair already exists.
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ExistsForJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error)
	ListForJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	ListForSeeker(ctx context.Context, seekerID uuid.UUID) ([]WithJob, error)
	CountForJob(ctx context.Context, jobID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}
