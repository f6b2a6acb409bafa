package application

import (
	"context"
	"errors"
	"strings"

	"job-board/internal/domain/application"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
	"job-board/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidStatus     = errors.New("unknown application status")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrAlreadyApplied    = errors.New("already applied for this job")
	ErrForbidden         = errors.New("forbidden")
	ErrInternal          = errors.New("internal error")
)

type SubmitInput struct {
	JobID       uuid.UUID
	CoverLetter string
}

type Service struct {
	applications application.Repository
	jobs         job.Repository
	users        user.Repository
}

func NewService(applications application.Repository, jobs job.Repository, users user.Repository) *Service {
	return &Service{applications: applications, jobs: jobs, users: users}
}

// Submit creates a pending application for the caller. Name and email are
// copied from the caller's account at this moment; later profile edits do
// not touch the submitted record.
func (s *Service) Submit(ctx context.Context, caller user.Caller, in SubmitInput) (application.Application, error) {
	if caller.Role != user.RoleJobSeeker {
		return application.Application{}, ErrForbidden
	}
	if strings.TrimSpace(in.CoverLetter) == "" {
		return application.Application{}, ErrInvalidInput
	}

	j, err := s.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, job.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	account, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return application.Application{}, ErrInternal
	}

	exists, err := s.applications.ExistsForJobAndSeeker(ctx, j.ID, caller.ID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, ErrAlreadyApplied
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       j.ID,
		JobSeekerID: caller.ID,
		FullName:    account.FullName,
		Email:       account.Email,
		CoverLetter: strings.TrimSpace(in.CoverLetter),
		Status:      application.StatusPending,
	}

	if err := s.applications.Create(ctx, a); err != nil {
		// The composite unique index wins the race the pre-check can lose.
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}

	created, err := s.applications.GetByID(ctx, a.ID)
	if err != nil {
		return application.Application{}, ErrInternal
	}

	ws.NotifyApplicationSubmitted(created.ID, j.ID, j.EmployerID)
	return created, nil
}

// Transition moves an application along the status state machine. Only the
// employer owning the referenced posting may do this, and only forward
// edges are legal. The stored status is untouched on any failure.
func (s *Service) Transition(ctx context.Context, caller user.Caller, applicationID uuid.UUID, rawStatus string) (application.Application, error) {
	next, ok := application.ParseStatus(rawStatus)
	if !ok {
		return application.Application{}, ErrInvalidStatus
	}

	a, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	j, err := s.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if caller.Role != user.RoleEmployer || j.EmployerID != caller.ID {
		return application.Application{}, ErrForbidden
	}

	if !a.Status.CanTransition(next) {
		return application.Application{}, ErrInvalidTransition
	}

	if err := s.applications.UpdateStatus(ctx, applicationID, next); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	a.Status = next
	ws.NotifyApplicationStatusChanged(a.ID, a.JobSeekerID, next)
	return a, nil
}

// ListForJob is restricted to the employer owning the posting.
func (s *Service) ListForJob(ctx context.Context, caller user.Caller, jobID uuid.UUID) ([]application.Application, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, job.ErrNotFound
		}
		return nil, ErrInternal
	}
	if caller.Role != user.RoleEmployer || j.EmployerID != caller.ID {
		return nil, ErrForbidden
	}

	apps, err := s.applications.ListForJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

// ListMine returns the caller's own applications regardless of role.
func (s *Service) ListMine(ctx context.Context, caller user.Caller) ([]application.WithJob, error) {
	apps, err := s.applications.ListForSeeker(ctx, caller.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}
