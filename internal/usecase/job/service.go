package job

import (
	"context"
	"errors"
	"strings"
	"time"

	"job-board/internal/config"
	"job-board/internal/domain/application"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
	"job-board/internal/infrastructure/cache"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrForbidden       = errors.New("forbidden")
	ErrHasApplications = errors.New("job still has applications")
	ErrInternal        = errors.New("internal error")
)

type CreateInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	Salary      *int64
}

type Service struct {
	jobs         job.Repository
	applications application.Repository
	cache        *cache.Redis
	deletePolicy config.DeletePolicy
	listCacheTTL time.Duration
}

func NewService(jobs job.Repository, applications application.Repository, c *cache.Redis, cfg config.JobsConfig) *Service {
	return &Service{
		jobs:         jobs,
		applications: applications,
		cache:        c,
		deletePolicy: cfg.DeletePolicy,
		listCacheTTL: cfg.ListCacheTTL,
	}
}

// Create fixes the posting's owner to the caller; an employer id in the
// request body is never trusted.
func (s *Service) Create(ctx context.Context, caller user.Caller, in CreateInput) (job.Job, error) {
	if caller.Role != user.RoleEmployer {
		return job.Job{}, ErrForbidden
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	in.Location = strings.TrimSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" || in.Company == "" || in.Location == "" || in.Description == "" {
		return job.Job{}, ErrInvalidInput
	}
	if in.Salary != nil && *in.Salary < 0 {
		return job.Job{}, ErrInvalidInput
	}

	j := job.Job{
		ID:          uuid.New(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		Description: in.Description,
		Salary:      in.Salary,
		EmployerID:  caller.ID,
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	created, err := s.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return job.Job{}, ErrInternal
	}

	s.invalidateListCache(ctx, caller.ID)
	return created, nil
}

func (s *Service) List(ctx context.Context, employerID *uuid.UUID) ([]job.Job, error) {
	key := s.listCacheKey(employerID)

	var cached []job.Job
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	jobs, err := s.jobs.List(ctx, employerID)
	if err != nil {
		return nil, ErrInternal
	}

	_ = s.cache.SetJSON(ctx, key, jobs, s.listCacheTTL)
	return jobs, nil
}

func (s *Service) Update(ctx context.Context, caller user.Caller, jobID uuid.UUID, in job.Update) (job.Job, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.EmployerID != caller.ID {
		return job.Job{}, ErrForbidden
	}

	if in.Title != nil {
		j.Title = strings.TrimSpace(*in.Title)
	}
	if in.Company != nil {
		j.Company = strings.TrimSpace(*in.Company)
	}
	if in.Location != nil {
		j.Location = strings.TrimSpace(*in.Location)
	}
	if in.Description != nil {
		j.Description = strings.TrimSpace(*in.Description)
	}
	if in.ClearSalary {
		j.Salary = nil
	} else if in.Salary != nil {
		j.Salary = in.Salary
	}

	// Re-validate the merged record, not just the supplied fields.
	if j.Title == "" || j.Company == "" || j.Location == "" || j.Description == "" {
		return job.Job{}, ErrInvalidInput
	}
	if j.Salary != nil && *j.Salary < 0 {
		return job.Job{}, ErrInvalidInput
	}

	if err := s.jobs.Update(ctx, j); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	updated, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return job.Job{}, ErrInternal
	}

	s.invalidateListCache(ctx, caller.ID)
	return updated, nil
}

// Delete honors the configured orphan policy: restrict refuses while
// applications reference the posting, cascade removes them with it.
func (s *Service) Delete(ctx context.Context, caller user.Caller, jobID uuid.UUID) error {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}
	if j.EmployerID != caller.ID {
		return ErrForbidden
	}

	switch s.deletePolicy {
	case config.DeleteCascade:
		err = s.jobs.DeleteWithApplications(ctx, jobID)
	default:
		var n int64
		n, err = s.applications.CountForJob(ctx, jobID)
		if err != nil {
			return ErrInternal
		}
		if n > 0 {
			return ErrHasApplications
		}
		err = s.jobs.Delete(ctx, jobID)
	}
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}

	s.invalidateListCache(ctx, caller.ID)
	return nil
}

func (s *Service) listCacheKey(employerID *uuid.UUID) string {
	if employerID == nil {
		return "jobs:list:all"
	}
	return "jobs:list:employer:" + employerID.String()
}

func (s *Service) invalidateListCache(ctx context.Context, employerID uuid.UUID) {
	_ = s.cache.Delete(ctx, "jobs:list:all", "jobs:list:employer:"+employerID.String())
}
