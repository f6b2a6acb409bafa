package usecase

import (
	"context"

	"job-board/internal/config"
	"job-board/internal/domain/application"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
	"job-board/internal/infrastructure/cache"
	ucjob "job-board/internal/usecase/job"

	"github.com/google/uuid"
)

type JobUsecase interface {
	Create(ctx context.Context, caller user.Caller, in ucjob.CreateInput) (job.Job, error)
	List(ctx context.Context, employerID *uuid.UUID) ([]job.Job, error)
	Update(ctx context.Context, caller user.Caller, jobID uuid.UUID, in job.Update) (job.Job, error)
	Delete(ctx context.Context, caller user.Caller, jobID uuid.UUID) error
}

type Jobs struct {
	svc *ucjob.Service
}

func NewJobUsecase(jobs job.Repository, applications application.Repository, c *cache.Redis, cfg config.JobsConfig) *Jobs {
	return &Jobs{svc: ucjob.NewService(jobs, applications, c, cfg)}
}

func (u *Jobs) Create(ctx context.Context, caller user.Caller, in ucjob.CreateInput) (job.Job, error) {
	return u.svc.Create(ctx, caller, in)
}

func (u *Jobs) List(ctx context.Context, employerID *uuid.UUID) ([]job.Job, error) {
	return u.svc.List(ctx, employerID)
}

func (u *Jobs) Update(ctx context.Context, caller user.Caller, jobID uuid.UUID, in job.Update) (job.Job, error) {
	return u.svc.Update(ctx, caller, jobID, in)
}

func (u *Jobs) Delete(ctx context.Context, caller user.Caller, jobID uuid.UUID) error {
	return u.svc.Delete(ctx, caller, jobID)
}
