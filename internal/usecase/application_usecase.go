package usecase

import (
	"context"

	"job-board/internal/domain/application"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
	ucapp "job-board/internal/usecase/application"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	Submit(ctx context.Context, caller user.Caller, in ucapp.SubmitInput) (application.Application, error)
	Transition(ctx context.Context, caller user.Caller, applicationID uuid.UUID, rawStatus string) (application.Application, error)
	ListForJob(ctx context.Context, caller user.Caller, jobID uuid.UUID) ([]application.Application, error)
	ListMine(ctx context.Context, caller user.Caller) ([]application.WithJob, error)
}

type Applications struct {
	svc *ucapp.Service
}

func NewApplicationUsecase(applications application.Repository, jobs job.Repository, users user.Repository) *Applications {
	return &Applications{svc: ucapp.NewService(applications, jobs, users)}
}

func (u *Applications) Submit(ctx context.Context, caller user.Caller, in ucapp.SubmitInput) (application.Application, error) {
	return u.svc.Submit(ctx, caller, in)
}

func (u *Applications) Transition(ctx context.Context, caller user.Caller, applicationID uuid.UUID, rawStatus string) (application.Application, error) {
	return u.svc.Transition(ctx, caller, applicationID, rawStatus)
}

func (u *Applications) ListForJob(ctx context.Context, caller user.Caller, jobID uuid.UUID) ([]application.Application, error) {
	return u.svc.ListForJob(ctx, caller, jobID)
}

func (u *Applications) ListMine(ctx context.Context, caller user.Caller) ([]application.WithJob, error) {
	return u.svc.ListMine(ctx, caller)
}
