package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	// List returns postings newest-created first; a non-nil employerID
	// restricts the result to that employer's postings.
	List(ctx context.Context, employerID *uuid.UUID) ([]Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteWithApplications removes the posting and every application
	// referencing it in a single transaction.
	DeleteWithApplications(ctx context.Context, id uuid.UUID) error
}
