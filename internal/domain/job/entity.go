package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Location    string
	Description string
	Salary      *int64
	EmployerID  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Update carries the fields a partial update may touch; nil means "leave as is".
type Update struct {
	Title       *string
	Company     *string
	Location    *string
	Description *string
	Salary      *int64
	ClearSalary bool
}
