package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is fixed at registration and never changes afterwards.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleJobSeeker:
		return RoleJobSeeker, true
	case RoleEmployer:
		return RoleEmployer, true
	default:
		return "", false
	}
}

type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Caller is the authenticated identity a request acts as. Handlers build it
// from token claims; usecases never accept client-supplied ids in its place.
type Caller struct {
	ID   uuid.UUID
	Role Role
}
