package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	for id, existing := range f.users {
		if id != u.ID && existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.UpdatedAt = time.Now().UTC()
	f.users[u.ID] = u
	return nil
}

func seedUser(repo *fakeUserRepo, name, email string, role user.Role) user.User {
	u := user.User{
		ID:           uuid.New(),
		FullName:     name,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	repo.users[u.ID] = u
	return u
}

func strPtr(s string) *string { return &s }

func TestUpdateProfileNameAndEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	u := seedUser(repo, "Alice", "alice@x.com", user.RoleEmployer)

	updated, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{
		FullName: strPtr("Alice Cooper"),
		Email:    strPtr("Alice.Cooper@X.com"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != "Alice Cooper" {
		t.Fatalf("name not updated: %q", updated.FullName)
	}
	if updated.Email != "alice.cooper@x.com" {
		t.Fatalf("email not normalized: %q", updated.Email)
	}
	if updated.Role != user.RoleEmployer {
		t.Fatalf("role must not change on profile update")
	}
	if updated.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
}

func TestUpdateProfileUnknownAccount(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), UpdateProfileInput{FullName: strPtr("X")})
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProfileEmailCollision(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	seedUser(repo, "Alice", "alice@x.com", user.RoleEmployer)
	bob := seedUser(repo, "Bob", "bob@x.com", user.RoleJobSeeker)

	_, err := svc.UpdateProfile(context.Background(), bob.ID, UpdateProfileInput{Email: strPtr("alice@x.com")})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateProfileKeepingOwnEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	alice := seedUser(repo, "Alice", "alice@x.com", user.RoleEmployer)

	// Re-submitting the current email is not a collision.
	updated, err := svc.UpdateProfile(context.Background(), alice.ID, UpdateProfileInput{
		FullName: strPtr("Alice B"),
		Email:    strPtr("alice@x.com"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != "Alice B" {
		t.Fatalf("name not updated")
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	u := seedUser(repo, "Alice", "alice@x.com", user.RoleEmployer)

	if _, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty input: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Email: strPtr("garbage")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("malformed email: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{FullName: strPtr("   ")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}
}
