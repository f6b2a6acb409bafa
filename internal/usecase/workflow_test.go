package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-board/internal/config"
	"job-board/internal/domain/application"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
	"job-board/internal/pkg/jwt"
	ucapp "job-board/internal/usecase/application"
	ucauth "job-board/internal/usecase/auth"
	ucjob "job-board/internal/usecase/job"

	"github.com/google/uuid"
)

// The fakes below stand in for the postgres repositories so the whole
// hiring flow can run in-process.

type memUsers struct {
	byID map[uuid.UUID]user.User
}

func newMemUsers() *memUsers { return &memUsers{byID: make(map[uuid.UUID]user.User)} }

func (m *memUsers) Create(_ context.Context, u user.User) error {
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *memUsers) Update(_ context.Context, u user.User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.byID[u.ID] = u
	return nil
}

type memJobs struct {
	jobs []job.Job
	apps *memApps
}

func (m *memJobs) Create(_ context.Context, j job.Job) error {
	j.CreatedAt = time.Now().UTC()
	j.UpdatedAt = j.CreatedAt
	m.jobs = append(m.jobs, j)
	return nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	for _, j := range m.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func (m *memJobs) List(_ context.Context, employerID *uuid.UUID) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for i := len(m.jobs) - 1; i >= 0; i-- {
		if employerID != nil && m.jobs[i].EmployerID != *employerID {
			continue
		}
		out = append(out, m.jobs[i])
	}
	return out, nil
}

func (m *memJobs) Update(_ context.Context, j job.Job) error {
	for i := range m.jobs {
		if m.jobs[i].ID == j.ID {
			m.jobs[i] = j
			return nil
		}
	}
	return job.ErrNotFound
}

func (m *memJobs) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return job.ErrNotFound
}

func (m *memJobs) DeleteWithApplications(ctx context.Context, id uuid.UUID) error {
	kept := m.apps.apps[:0]
	for _, a := range m.apps.apps {
		if a.JobID != id {
			kept = append(kept, a)
		}
	}
	m.apps.apps = kept
	return m.Delete(ctx, id)
}

type memApps struct {
	apps []application.Application
	jobs *memJobs
}

func (m *memApps) Create(_ context.Context, a application.Application) error {
	for _, existing := range m.apps {
		if existing.JobID == a.JobID && existing.JobSeekerID == a.JobSeekerID {
			return application.ErrDuplicate
		}
	}
	a.AppliedAt = time.Now().UTC()
	m.apps = append(m.apps, a)
	return nil
}

func (m *memApps) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	for _, a := range m.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return application.Application{}, application.ErrNotFound
}

func (m *memApps) ExistsForJobAndSeeker(_ context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	for _, a := range m.apps {
		if a.JobID == jobID && a.JobSeekerID == seekerID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memApps) ListForJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, a := range m.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memApps) ListForSeeker(_ context.Context, seekerID uuid.UUID) ([]application.WithJob, error) {
	out := make([]application.WithJob, 0)
	for _, a := range m.apps {
		if a.JobSeekerID != seekerID {
			continue
		}
		w := application.WithJob{Application: a}
		if j, err := m.jobs.GetByID(context.Background(), a.JobID); err == nil {
			w.JobTitle = j.Title
			w.JobCompany = j.Company
			w.JobLocation = j.Location
		}
		out = append(out, w)
	}
	return out, nil
}

func (m *memApps) CountForJob(_ context.Context, jobID uuid.UUID) (int64, error) {
	var n int64
	for _, a := range m.apps {
		if a.JobID == jobID {
			n++
		}
	}
	return n, nil
}

func (m *memApps) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	for i := range m.apps {
		if m.apps[i].ID == id {
			m.apps[i].Status = status
			return nil
		}
	}
	return application.ErrNotFound
}

type world struct {
	users *memUsers
	jobs  *memJobs
	apps  *memApps

	auth AuthUsecase
	job  JobUsecase
	app  ApplicationUsecase
}

func newWorld(policy config.DeletePolicy) *world {
	users := newMemUsers()
	jobs := &memJobs{}
	apps := &memApps{jobs: jobs}
	jobs.apps = apps

	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	cfg := config.JobsConfig{DeletePolicy: policy, ListCacheTTL: time.Minute}

	return &world{
		users: users,
		jobs:  jobs,
		apps:  apps,
		auth:  NewAuthUsecase(users, jwtSvc),
		job:   NewJobUsecase(jobs, apps, nil, cfg),
		app:   NewApplicationUsecase(apps, jobs, users),
	}
}

func (w *world) register(t *testing.T, name, email, role string) user.Caller {
	t.Helper()
	u, access, refresh, err := w.auth.Register(context.Background(), ucauth.RegisterInput{
		FullName: name,
		Email:    email,
		Password: "correct horse",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("register %s: missing tokens", email)
	}
	return user.Caller{ID: u.ID, Role: u.Role}
}

func TestHiringFlow(t *testing.T) {
	w := newWorld(config.DeleteRestrict)
	ctx := context.Background()

	alice := w.register(t, "Alice", "alice@acme.test", "employer")
	posting, err := w.job.Create(ctx, alice, ucjob.CreateInput{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Build the platform.",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	bob := w.register(t, "Bob", "bob@mail.test", "job_seeker")
	app, err := w.app.Submit(ctx, bob, ucapp.SubmitInput{JobID: posting.ID, CoverLetter: "Please hire me."})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if app.Status != application.StatusPending {
		t.Fatalf("fresh application must be pending, got %s", app.Status)
	}

	for _, next := range []string{"reviewed", "interview"} {
		if app, err = w.app.Transition(ctx, alice, app.ID, next); err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
	}
	if app.Status != application.StatusInterview {
		t.Fatalf("expected interview, got %s", app.Status)
	}

	if _, err := w.app.Submit(ctx, bob, ucapp.SubmitInput{JobID: posting.ID, CoverLetter: "Again."}); !errors.Is(err, ucapp.ErrAlreadyApplied) {
		t.Fatalf("second submit: expected ErrAlreadyApplied, got %v", err)
	}

	mine, err := w.app.ListMine(ctx, bob)
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 1 || mine[0].Status != application.StatusInterview || mine[0].JobTitle != "Backend Engineer" {
		t.Fatalf("unexpected listing: %+v", mine)
	}
}

func TestDeletePolicies(t *testing.T) {
	ctx := context.Background()

	setup := func(policy config.DeletePolicy) (*world, user.Caller, job.Job) {
		w := newWorld(policy)
		alice := w.register(t, "Alice", "alice@acme.test", "employer")
		posting, err := w.job.Create(ctx, alice, ucjob.CreateInput{
			Title: "Role", Company: "Acme", Location: "Remote", Description: "d",
		})
		if err != nil {
			t.Fatalf("create job: %v", err)
		}
		bob := w.register(t, "Bob", "bob@mail.test", "job_seeker")
		if _, err := w.app.Submit(ctx, bob, ucapp.SubmitInput{JobID: posting.ID, CoverLetter: "hi"}); err != nil {
			t.Fatalf("submit: %v", err)
		}
		return w, alice, posting
	}

	w, alice, posting := setup(config.DeleteRestrict)
	if err := w.job.Delete(ctx, alice, posting.ID); !errors.Is(err, ucjob.ErrHasApplications) {
		t.Fatalf("restrict: expected ErrHasApplications, got %v", err)
	}
	if _, err := w.jobs.GetByID(ctx, posting.ID); err != nil {
		t.Fatalf("restrict: posting must survive")
	}

	w, alice, posting = setup(config.DeleteCascade)
	if err := w.job.Delete(ctx, alice, posting.ID); err != nil {
		t.Fatalf("cascade: %v", err)
	}
	if _, err := w.jobs.GetByID(ctx, posting.ID); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("cascade: posting must be gone")
	}
	if n, _ := w.apps.CountForJob(ctx, posting.ID); n != 0 {
		t.Fatalf("cascade: applications must be gone, %d left", n)
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	w := newWorld(config.DeleteRestrict)
	ctx := context.Background()

	_, _, refresh, err := w.auth.Register(ctx, ucauth.RegisterInput{
		FullName: "Alice", Email: "alice@acme.test", Password: "correct horse", Role: "employer",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access2, refresh2, err := w.auth.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatalf("refresh must issue both tokens")
	}

	if _, _, err := w.auth.Refresh(ctx, access2); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token must not pass as refresh, got %v", err)
	}
	if _, _, err := w.auth.Refresh(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("empty token: expected ErrUnauthorized, got %v", err)
	}
}
