package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-board/internal/config"
	"job-board/internal/domain/application"
	domjob "job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type fakeJobRepo struct {
	jobs []domjob.Job
	apps *fakeAppRepo
	seq  int
}

func newFakeJobRepo(apps *fakeAppRepo) *fakeJobRepo {
	return &fakeJobRepo{apps: apps}
}

func (f *fakeJobRepo) Create(_ context.Context, j domjob.Job) error {
	f.seq++
	j.CreatedAt = time.Unix(int64(f.seq), 0).UTC()
	j.UpdatedAt = j.CreatedAt
	f.jobs = append(f.jobs, j)
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (domjob.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return domjob.Job{}, domjob.ErrNotFound
}

func (f *fakeJobRepo) List(_ context.Context, employerID *uuid.UUID) ([]domjob.Job, error) {
	out := make([]domjob.Job, 0)
	for i := len(f.jobs) - 1; i >= 0; i-- {
		j := f.jobs[i]
		if employerID != nil && j.EmployerID != *employerID {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j domjob.Job) error {
	for i := range f.jobs {
		if f.jobs[i].ID == j.ID {
			j.CreatedAt = f.jobs[i].CreatedAt
			j.UpdatedAt = time.Now().UTC()
			f.jobs[i] = j
			return nil
		}
	}
	return domjob.ErrNotFound
}

func (f *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
			return nil
		}
	}
	return domjob.ErrNotFound
}

func (f *fakeJobRepo) DeleteWithApplications(ctx context.Context, id uuid.UUID) error {
	if f.apps != nil {
		f.apps.deleteForJob(id)
	}
	return f.Delete(ctx, id)
}

type fakeAppRepo struct {
	apps []application.Application
}

func (f *fakeAppRepo) Create(_ context.Context, a application.Application) error {
	f.apps = append(f.apps, a)
	return nil
}

func (f *fakeAppRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	for _, a := range f.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return application.Application{}, application.ErrNotFound
}

func (f *fakeAppRepo) ExistsForJobAndSeeker(_ context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	for _, a := range f.apps {
		if a.JobID == jobID && a.JobSeekerID == seekerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppRepo) ListForJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, a := range f.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) ListForSeeker(_ context.Context, _ uuid.UUID) ([]application.WithJob, error) {
	return nil, nil
}

func (f *fakeAppRepo) CountForJob(_ context.Context, jobID uuid.UUID) (int64, error) {
	var n int64
	for _, a := range f.apps {
		if a.JobID == jobID {
			n++
		}
	}
	return n, nil
}

func (f *fakeAppRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	for i := range f.apps {
		if f.apps[i].ID == id {
			f.apps[i].Status = status
			return nil
		}
	}
	return application.ErrNotFound
}

func (f *fakeAppRepo) deleteForJob(jobID uuid.UUID) {
	kept := f.apps[:0]
	for _, a := range f.apps {
		if a.JobID != jobID {
			kept = append(kept, a)
		}
	}
	f.apps = kept
}

func newTestService(policy config.DeletePolicy) (*Service, *fakeJobRepo, *fakeAppRepo) {
	apps := &fakeAppRepo{}
	jobs := newFakeJobRepo(apps)
	svc := NewService(jobs, apps, nil, config.JobsConfig{DeletePolicy: policy, ListCacheTTL: time.Minute})
	return svc, jobs, apps
}

func employer() user.Caller {
	return user.Caller{ID: uuid.New(), Role: user.RoleEmployer}
}

func validCreate() CreateInput {
	return CreateInput{Title: "Backend Engineer", Company: "Acme", Location: "Remote", Description: "desc"}
}

func TestCreateRequiresEmployerRole(t *testing.T) {
	svc, _, _ := newTestService(config.DeleteRestrict)

	seeker := user.Caller{ID: uuid.New(), Role: user.RoleJobSeeker}
	if _, err := svc.Create(context.Background(), seeker, validCreate()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateOwnerFixedToCaller(t *testing.T) {
	svc, _, _ := newTestService(config.DeleteRestrict)
	emp := employer()

	j, err := svc.Create(context.Background(), emp, validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if j.EmployerID != emp.ID {
		t.Fatalf("owner must be the caller, got %s", j.EmployerID)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newTestService(config.DeleteRestrict)
	emp := employer()

	cases := []CreateInput{
		{Company: "Acme", Location: "Remote", Description: "d"},
		{Title: "T", Location: "Remote", Description: "d"},
		{Title: "T", Company: "Acme", Description: "d"},
		{Title: "T", Company: "Acme", Location: "Remote"},
		{Title: "  ", Company: "Acme", Location: "Remote", Description: "d"},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), emp, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestListNewestFirstAndFiltered(t *testing.T) {
	svc, _, _ := newTestService(config.DeleteRestrict)
	alice := employer()
	carol := employer()

	first, _ := svc.Create(context.Background(), alice, CreateInput{Title: "First", Company: "Acme", Location: "Remote", Description: "d"})
	second, _ := svc.Create(context.Background(), carol, CreateInput{Title: "Second", Company: "Beta", Location: "Berlin", Description: "d"})
	third, _ := svc.Create(context.Background(), alice, CreateInput{Title: "Third", Company: "Acme", Location: "Remote", Description: "d"})

	all, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(all))
	}
	if all[0].ID != third.ID || all[1].ID != second.ID || all[2].ID != first.ID {
		t.Fatalf("expected newest-first ordering")
	}

	mine, err := svc.List(context.Background(), &alice.ID)
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 jobs for alice, got %d", len(mine))
	}
	for _, j := range mine {
		if j.EmployerID != alice.ID {
			t.Fatalf("filter leaked a foreign posting")
		}
	}
}

func TestUpdateOwnershipAndMerge(t *testing.T) {
	svc, _, _ := newTestService(config.DeleteRestrict)
	emp := employer()

	j, _ := svc.Create(context.Background(), emp, validCreate())

	title := "Senior Backend Engineer"
	updated, err := svc.Update(context.Background(), emp, j.ID, domjob.Update{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("title not updated")
	}
	if updated.Company != j.Company || updated.Location != j.Location {
		t.Fatalf("untouched fields must survive a partial update")
	}

	other := employer()
	if _, err := svc.Update(context.Background(), other, j.ID, domjob.Update{Title: &title}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	empty := ""
	if _, err := svc.Update(context.Background(), emp, j.ID, domjob.Update{Title: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blanked title, got %v", err)
	}

	if _, err := svc.Update(context.Background(), emp, uuid.New(), domjob.Update{Title: &title}); !errors.Is(err, domjob.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRestrictPolicy(t *testing.T) {
	svc, jobs, apps := newTestService(config.DeleteRestrict)
	emp := employer()

	j, _ := svc.Create(context.Background(), emp, validCreate())
	apps.apps = append(apps.apps, application.Application{
		ID: uuid.New(), JobID: j.ID, JobSeekerID: uuid.New(), Status: application.StatusPending,
	})

	if err := svc.Delete(context.Background(), emp, j.ID); !errors.Is(err, ErrHasApplications) {
		t.Fatalf("expected ErrHasApplications, got %v", err)
	}
	if _, err := jobs.GetByID(context.Background(), j.ID); err != nil {
		t.Fatalf("posting must survive a refused delete")
	}
}

func TestDeleteCascadePolicy(t *testing.T) {
	svc, jobs, apps := newTestService(config.DeleteCascade)
	emp := employer()

	j, _ := svc.Create(context.Background(), emp, validCreate())
	apps.apps = append(apps.apps, application.Application{
		ID: uuid.New(), JobID: j.ID, JobSeekerID: uuid.New(), Status: application.StatusPending,
	})

	if err := svc.Delete(context.Background(), emp, j.ID); err != nil {
		t.Fatalf("cascade delete: %v", err)
	}
	if len(jobs.jobs) != 0 {
		t.Fatalf("posting not deleted")
	}
	if n, _ := apps.CountForJob(context.Background(), j.ID); n != 0 {
		t.Fatalf("dependent applications not cascaded, %d left", n)
	}
}

func TestDeleteAuthorization(t *testing.T) {
	svc, _, _ := newTestService(config.DeleteRestrict)
	emp := employer()

	j, _ := svc.Create(context.Background(), emp, validCreate())

	if err := svc.Delete(context.Background(), employer(), j.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), emp, uuid.New()); !errors.Is(err, domjob.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), emp, j.ID); err != nil {
		t.Fatalf("owner delete without applications: %v", err)
	}
}
