package repository

import (
	"context"
	"database/sql"
	"errors"

	"job-board/internal/database"
	"job-board/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, job_seeker_id, full_name, email, cover_letter, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.JobID, a.JobSeekerID, a.FullName, a.Email, a.CoverLetter, a.Status,
	)
	if err != nil {
		if isUniqueViolation(err, "applications_job_seeker_key") {
			return application.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, job_seeker_id, full_name, email, cover_letter, status, applied_at
		 FROM applications WHERE id = $1`,
		id,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ExistsForJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND job_seeker_id = $2)`,
		jobID, seekerID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListForJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, job_id, job_seeker_id, full_name, email, cover_letter, status, applied_at
		 FROM applications
		 WHERE job_id = $1
		 ORDER BY applied_at DESC, id`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.JobSeekerID, &a.FullName, &a.Email,
			&a.CoverLetter, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListForSeeker(ctx context.Context, seekerID uuid.UUID) ([]application.WithJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.job_seeker_id, a.full_name, a.email, a.cover_letter, a.status, a.applied_at,
		        j.title, j.company, j.location
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.job_seeker_id = $1
		 ORDER BY a.applied_at DESC, a.id`,
		seekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.WithJob, 0)
	for rows.Next() {
		var a application.WithJob
		if err := rows.Scan(&a.ID, &a.JobID, &a.JobSeekerID, &a.FullName, &a.Email,
			&a.CoverLetter, &a.Status, &a.AppliedAt,
			&a.JobTitle, &a.JobCompany, &a.JobLocation); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) CountForJob(ctx context.Context, jobID uuid.UUID) (int64, error) {
	var n int64
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotFound
	}
	return nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(&a.ID, &a.JobID, &a.JobSeekerID, &a.FullName, &a.Email,
		&a.CoverLetter, &a.Status, &a.AppliedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}
