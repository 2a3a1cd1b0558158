package repository

import (
	"context"
	"database/sql"
	"errors"

	"refernet/internal/database"
	"refernet/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobSeekerProfileNotFound = errors.New("job seeker profile not found")

type JobSeekerProfileRepository interface {
	// FindByUserID returns the oldest profile row for the user. Duplicate rows
	// are possible (no DB uniqueness guard) and are deliberately not resolved
	// here; the oldest one wins.
	FindByUserID(ctx context.Context, userID uuid.UUID) (profile.JobSeekerProfile, error)
	Create(ctx context.Context, p profile.JobSeekerProfile) (profile.JobSeekerProfile, error)
	Update(ctx context.Context, p profile.JobSeekerProfile) (profile.JobSeekerProfile, error)
	ListByStatus(ctx context.Context, status profile.Status) ([]profile.JobSeekerProfile, error)
}

type PostgresJobSeekerProfileRepository struct {
	db database.DB
}

func NewPostgresJobSeekerProfileRepository(db database.DB) *PostgresJobSeekerProfileRepository {
	return &PostgresJobSeekerProfileRepository{db: db}
}

const jobSeekerProfileColumns = `id, user_id, target_companies, skills, experience_years, desired_salary, current_position, bio, resume_url, status, created_at, updated_at`

func (r *PostgresJobSeekerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.JobSeekerProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobSeekerProfileColumns+`
		 FROM job_seeker_profiles
		 WHERE user_id = $1
		 ORDER BY created_at ASC
		 LIMIT 1`,
		userID,
	)
	return scanJobSeekerProfile(row)
}

func (r *PostgresJobSeekerProfileRepository) Create(ctx context.Context, p profile.JobSeekerProfile) (profile.JobSeekerProfile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO job_seeker_profiles
		 (id, user_id, target_companies, skills, experience_years, desired_salary, current_position, bio, resume_url, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+jobSeekerProfileColumns,
		p.ID, p.UserID, p.TargetCompanies, p.Skills, p.ExperienceYears, p.DesiredSalary,
		p.CurrentPosition, p.Bio, p.ResumeURL, p.Status,
	)
	return scanJobSeekerProfile(row)
}

func (r *PostgresJobSeekerProfileRepository) Update(ctx context.Context, p profile.JobSeekerProfile) (profile.JobSeekerProfile, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE job_seeker_profiles
		 SET target_companies = $1, skills = $2, experience_years = $3, desired_salary = $4,
		     current_position = $5, bio = $6, resume_url = $7, status = $8, updated_at = now()
		 WHERE id = $9
		 RETURNING `+jobSeekerProfileColumns,
		p.TargetCompanies, p.Skills, p.ExperienceYears, p.DesiredSalary,
		p.CurrentPosition, p.Bio, p.ResumeURL, p.Status, p.ID,
	)
	return scanJobSeekerProfile(row)
}

func (r *PostgresJobSeekerProfileRepository) ListByStatus(ctx context.Context, status profile.Status) ([]profile.JobSeekerProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobSeekerProfileColumns+`
		 FROM job_seeker_profiles
		 WHERE status = $1
		 ORDER BY created_at DESC`,
		status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.JobSeekerProfile, 0)
	for rows.Next() {
		p, err := scanJobSeekerProfileFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanJobSeekerProfile(row database.Row) (profile.JobSeekerProfile, error) {
	p, err := scanJobSeekerProfileFrom(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return profile.JobSeekerProfile{}, ErrJobSeekerProfileNotFound
		}
		return profile.JobSeekerProfile{}, err
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJobSeekerProfileFrom(s scanner) (profile.JobSeekerProfile, error) {
	var p profile.JobSeekerProfile
	if err := s.Scan(
		&p.ID, &p.UserID, &p.TargetCompanies, &p.Skills, &p.ExperienceYears, &p.DesiredSalary,
		&p.CurrentPosition, &p.Bio, &p.ResumeURL, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return profile.JobSeekerProfile{}, err
	}
	return p, nil
}
