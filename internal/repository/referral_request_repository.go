package repository

import (
	"context"
	"database/sql"
	"errors"

	"refernet/internal/database"
	"refernet/internal/domain/referral"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrReferralRequestNotFound = errors.New("referral request not found")

type ReferralRequestRepository interface {
	Create(ctx context.Context, req referral.Request) (referral.Request, error)
	GetByID(ctx context.Context, id uuid.UUID) (referral.Request, error)
	Update(ctx context.Context, req referral.Request) (referral.Request, error)
	ListByJobSeekerID(ctx context.Context, jobSeekerID uuid.UUID) ([]referral.Request, error)
	ListByReferrerID(ctx context.Context, referrerID uuid.UUID) ([]referral.Request, error)
}

type PostgresReferralRequestRepository struct {
	db database.DB
}

func NewPostgresReferralRequestRepository(db database.DB) *PostgresReferralRequestRepository {
	return &PostgresReferralRequestRepository{db: db}
}

const referralRequestColumns = `id, job_seeker_id, referrer_id, target_company, message, status, created_at, updated_at`

func (r *PostgresReferralRequestRepository) Create(ctx context.Context, req referral.Request) (referral.Request, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO referral_requests (id, job_seeker_id, referrer_id, target_company, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+referralRequestColumns,
		req.ID, req.JobSeekerID, req.ReferrerID, req.TargetCompany, req.Message, req.Status,
	)
	return scanReferralRequest(row)
}

func (r *PostgresReferralRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (referral.Request, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+referralRequestColumns+` FROM referral_requests WHERE id = $1`,
		id,
	)
	return scanReferralRequest(row)
}

func (r *PostgresReferralRequestRepository) Update(ctx context.Context, req referral.Request) (referral.Request, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE referral_requests
		 SET target_company = $1, message = $2, status = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING `+referralRequestColumns,
		req.TargetCompany, req.Message, req.Status, req.ID,
	)
	return scanReferralRequest(row)
}

func (r *PostgresReferralRequestRepository) ListByJobSeekerID(ctx context.Context, jobSeekerID uuid.UUID) ([]referral.Request, error) {
	return r.list(ctx, `job_seeker_id`, jobSeekerID)
}

func (r *PostgresReferralRequestRepository) ListByReferrerID(ctx context.Context, referrerID uuid.UUID) ([]referral.Request, error) {
	return r.list(ctx, `referrer_id`, referrerID)
}

func (r *PostgresReferralRequestRepository) list(ctx context.Context, column string, id uuid.UUID) ([]referral.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+referralRequestColumns+`
		 FROM referral_requests
		 WHERE `+column+` = $1
		 ORDER BY created_at DESC`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]referral.Request, 0)
	for rows.Next() {
		var req referral.Request
		if err := rows.Scan(
			&req.ID, &req.JobSeekerID, &req.ReferrerID, &req.TargetCompany,
			&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanReferralRequest(row database.Row) (referral.Request, error) {
	var req referral.Request
	if err := row.Scan(
		&req.ID, &req.JobSeekerID, &req.ReferrerID, &req.TargetCompany,
		&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return referral.Request{}, ErrReferralRequestNotFound
		}
		return referral.Request{}, err
	}
	return req, nil
}
