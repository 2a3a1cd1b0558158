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

var ErrReferrerProfileNotFound = errors.New("referrer profile not found")

type ReferrerProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (profile.ReferrerProfile, error)
	Create(ctx context.Context, p profile.ReferrerProfile) (profile.ReferrerProfile, error)
	Update(ctx context.Context, p profile.ReferrerProfile) (profile.ReferrerProfile, error)
	ListByStatus(ctx context.Context, status profile.Status) ([]profile.ReferrerProfile, error)
}

type PostgresReferrerProfileRepository struct {
	db database.DB
}

func NewPostgresReferrerProfileRepository(db database.DB) *PostgresReferrerProfileRepository {
	return &PostgresReferrerProfileRepository{db: db}
}

const referrerProfileColumns = `id, user_id, current_company, position, companies_can_refer, specializations, bio, referral_fee, status, created_at, updated_at`

func (r *PostgresReferrerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.ReferrerProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+referrerProfileColumns+`
		 FROM referrer_profiles
		 WHERE user_id = $1
		 ORDER BY created_at ASC
		 LIMIT 1`,
		userID,
	)
	return scanReferrerProfile(row)
}

func (r *PostgresReferrerProfileRepository) Create(ctx context.Context, p profile.ReferrerProfile) (profile.ReferrerProfile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO referrer_profiles
		 (id, user_id, current_company, position, companies_can_refer, specializations, bio, referral_fee, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+referrerProfileColumns,
		p.ID, p.UserID, p.CurrentCompany, p.Position, p.CompaniesCanRefer, p.Specializations,
		p.Bio, p.ReferralFee, p.Status,
	)
	return scanReferrerProfile(row)
}

func (r *PostgresReferrerProfileRepository) Update(ctx context.Context, p profile.ReferrerProfile) (profile.ReferrerProfile, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE referrer_profiles
		 SET current_company = $1, position = $2, companies_can_refer = $3, specializations = $4,
		     bio = $5, referral_fee = $6, status = $7, updated_at = now()
		 WHERE id = $8
		 RETURNING `+referrerProfileColumns,
		p.CurrentCompany, p.Position, p.CompaniesCanRefer, p.Specializations,
		p.Bio, p.ReferralFee, p.Status, p.ID,
	)
	return scanReferrerProfile(row)
}

func (r *PostgresReferrerProfileRepository) ListByStatus(ctx context.Context, status profile.Status) ([]profile.ReferrerProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+referrerProfileColumns+`
		 FROM referrer_profiles
		 WHERE status = $1
		 ORDER BY created_at DESC`,
		status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.ReferrerProfile, 0)
	for rows.Next() {
		p, err := scanReferrerProfileFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanReferrerProfile(row database.Row) (profile.ReferrerProfile, error) {
	p, err := scanReferrerProfileFrom(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return profile.ReferrerProfile{}, ErrReferrerProfileNotFound
		}
		return profile.ReferrerProfile{}, err
	}
	return p, nil
}

func scanReferrerProfileFrom(s scanner) (profile.ReferrerProfile, error) {
	var p profile.ReferrerProfile
	if err := s.Scan(
		&p.ID, &p.UserID, &p.CurrentCompany, &p.Position, &p.CompaniesCanRefer, &p.Specializations,
		&p.Bio, &p.ReferralFee, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return profile.ReferrerProfile{}, err
	}
	return p, nil
}
