package postgres

import (
	"context"
	"database/sql"
	"errors"

	"refernet/internal/database"
	"refernet/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, full_name, user_type, phone, linkedin_url, location, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, full_name) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Email, u.PasswordHash, u.FullName,
	)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	var role *string
	if u.Role.IsSet() {
		s := string(u.Role)
		role = &s
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET email = $1, password_hash = $2, full_name = $3, user_type = $4,
		     phone = $5, linkedin_url = $6, location = $7, updated_at = now()
		 WHERE id = $8`,
		u.Email, u.PasswordHash, u.FullName, role, u.Phone, u.LinkedinURL, u.Location, u.ID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUserFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(row database.Row) (user.User, error) {
	u, err := scanUserFrom(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

type userScanner interface {
	Scan(dest ...any) error
}

func scanUserFrom(s userScanner) (user.User, error) {
	var u user.User
	var role *string
	if err := s.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &role,
		&u.Phone, &u.LinkedinURL, &u.Location, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return user.User{}, err
	}
	if role != nil {
		u.Role = user.Role(*role)
	}
	return u, nil
}
