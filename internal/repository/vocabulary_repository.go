package repository

import (
	"context"

	"refernet/internal/database"
)

// VocabularyRepository serves the fixed suggestion lists the profile editors
// offer for tag-set fields.
type VocabularyRepository interface {
	ListCompanies(ctx context.Context) ([]string, error)
	ListSkills(ctx context.Context) ([]string, error)
	ListSpecializations(ctx context.Context) ([]string, error)
}

type PostgresVocabularyRepository struct {
	db database.DB
}

func NewPostgresVocabularyRepository(db database.DB) *PostgresVocabularyRepository {
	return &PostgresVocabularyRepository{db: db}
}

func (r *PostgresVocabularyRepository) ListCompanies(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, "suggested_companies")
}

func (r *PostgresVocabularyRepository) ListSkills(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, "suggested_skills")
}

func (r *PostgresVocabularyRepository) ListSpecializations(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, "suggested_specializations")
}

func (r *PostgresVocabularyRepository) listNames(ctx context.Context, table string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM `+table+` ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
