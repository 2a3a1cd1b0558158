package seeder

import (
	"context"
	"fmt"

	"refernet/internal/database"
)

// The fixed suggestion vocabularies the profile editors offer. Users can still
// type arbitrary values; these are only the quick-pick lists.

var popularCompanies = []string{
	"Yandex", "Sber", "Tinkoff", "VK", "Avito", "Ozon", "Wildberries",
	"Tensor", "Alfa-Bank", "MTS", "Megafon", "Beeline", "Kaspersky",
	"JetBrains", "Rambler", "X5 Retail Group", "Magnit",
}

var popularSkills = []string{
	"Python", "JavaScript", "Java", "React", "Node.js", "SQL", "Git",
	"Docker", "Kubernetes", "AWS", "HTML/CSS", "TypeScript", "Go", "C#",
	"Project Management", "Agile", "Scrum", "UI/UX Design", "Data Analysis",
}

var popularSpecializations = []string{
	"Frontend", "Backend", "Fullstack", "DevOps", "Data Science", "Analyst",
	"QA", "Mobile (iOS/Android)", "Product Manager", "Project Manager",
	"UI/UX Designer", "Marketing", "HR", "Sales",
}

type CompaniesSeeder struct{}

func (CompaniesSeeder) Name() string { return "suggested_companies" }

func (CompaniesSeeder) Run(ctx context.Context, db database.DB) error {
	return seedNames(ctx, db, "suggested_companies", popularCompanies)
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "suggested_skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	return seedNames(ctx, db, "suggested_skills", popularSkills)
}

type SpecializationsSeeder struct{}

func (SpecializationsSeeder) Name() string { return "suggested_specializations" }

func (SpecializationsSeeder) Run(ctx context.Context, db database.DB) error {
	return seedNames(ctx, db, "suggested_specializations", popularSpecializations)
}

func seedNames(ctx context.Context, db database.DB, table string, names []string) error {
	if err := EnsureTableColumns(ctx, db, table, "id", "name", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, name := range names {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO `+table+` (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
			name,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
