package usecase

import (
	"context"

	"refernet/internal/repository"
)

type VocabularyUsecase interface {
	Companies(ctx context.Context) ([]string, error)
	Skills(ctx context.Context) ([]string, error)
	Specializations(ctx context.Context) ([]string, error)
}

type Vocabulary struct {
	repo repository.VocabularyRepository
}

func NewVocabularyUsecase(repo repository.VocabularyRepository) *Vocabulary {
	return &Vocabulary{repo: repo}
}

func (v *Vocabulary) Companies(ctx context.Context) ([]string, error) {
	out, err := v.repo.ListCompanies(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (v *Vocabulary) Skills(ctx context.Context) ([]string, error) {
	out, err := v.repo.ListSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (v *Vocabulary) Specializations(ctx context.Context) ([]string, error) {
	out, err := v.repo.ListSpecializations(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
