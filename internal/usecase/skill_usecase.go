package usecase

import (
	"context"
	"strings"

	"staffing-engine/internal/domain/skill"
	"staffing-engine/internal/repository"

	"github.com/google/uuid"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
	AddSkill(ctx context.Context, name, description string, categoryID *uuid.UUID) (skill.Skill, error)
	ListCategories(ctx context.Context) ([]skill.Category, error)
	AddCategory(ctx context.Context, name, color string) (skill.Category, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Skill) AddSkill(ctx context.Context, name, description string, categoryID *uuid.UUID) (skill.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}

	created, err := u.repo.CreateSkill(ctx, skill.Skill{
		Name:        name,
		Description: strings.TrimSpace(description),
		CategoryID:  categoryID,
	})
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	return created, nil
}

func (u *Skill) ListCategories(ctx context.Context) ([]skill.Category, error) {
	items, err := u.repo.ListCategories(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Skill) AddCategory(ctx context.Context, name, color string) (skill.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return skill.Category{}, ErrInvalidInput
	}
	created, err := u.repo.CreateCategory(ctx, skill.Category{Name: name, Color: strings.TrimSpace(color)})
	if err != nil {
		return skill.Category{}, ErrInternal
	}
	return created, nil
}
