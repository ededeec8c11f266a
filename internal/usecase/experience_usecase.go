package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type experienceUsecase struct {
	experienceRepo domain.ExperienceRepository
}

func NewExperienceUsecase(experienceRepo domain.ExperienceRepository) domain.ExperienceUsecase {
	return &experienceUsecase{experienceRepo: experienceRepo}
}

func validateExperienceType(expType string) error {
	switch expType {
	case domain.ExperienceTypeWork, domain.ExperienceTypeEducation,
		domain.ExperienceTypeProject, domain.ExperienceTypeOther:
		return nil
	}
	return apperror.BadRequest("Type must be one of: work, education, project, other")
}

func (u *experienceUsecase) Create(ctx context.Context, experience *domain.Experience) error {
	if experience.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if experience.Organization == "" {
		return apperror.BadRequest("Organization is required")
	}
	if experience.Description == "" {
		return apperror.BadRequest("Description is required")
	}
	if experience.StartDate == "" {
		return apperror.BadRequest("Start date is required")
	}
	if experience.Type == "" {
		experience.Type = domain.ExperienceTypeWork
	}
	if err := validateExperienceType(experience.Type); err != nil {
		return err
	}
	if experience.Current {
		experience.EndDate = "Present"
	}

	return u.experienceRepo.Create(ctx, experience)
}

func (u *experienceUsecase) Get(ctx context.Context, id string) (*domain.Experience, error) {
	experience, err := u.experienceRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Experience not found")
	}
	return experience, err
}

func (u *experienceUsecase) List(ctx context.Context, expType string) ([]domain.Experience, error) {
	if expType != "" {
		if err := validateExperienceType(expType); err != nil {
			return nil, err
		}
	}
	return u.experienceRepo.Fetch(ctx, expType)
}

func (u *experienceUsecase) Update(ctx context.Context, id string, patch *domain.ExperiencePatch) (*domain.Experience, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, apperror.BadRequest("Title cannot be empty")
	}
	if patch.Type != nil {
		if err := validateExperienceType(*patch.Type); err != nil {
			return nil, err
		}
	}
	if patch.Current != nil && *patch.Current {
		present := "Present"
		patch.EndDate = &present
	}

	experience, err := u.experienceRepo.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Experience not found")
	}
	return experience, err
}

func (u *experienceUsecase) Delete(ctx context.Context, id string) error {
	err := u.experienceRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Experience not found")
	}
	return err
}
