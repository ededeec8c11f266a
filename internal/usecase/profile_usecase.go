package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	assets      domain.AssetStore
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, assets domain.AssetStore) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		assets:      assets,
	}
}

func (u *profileUsecase) Get(ctx context.Context) (*domain.Profile, error) {
	return u.profileRepo.GetOrCreateSingleton(ctx)
}

func (u *profileUsecase) Update(ctx context.Context, patch *domain.ProfilePatch) (*domain.Profile, error) {
	if patch.Stats != nil {
		if patch.Stats.ProjectsCompleted < 0 || patch.Stats.Technologies < 0 || patch.Stats.YearsLearning < 0 {
			return nil, apperror.BadRequest("Stats values must be non-negative")
		}
	}
	return u.profileRepo.ApplyPatch(ctx, patch)
}

func validateSkillCategory(category string) error {
	switch category {
	case domain.SkillCategoryFrontend, domain.SkillCategoryBackend, domain.SkillCategoryTools, domain.SkillCategoryOther:
		return nil
	}
	return apperror.BadRequest("Category must be one of: frontend, backend, tools, other")
}

func (u *profileUsecase) AddSkill(ctx context.Context, skill *domain.Skill) (*domain.Profile, error) {
	if skill.Name == "" {
		return nil, apperror.BadRequest("Skill name is required")
	}
	if skill.Category == "" {
		skill.Category = domain.SkillCategoryOther
	}
	if err := validateSkillCategory(skill.Category); err != nil {
		return nil, err
	}
	if skill.Proficiency < 0 || skill.Proficiency > 100 {
		return nil, apperror.BadRequest("Proficiency must be between 0 and 100")
	}

	return u.profileRepo.AddSkill(ctx, skill)
}

func (u *profileUsecase) UpdateSkill(ctx context.Context, skillID string, patch *domain.SkillPatch) (*domain.Profile, error) {
	if patch.Category != nil {
		if err := validateSkillCategory(*patch.Category); err != nil {
			return nil, err
		}
	}
	if patch.Proficiency != nil && (*patch.Proficiency < 0 || *patch.Proficiency > 100) {
		return nil, apperror.BadRequest("Proficiency must be between 0 and 100")
	}

	profile, err := u.profileRepo.UpdateSkill(ctx, skillID, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Skill not found")
	}
	return profile, err
}

func (u *profileUsecase) DeleteSkill(ctx context.Context, skillID string) (*domain.Profile, error) {
	profile, err := u.profileRepo.DeleteSkill(ctx, skillID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Skill not found")
	}
	return profile, err
}

// UploadImage stores a new about-section image at the asset host and points
// the singleton at its URL.
func (u *profileUsecase) UploadImage(ctx context.Context, filename string, data []byte) (*domain.Profile, error) {
	if err := validateImageUpload(filename, data); err != nil {
		return nil, err
	}

	body, contentType, key := prepareImage(filename, data)
	url, err := u.assets.Upload(ctx, "profile/"+key, contentType, body)
	if err != nil {
		return nil, apperror.Upstream("Image upload failed", err)
	}

	return u.profileRepo.ApplyPatch(ctx, &domain.ProfilePatch{AboutImage: &url})
}

// UploadResume stores a PDF resume and sets the singleton's resume URL.
func (u *profileUsecase) UploadResume(ctx context.Context, filename string, data []byte) (*domain.Profile, error) {
	if err := validatePDFUpload(filename, data); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("resume/%d_%s.pdf", time.Now().UnixNano(), sanitizeFilename(filename))
	url, err := u.assets.Upload(ctx, key, "application/pdf", data)
	if err != nil {
		return nil, apperror.Upstream("Resume upload failed", err)
	}

	return u.profileRepo.ApplyPatch(ctx, &domain.ProfilePatch{ResumeURL: &url})
}
