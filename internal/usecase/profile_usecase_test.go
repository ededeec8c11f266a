package usecase_test

import (
	"context"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileUpdateValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Negative stats are rejected", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, new(MockAssetStore))

		_, err := uc.Update(ctx, &domain.ProfilePatch{
			Stats: &domain.ProfileStats{ProjectsCompleted: -1},
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "ApplyPatch", mock.Anything, mock.Anything)
	})

	t.Run("Partial patch is forwarded as-is", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, new(MockAssetStore))

		name := "New Name"
		mockRepo.On("ApplyPatch", ctx, mock.AnythingOfType("*domain.ProfilePatch")).
			Return(&domain.Profile{Name: name}, nil).
			Run(func(args mock.Arguments) {
				patch := args.Get(1).(*domain.ProfilePatch)
				assert.Equal(t, name, *patch.Name)
				assert.Nil(t, patch.Title)
			})

		profile, err := uc.Update(ctx, &domain.ProfilePatch{Name: &name})
		assert.NoError(t, err)
		assert.Equal(t, name, profile.Name)
	})
}

func TestSkillLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Name is required", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, new(MockAssetStore))

		_, err := uc.AddSkill(ctx, &domain.Skill{Proficiency: 50})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "AddSkill", mock.Anything, mock.Anything)
	})

	t.Run("Category defaults to other", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, new(MockAssetStore))

		mockRepo.On("AddSkill", ctx, mock.AnythingOfType("*domain.Skill")).
			Return(&domain.Profile{}, nil).
			Run(func(args mock.Arguments) {
				skill := args.Get(1).(*domain.Skill)
				assert.Equal(t, domain.SkillCategoryOther, skill.Category)
			})

		_, err := uc.AddSkill(ctx, &domain.Skill{Name: "Docker", Proficiency: 60})
		assert.NoError(t, err)
	})

	t.Run("Proficiency outside 0-100 is rejected", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, new(MockAssetStore))

		_, err := uc.AddSkill(ctx, &domain.Skill{Name: "Go", Proficiency: 120})
		assert.Error(t, err)

		bad := 101
		_, err = uc.UpdateSkill(ctx, "abc", &domain.SkillPatch{Proficiency: &bad})
		assert.Error(t, err)
	})

	t.Run("Deleting an unknown skill maps to not found", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, new(MockAssetStore))

		mockRepo.On("DeleteSkill", ctx, "deadbeef").Return(nil, domain.ErrNotFound)

		_, err := uc.DeleteSkill(ctx, "deadbeef")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestProfileUploads(t *testing.T) {
	ctx := context.Background()

	t.Run("Image upload updates the about image", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockAssets := new(MockAssetStore)
		uc := usecase.NewProfileUsecase(mockRepo, mockAssets)

		url := "https://assets.example.com/profile/me.jpg"
		mockAssets.On("Upload", ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).Return(url, nil)
		mockRepo.On("ApplyPatch", ctx, mock.AnythingOfType("*domain.ProfilePatch")).
			Return(&domain.Profile{AboutImage: url}, nil).
			Run(func(args mock.Arguments) {
				patch := args.Get(1).(*domain.ProfilePatch)
				assert.Equal(t, url, *patch.AboutImage)
			})

		profile, err := uc.UploadImage(ctx, "me.png", pngBytes(t))
		assert.NoError(t, err)
		assert.Equal(t, url, profile.AboutImage)
	})

	t.Run("Resume upload accepts only PDF", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockAssets := new(MockAssetStore)
		uc := usecase.NewProfileUsecase(mockRepo, mockAssets)

		_, err := uc.UploadResume(ctx, "resume.png", pngBytes(t))
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 415, appErr.Code)
		mockAssets.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

		pdf := []byte("%PDF-1.4\n%fake but well-formed enough")
		mockAssets.On("Upload", ctx, mock.AnythingOfType("string"), "application/pdf", pdf).
			Return("https://assets.example.com/resume/cv.pdf", nil)
		mockRepo.On("ApplyPatch", ctx, mock.AnythingOfType("*domain.ProfilePatch")).
			Return(&domain.Profile{ResumeURL: "https://assets.example.com/resume/cv.pdf"}, nil)

		profile, err := uc.UploadResume(ctx, "cv.pdf", pdf)
		assert.NoError(t, err)
		assert.NotEmpty(t, profile.ResumeURL)
	})
}
