package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pngBytes returns a small valid PNG for upload tests.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProjectCreateDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults are applied", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockAssets := new(MockAssetStore)
		uc := usecase.NewProjectUsecase(mockRepo, mockAssets)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Project")).Return(nil)

		project := &domain.Project{
			Title:        "Portfolio Site",
			Description:  "This very site",
			Technologies: []string{"Go"},
		}
		err := uc.Create(ctx, project)
		assert.NoError(t, err)
		assert.Equal(t, domain.ProjectStatusCompleted, project.Status)
		assert.NotNil(t, project.Images)
		assert.False(t, project.Featured)
		assert.Zero(t, project.Order)
	})

	t.Run("Technologies are required", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(mockRepo, new(MockAssetStore))

		err := uc.Create(ctx, &domain.Project{Title: "X", Description: "Y"})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(mockRepo, new(MockAssetStore))

		err := uc.Create(ctx, &domain.Project{
			Title:        "X",
			Description:  "Y",
			Technologies: []string{"Go"},
			Status:       "shipped",
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProjectDeleteReleasesAssets(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("Record delete proceeds even when asset cleanup fails", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockAssets := new(MockAssetStore)
		uc := usecase.NewProjectUsecase(mockRepo, mockAssets)

		project := &domain.Project{
			ID: id,
			Images: []domain.ProjectImage{
				{ID: primitive.NewObjectID(), Key: "projects/a.jpg"},
				{ID: primitive.NewObjectID(), Key: "projects/b.jpg"},
			},
		}
		mockRepo.On("GetByID", ctx, id.Hex()).Return(project, nil)
		mockAssets.On("Delete", ctx, "projects/a.jpg").Return(errors.New("host unreachable"))
		mockAssets.On("Delete", ctx, "projects/b.jpg").Return(nil)
		mockRepo.On("Delete", ctx, id.Hex()).Return(nil)

		err := uc.Delete(ctx, id.Hex())
		assert.NoError(t, err)
		mockRepo.AssertCalled(t, "Delete", ctx, id.Hex())
		mockAssets.AssertNumberOfCalls(t, "Delete", 2)
	})

	t.Run("Missing project maps to not found", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(mockRepo, new(MockAssetStore))

		mockRepo.On("GetByID", ctx, id.Hex()).Return(nil, domain.ErrNotFound)

		err := uc.Delete(ctx, id.Hex())
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestProjectUploadImage(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("Invalid file is rejected before any store access", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockAssets := new(MockAssetStore)
		uc := usecase.NewProjectUsecase(mockRepo, mockAssets)

		_, err := uc.UploadImage(ctx, id.Hex(), "notes.txt", "", []byte("just some text"))
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 415, appErr.Code)
		mockAssets.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "AddImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("First image becomes the canonical image", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockAssets := new(MockAssetStore)
		uc := usecase.NewProjectUsecase(mockRepo, mockAssets)

		mockRepo.On("GetByID", ctx, id.Hex()).Return(&domain.Project{ID: id}, nil)
		mockAssets.On("Upload", ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
			Return("https://assets.example.com/projects/shot.jpg", nil)
		mockRepo.On("AddImage", ctx, id.Hex(), mock.AnythingOfType("*domain.ProjectImage"), true).
			Return(&domain.Project{ID: id, Image: "https://assets.example.com/projects/shot.jpg"}, nil).
			Run(func(args mock.Arguments) {
				img := args.Get(2).(*domain.ProjectImage)
				assert.Equal(t, "https://assets.example.com/projects/shot.jpg", img.URL)
				assert.Equal(t, domain.ImageTypeScreenshot, img.Type)
				assert.True(t, args.Bool(3))
			})

		project, err := uc.UploadImage(ctx, id.Hex(), "shot.png", "", pngBytes(t))
		assert.NoError(t, err)
		assert.NotEmpty(t, project.Image)
	})

	t.Run("Canonical image is left alone once set", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockAssets := new(MockAssetStore)
		uc := usecase.NewProjectUsecase(mockRepo, mockAssets)

		mockRepo.On("GetByID", ctx, id.Hex()).Return(&domain.Project{ID: id, Image: "existing.jpg"}, nil)
		mockAssets.On("Upload", ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
			Return("https://assets.example.com/projects/extra.jpg", nil)
		mockRepo.On("AddImage", ctx, id.Hex(), mock.AnythingOfType("*domain.ProjectImage"), false).
			Return(&domain.Project{ID: id, Image: "existing.jpg"}, nil)

		_, err := uc.UploadImage(ctx, id.Hex(), "extra.png", domain.ImageTypeDemo, pngBytes(t))
		assert.NoError(t, err)
		mockRepo.AssertCalled(t, "AddImage", ctx, id.Hex(), mock.AnythingOfType("*domain.ProjectImage"), false)
	})

	t.Run("Asset host failure surfaces as upstream error and nothing is recorded", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockAssets := new(MockAssetStore)
		uc := usecase.NewProjectUsecase(mockRepo, mockAssets)

		mockRepo.On("GetByID", ctx, id.Hex()).Return(&domain.Project{ID: id}, nil)
		mockAssets.On("Upload", ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
			Return("", errors.New("connection refused"))

		_, err := uc.UploadImage(ctx, id.Hex(), "shot.png", "", pngBytes(t))
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 502, appErr.Code)
		mockRepo.AssertNotCalled(t, "AddImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProjectDeleteImage(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()
	imageID := primitive.NewObjectID()

	t.Run("Unknown image ID maps to not found", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(mockRepo, new(MockAssetStore))

		mockRepo.On("GetByID", ctx, id.Hex()).Return(&domain.Project{ID: id}, nil)

		_, err := uc.DeleteImage(ctx, id.Hex(), imageID.Hex())
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("List entry is removed even when the remote delete fails", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockAssets := new(MockAssetStore)
		uc := usecase.NewProjectUsecase(mockRepo, mockAssets)

		mockRepo.On("GetByID", ctx, id.Hex()).Return(&domain.Project{
			ID:     id,
			Images: []domain.ProjectImage{{ID: imageID, Key: "projects/x.jpg"}},
		}, nil)
		mockAssets.On("Delete", ctx, "projects/x.jpg").Return(errors.New("host unreachable"))
		mockRepo.On("RemoveImage", ctx, id.Hex(), imageID.Hex()).Return(&domain.Project{ID: id}, nil)

		_, err := uc.DeleteImage(ctx, id.Hex(), imageID.Hex())
		assert.NoError(t, err)
		mockRepo.AssertCalled(t, "RemoveImage", ctx, id.Hex(), imageID.Hex())
	})
}
