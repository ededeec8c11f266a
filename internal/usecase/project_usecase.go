package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	assets      domain.AssetStore
}

func NewProjectUsecase(projectRepo domain.ProjectRepository, assets domain.AssetStore) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		assets:      assets,
	}
}

func validateProjectStatus(status string) error {
	switch status {
	case domain.ProjectStatusCompleted, domain.ProjectStatusInProgress, domain.ProjectStatusPlanned:
		return nil
	}
	return apperror.BadRequest("Status must be one of: completed, in-progress, planned")
}

func (u *projectUsecase) Create(ctx context.Context, project *domain.Project) error {
	if project.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if project.Description == "" {
		return apperror.BadRequest("Description is required")
	}
	if len(project.Technologies) == 0 {
		return apperror.BadRequest("At least one technology is required")
	}

	// Defaults
	if project.Status == "" {
		project.Status = domain.ProjectStatusCompleted
	}
	if err := validateProjectStatus(project.Status); err != nil {
		return err
	}
	if project.Images == nil {
		project.Images = []domain.ProjectImage{}
	}

	return u.projectRepo.Create(ctx, project)
}

func (u *projectUsecase) Get(ctx context.Context, id string) (*domain.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	return project, err
}

func (u *projectUsecase) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	return u.projectRepo.Fetch(ctx, filter)
}

func (u *projectUsecase) Update(ctx context.Context, id string, patch *domain.ProjectPatch) (*domain.Project, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, apperror.BadRequest("Title cannot be empty")
	}
	if patch.Description != nil && *patch.Description == "" {
		return nil, apperror.BadRequest("Description cannot be empty")
	}
	if patch.Technologies != nil && len(patch.Technologies) == 0 {
		return nil, apperror.BadRequest("At least one technology is required")
	}
	if patch.Status != nil {
		if err := validateProjectStatus(*patch.Status); err != nil {
			return nil, err
		}
	}

	project, err := u.projectRepo.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	return project, err
}

// Delete releases every attached asset at the asset host before removing
// the record. Cleanup is best-effort: a failed remote delete is logged and
// never blocks the record delete, leaving at worst an orphaned object.
func (u *projectUsecase) Delete(ctx context.Context, id string) error {
	project, err := u.projectRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Project not found")
	}
	if err != nil {
		return err
	}

	for _, image := range project.Images {
		if image.Key == "" {
			continue
		}
		if err := u.assets.Delete(ctx, image.Key); err != nil {
			logger.Log.Warn("Failed to release project asset",
				"project", id, "key", image.Key, "error", err)
		}
	}

	if err := u.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Project not found")
		}
		return err
	}
	return nil
}

// UploadImage validates and stores an image at the asset host, then appends
// it to the project's image list. The first uploaded image becomes the
// project's canonical image when none is set.
func (u *projectUsecase) UploadImage(ctx context.Context, id, filename, imageType string, data []byte) (*domain.Project, error) {
	if err := validateImageUpload(filename, data); err != nil {
		return nil, err
	}

	switch imageType {
	case domain.ImageTypeScreenshot, domain.ImageTypeDemo, domain.ImageTypeThumbnail:
	case "":
		imageType = domain.ImageTypeScreenshot
	default:
		return nil, apperror.BadRequest("Image type must be one of: screenshot, demo, thumbnail")
	}

	project, err := u.projectRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	if err != nil {
		return nil, err
	}

	body, contentType, key := prepareImage(filename, data)
	key = "projects/" + key
	url, err := u.assets.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, apperror.Upstream("Image upload failed", err)
	}

	image := &domain.ProjectImage{
		URL:  url,
		Key:  key,
		Type: imageType,
	}
	updated, err := u.projectRepo.AddImage(ctx, id, image, project.Image == "")
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	return updated, err
}

// DeleteImage removes an image sub-record by its identifier. The remote
// asset delete is attempted first but the list entry is removed regardless
// of its outcome.
func (u *projectUsecase) DeleteImage(ctx context.Context, id, imageID string) (*domain.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	if err != nil {
		return nil, err
	}

	var target *domain.ProjectImage
	for i := range project.Images {
		if project.Images[i].ID.Hex() == imageID {
			target = &project.Images[i]
			break
		}
	}
	if target == nil {
		return nil, apperror.NotFound("Image not found")
	}

	if target.Key != "" {
		if err := u.assets.Delete(ctx, target.Key); err != nil {
			logger.Log.Warn("Failed to release project asset",
				"project", id, "key", target.Key, "error", err)
		}
	}

	updated, err := u.projectRepo.RemoveImage(ctx, id, imageID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Image not found")
	}
	return updated, err
}
