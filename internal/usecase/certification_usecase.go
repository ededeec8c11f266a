package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

const defaultCertificationIcon = "fas fa-certificate"

type certificationUsecase struct {
	certificationRepo domain.CertificationRepository
}

func NewCertificationUsecase(certificationRepo domain.CertificationRepository) domain.CertificationUsecase {
	return &certificationUsecase{certificationRepo: certificationRepo}
}

func (u *certificationUsecase) Create(ctx context.Context, certification *domain.Certification) error {
	if certification.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if certification.Platform == "" {
		return apperror.BadRequest("Platform is required")
	}
	if certification.Icon == "" {
		certification.Icon = defaultCertificationIcon
	}

	return u.certificationRepo.Create(ctx, certification)
}

func (u *certificationUsecase) Get(ctx context.Context, id string) (*domain.Certification, error) {
	certification, err := u.certificationRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Certification not found")
	}
	return certification, err
}

func (u *certificationUsecase) List(ctx context.Context) ([]domain.Certification, error) {
	return u.certificationRepo.Fetch(ctx)
}

func (u *certificationUsecase) Update(ctx context.Context, id string, patch *domain.CertificationPatch) (*domain.Certification, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, apperror.BadRequest("Title cannot be empty")
	}
	if patch.Platform != nil && *patch.Platform == "" {
		return nil, apperror.BadRequest("Platform cannot be empty")
	}

	certification, err := u.certificationRepo.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Certification not found")
	}
	return certification, err
}

func (u *certificationUsecase) Delete(ctx context.Context, id string) error {
	err := u.certificationRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Certification not found")
	}
	return err
}
