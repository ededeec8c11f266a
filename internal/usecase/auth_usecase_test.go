package usecase_test

import (
	"context"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginCredentialErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown email and wrong password produce the same error", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, &stubTokenIssuer{token: "tok"})

		mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)
		_, errMissing := uc.Login(ctx, "nobody@example.com", "whatever")
		assert.Error(t, errMissing)

		user := &domain.User{
			ID:           primitive.NewObjectID(),
			Email:        "admin@example.com",
			PasswordHash: hashFor(t, "right-password"),
		}
		mockRepo.On("GetByEmail", ctx, "admin@example.com").Return(user, nil)
		_, errWrong := uc.Login(ctx, "admin@example.com", "wrong-password")
		assert.Error(t, errWrong)

		// An attacker must not be able to tell the cases apart.
		assert.Equal(t, errMissing.Error(), errWrong.Error())

		var appErr *apperror.AppError
		assert.ErrorAs(t, errMissing, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("Email is normalized before lookup", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, &stubTokenIssuer{token: "tok"})

		user := &domain.User{
			ID:           primitive.NewObjectID(),
			Email:        "admin@example.com",
			PasswordHash: hashFor(t, "right-password"),
		}
		mockRepo.On("GetByEmail", ctx, "admin@example.com").Return(user, nil)

		result, err := uc.Login(ctx, "  Admin@Example.COM ", "right-password")
		assert.NoError(t, err)
		assert.Equal(t, "tok", result.Token)
		assert.Equal(t, user.Email, result.User.Email)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	newUC := func(currentPassword string) (*MockUserRepo, domain.AuthUsecase) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByID", ctx, userID.Hex()).Return(&domain.User{
			ID:           userID,
			Email:        "admin@example.com",
			PasswordHash: hashFor(t, currentPassword),
		}, nil)
		return mockRepo, usecase.NewAuthUsecase(mockRepo, &stubTokenIssuer{token: "tok"})
	}

	t.Run("Should reject a wrong current password", func(t *testing.T) {
		_, uc := newUC("old-password")
		err := uc.ChangePassword(ctx, userID.Hex(), "not-the-password", "brand-new-pass")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Current password is incorrect")
	})

	t.Run("Should reject a short new password", func(t *testing.T) {
		_, uc := newUC("old-password")
		err := uc.ChangePassword(ctx, userID.Hex(), "old-password", "short")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("Should store a verifiable hash of the new password", func(t *testing.T) {
		mockRepo, uc := newUC("old-password")
		mockRepo.On("UpdatePassword", ctx, userID.Hex(), mock.AnythingOfType("string")).Return(nil).Run(func(args mock.Arguments) {
			stored := args.String(2)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("brand-new-pass")))
		})

		err := uc.ChangePassword(ctx, userID.Hex(), "old-password", "brand-new-pass")
		assert.NoError(t, err)
		mockRepo.AssertCalled(t, "UpdatePassword", ctx, userID.Hex(), mock.AnythingOfType("string"))
	})
}
