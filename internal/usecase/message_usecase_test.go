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
)

func TestMessageCreateStampsTransportMetadata(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMessageRepo)
	uc := usecase.NewMessageUsecase(mockRepo)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil).Run(func(args mock.Arguments) {
		msg := args.Get(1).(*domain.Message)
		assert.Equal(t, domain.MessageStatusUnread, msg.Status)
		assert.Equal(t, "203.0.113.9", msg.IPAddress)
		assert.Equal(t, "curl/8.0", msg.UserAgent)
		assert.False(t, msg.Replied)
		assert.Empty(t, msg.ReplyText)
		assert.Nil(t, msg.RepliedAt)
		assert.Equal(t, "visitor@example.com", msg.Email)
	})

	// Client tries to smuggle in state it must not control.
	msg := &domain.Message{
		Name:      "Visitor",
		Email:     "Visitor@Example.com",
		Subject:   "Hello",
		Message:   "Nice site!",
		Status:    domain.MessageStatusReplied,
		IPAddress: "1.2.3.4",
		UserAgent: "spoofed",
		Replied:   true,
		ReplyText: "fake",
	}
	err := uc.Create(ctx, msg, "203.0.113.9", "curl/8.0")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMessageCreateRequiredFields(t *testing.T) {
	ctx := context.Background()

	t.Run("Whitespace-only content is rejected", func(t *testing.T) {
		mockRepo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(mockRepo)

		err := uc.Create(ctx, &domain.Message{Name: "X", Email: "x@example.com", Subject: "Hi", Message: "   "}, "ip", "ua")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing subject is rejected", func(t *testing.T) {
		mockRepo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(mockRepo)

		err := uc.Create(ctx, &domain.Message{Name: "X", Email: "x@example.com", Message: "Hello"}, "ip", "ua")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMessageStatusTransitions(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	withStatus := func(status string) (*MockMessageRepo, domain.MessageUsecase) {
		mockRepo := new(MockMessageRepo)
		mockRepo.On("GetByID", ctx, id.Hex()).Return(&domain.Message{ID: id, Status: status}, nil)
		return mockRepo, usecase.NewMessageUsecase(mockRepo)
	}

	t.Run("Forward transition is applied", func(t *testing.T) {
		mockRepo, uc := withStatus(domain.MessageStatusUnread)
		mockRepo.On("UpdateStatus", ctx, id.Hex(), domain.MessageStatusRead).
			Return(&domain.Message{ID: id, Status: domain.MessageStatusRead}, nil)

		msg, err := uc.UpdateStatus(ctx, id.Hex(), domain.MessageStatusRead)
		assert.NoError(t, err)
		assert.Equal(t, domain.MessageStatusRead, msg.Status)
	})

	t.Run("Re-entering the current state is a no-op success", func(t *testing.T) {
		mockRepo, uc := withStatus(domain.MessageStatusRead)

		msg, err := uc.UpdateStatus(ctx, id.Hex(), domain.MessageStatusRead)
		assert.NoError(t, err)
		assert.Equal(t, domain.MessageStatusRead, msg.Status)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Backward transition is applied", func(t *testing.T) {
		mockRepo, uc := withStatus(domain.MessageStatusReplied)
		mockRepo.On("UpdateStatus", ctx, id.Hex(), domain.MessageStatusRead).
			Return(&domain.Message{ID: id, Status: domain.MessageStatusRead}, nil)

		msg, err := uc.UpdateStatus(ctx, id.Hex(), domain.MessageStatusRead)
		assert.NoError(t, err)
		assert.Equal(t, domain.MessageStatusRead, msg.Status)
	})

	t.Run("Unarchiving is applied", func(t *testing.T) {
		mockRepo, uc := withStatus(domain.MessageStatusArchived)
		mockRepo.On("UpdateStatus", ctx, id.Hex(), domain.MessageStatusUnread).
			Return(&domain.Message{ID: id, Status: domain.MessageStatusUnread}, nil)

		msg, err := uc.UpdateStatus(ctx, id.Hex(), domain.MessageStatusUnread)
		assert.NoError(t, err)
		assert.Equal(t, domain.MessageStatusUnread, msg.Status)
	})

	t.Run("Archiving is allowed from any state", func(t *testing.T) {
		mockRepo, uc := withStatus(domain.MessageStatusReplied)
		mockRepo.On("UpdateStatus", ctx, id.Hex(), domain.MessageStatusArchived).
			Return(&domain.Message{ID: id, Status: domain.MessageStatusArchived}, nil)

		msg, err := uc.UpdateStatus(ctx, id.Hex(), domain.MessageStatusArchived)
		assert.NoError(t, err)
		assert.Equal(t, domain.MessageStatusArchived, msg.Status)
	})

	t.Run("Unknown status is rejected before any lookup", func(t *testing.T) {
		mockRepo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(mockRepo)

		_, err := uc.UpdateStatus(ctx, id.Hex(), "starred")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestMessageReply(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("Empty reply text is rejected", func(t *testing.T) {
		mockRepo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(mockRepo)

		_, err := uc.Reply(ctx, id.Hex(), "   ")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Reply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reply is stored trimmed", func(t *testing.T) {
		mockRepo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(mockRepo)
		mockRepo.On("Reply", ctx, id.Hex(), "Thanks for reaching out!", mock.AnythingOfType("time.Time")).
			Return(&domain.Message{ID: id, Status: domain.MessageStatusReplied, Replied: true}, nil)

		msg, err := uc.Reply(ctx, id.Hex(), "  Thanks for reaching out!  ")
		assert.NoError(t, err)
		assert.True(t, msg.Replied)
	})

	t.Run("Missing message maps to not found", func(t *testing.T) {
		mockRepo := new(MockMessageRepo)
		uc := usecase.NewMessageUsecase(mockRepo)
		mockRepo.On("Reply", ctx, id.Hex(), "hi", mock.AnythingOfType("time.Time")).
			Return(nil, domain.ErrNotFound)

		_, err := uc.Reply(ctx, id.Hex(), "hi")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}
