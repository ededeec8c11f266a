package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
}

func NewMessageUsecase(messageRepo domain.MessageRepository) domain.MessageUsecase {
	return &messageUsecase{messageRepo: messageRepo}
}

func validateMessageStatus(status string) error {
	switch status {
	case domain.MessageStatusUnread, domain.MessageStatusRead,
		domain.MessageStatusReplied, domain.MessageStatusArchived:
		return nil
	}
	return apperror.BadRequest("Status must be one of: unread, read, replied, archived")
}

// Create stores an inbound contact message. The caller's network identity
// is stamped server-side and any client-supplied status is discarded.
func (u *messageUsecase) Create(ctx context.Context, msg *domain.Message, ip, userAgent string) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(strings.ToLower(msg.Email))
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" {
		return apperror.BadRequest("Name is required")
	}
	if msg.Email == "" {
		return apperror.BadRequest("Email is required")
	}
	if msg.Subject == "" {
		return apperror.BadRequest("Subject is required")
	}
	if msg.Message == "" {
		return apperror.BadRequest("Message content is required")
	}

	msg.Status = domain.MessageStatusUnread
	msg.Replied = false
	msg.ReplyText = ""
	msg.RepliedAt = nil
	msg.IPAddress = ip
	msg.UserAgent = userAgent

	return u.messageRepo.Create(ctx, msg)
}

func (u *messageUsecase) Get(ctx context.Context, id string) (*domain.Message, error) {
	msg, err := u.messageRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Message not found")
	}
	return msg, err
}

func (u *messageUsecase) List(ctx context.Context, status string) ([]domain.Message, error) {
	if status != "" {
		if err := validateMessageStatus(status); err != nil {
			return nil, err
		}
	}
	return u.messageRepo.Fetch(ctx, status)
}

// UpdateStatus applies any valid status regardless of the current one;
// re-entering the same state is a no-op.
func (u *messageUsecase) UpdateStatus(ctx context.Context, id, status string) (*domain.Message, error) {
	if err := validateMessageStatus(status); err != nil {
		return nil, err
	}

	msg, err := u.messageRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Message not found")
	}
	if err != nil {
		return nil, err
	}

	if msg.Status == status {
		return msg, nil
	}

	updated, err := u.messageRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Message not found")
	}
	return updated, err
}

func (u *messageUsecase) Reply(ctx context.Context, id, text string) (*domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.BadRequest("Reply text is required")
	}

	updated, err := u.messageRepo.Reply(ctx, id, text, time.Now())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Message not found")
	}
	return updated, err
}

func (u *messageUsecase) Delete(ctx context.Context, id string) error {
	err := u.messageRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Message not found")
	}
	return err
}

func (u *messageUsecase) Stats(ctx context.Context) (*domain.MessageStats, error) {
	return u.messageRepo.Stats(ctx)
}
