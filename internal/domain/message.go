package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message statuses. Any status can be set from any other; re-entering the
// current one is a no-op.
const (
	MessageStatusUnread   = "unread"
	MessageStatusRead     = "read"
	MessageStatusReplied  = "replied"
	MessageStatusArchived = "archived"
)

// Message is an inbound contact submission. It is created only through the
// public contact endpoint; afterwards only the administrator mutates it.
type Message struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Subject   string             `json:"subject" bson:"subject"`
	Message   string             `json:"message" bson:"message"`
	Status    string             `json:"status" bson:"status"`
	IPAddress string             `json:"ipAddress" bson:"ipAddress"`
	UserAgent string             `json:"userAgent" bson:"userAgent"`
	Replied   bool               `json:"replied" bson:"replied"`
	ReplyText string             `json:"replyText" bson:"replyText"`
	RepliedAt *time.Time         `json:"repliedAt" bson:"repliedAt,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type MessageStats struct {
	Total   int64 `json:"total"`
	Unread  int64 `json:"unread"`
	Read    int64 `json:"read"`
	Replied int64 `json:"replied"`
}

type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	GetByID(ctx context.Context, id string) (*Message, error)
	Fetch(ctx context.Context, status string) ([]Message, error)
	UpdateStatus(ctx context.Context, id, status string) (*Message, error)
	Reply(ctx context.Context, id, replyText string, repliedAt time.Time) (*Message, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*MessageStats, error)
}

type MessageUsecase interface {
	// Create stamps ipAddress/userAgent from transport metadata and forces
	// status to unread regardless of the payload.
	Create(ctx context.Context, message *Message, ipAddress, userAgent string) error
	Get(ctx context.Context, id string) (*Message, error)
	List(ctx context.Context, status string) ([]Message, error)
	UpdateStatus(ctx context.Context, id, status string) (*Message, error)
	Reply(ctx context.Context, id, replyText string) (*Message, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*MessageStats, error)
}
