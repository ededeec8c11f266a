package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Certification struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	Platform      string             `json:"platform" bson:"platform"`
	Icon          string             `json:"icon" bson:"icon"`
	IssueDate     string             `json:"issueDate" bson:"issueDate"`
	CredentialURL string             `json:"credentialUrl" bson:"credentialUrl"`
	CredentialID  string             `json:"credentialId" bson:"credentialId"`
	ImageURL      string             `json:"imageUrl" bson:"imageUrl"`
	Skills        []string           `json:"skills" bson:"skills"`
	Order         int                `json:"order" bson:"order"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CertificationPatch carries a partial update: nil fields are left untouched.
type CertificationPatch struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Platform      *string  `json:"platform"`
	Icon          *string  `json:"icon"`
	IssueDate     *string  `json:"issueDate"`
	CredentialURL *string  `json:"credentialUrl"`
	CredentialID  *string  `json:"credentialId"`
	ImageURL      *string  `json:"imageUrl"`
	Skills        []string `json:"skills"`
	Order         *int     `json:"order"`
}

type CertificationRepository interface {
	Create(ctx context.Context, certification *Certification) error
	GetByID(ctx context.Context, id string) (*Certification, error)
	Fetch(ctx context.Context) ([]Certification, error)
	Update(ctx context.Context, id string, patch *CertificationPatch) (*Certification, error)
	Delete(ctx context.Context, id string) error
}

type CertificationUsecase interface {
	Create(ctx context.Context, certification *Certification) error
	Get(ctx context.Context, id string) (*Certification, error)
	List(ctx context.Context) ([]Certification, error)
	Update(ctx context.Context, id string, patch *CertificationPatch) (*Certification, error)
	Delete(ctx context.Context, id string) error
}
