package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience types
const (
	ExperienceTypeWork      = "work"
	ExperienceTypeEducation = "education"
	ExperienceTypeProject   = "project"
	ExperienceTypeOther     = "other"
)

type Experience struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type         string             `json:"type" bson:"type"`
	Title        string             `json:"title" bson:"title"`
	Organization string             `json:"organization" bson:"organization"`
	Location     string             `json:"location" bson:"location"`
	Description  string             `json:"description" bson:"description"`
	StartDate    string             `json:"startDate" bson:"startDate"`
	EndDate      string             `json:"endDate" bson:"endDate"`
	Current      bool               `json:"current" bson:"current"`
	Technologies []string           `json:"technologies" bson:"technologies"`
	Achievements []string           `json:"achievements" bson:"achievements"`
	Order        int                `json:"order" bson:"order"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ExperiencePatch carries a partial update: nil fields are left untouched.
type ExperiencePatch struct {
	Type         *string  `json:"type"`
	Title        *string  `json:"title"`
	Organization *string  `json:"organization"`
	Location     *string  `json:"location"`
	Description  *string  `json:"description"`
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Current      *bool    `json:"current"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
	Order        *int     `json:"order"`
}

type ExperienceRepository interface {
	Create(ctx context.Context, experience *Experience) error
	GetByID(ctx context.Context, id string) (*Experience, error)
	Fetch(ctx context.Context, expType string) ([]Experience, error)
	Update(ctx context.Context, id string, patch *ExperiencePatch) (*Experience, error)
	Delete(ctx context.Context, id string) error
}

type ExperienceUsecase interface {
	Create(ctx context.Context, experience *Experience) error
	Get(ctx context.Context, id string) (*Experience, error)
	List(ctx context.Context, expType string) ([]Experience, error)
	Update(ctx context.Context, id string, patch *ExperiencePatch) (*Experience, error)
	Delete(ctx context.Context, id string) error
}
