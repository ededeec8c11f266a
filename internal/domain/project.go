package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusPlanned    = "planned"
)

// Project image types
const (
	ImageTypeScreenshot = "screenshot"
	ImageTypeDemo       = "demo"
	ImageTypeThumbnail  = "thumbnail"
)

// ProjectImage is an embedded sub-document. Key is the asset-host deletion
// handle for the uploaded binary.
type ProjectImage struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	URL  string             `json:"url" bson:"url"`
	Key  string             `json:"key" bson:"key"`
	Type string             `json:"type" bson:"type"`
}

type ProjectLinks struct {
	Live   string `json:"live" bson:"live"`
	GitHub string `json:"github" bson:"github"`
	Demo   string `json:"demo" bson:"demo"`
}

type Project struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	LongDescription string             `json:"longDescription" bson:"longDescription"`
	Image           string             `json:"image" bson:"image"` // canonical image URL
	Images          []ProjectImage     `json:"images" bson:"images"`
	Technologies    []string           `json:"technologies" bson:"technologies"`
	Features        []string           `json:"features" bson:"features"`
	Links           ProjectLinks       `json:"links" bson:"links"`
	Category        string             `json:"category" bson:"category"`
	Status          string             `json:"status" bson:"status"`
	Featured        bool               `json:"featured" bson:"featured"`
	Order           int                `json:"order" bson:"order"`
	StartDate       string             `json:"startDate" bson:"startDate"`
	EndDate         string             `json:"endDate" bson:"endDate"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProjectPatch carries a partial update: nil fields are left untouched.
type ProjectPatch struct {
	Title           *string       `json:"title"`
	Description     *string       `json:"description"`
	LongDescription *string       `json:"longDescription"`
	Technologies    []string      `json:"technologies"`
	Features        []string      `json:"features"`
	Links           *ProjectLinks `json:"links"`
	Category        *string       `json:"category"`
	Status          *string       `json:"status"`
	Featured        *bool         `json:"featured"`
	Order           *int          `json:"order"`
	StartDate       *string       `json:"startDate"`
	EndDate         *string       `json:"endDate"`
}

// ProjectFilter holds the optional equality filters for list queries.
type ProjectFilter struct {
	Featured *bool
	Category string
	Status   string
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	Fetch(ctx context.Context, filter ProjectFilter) ([]Project, error)
	Update(ctx context.Context, id string, patch *ProjectPatch) (*Project, error)
	Delete(ctx context.Context, id string) error
	// AddImage appends an image sub-document; when setCanonical is true the
	// image URL also becomes the project's canonical image field.
	AddImage(ctx context.Context, id string, image *ProjectImage, setCanonical bool) (*Project, error)
	RemoveImage(ctx context.Context, id, imageID string) (*Project, error)
}

type ProjectUsecase interface {
	Create(ctx context.Context, project *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
	Update(ctx context.Context, id string, patch *ProjectPatch) (*Project, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id, filename, imageType string, data []byte) (*Project, error)
	DeleteImage(ctx context.Context, id, imageID string) (*Project, error)
}
