package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill categories
const (
	SkillCategoryFrontend = "frontend"
	SkillCategoryBackend  = "backend"
	SkillCategoryTools    = "tools"
	SkillCategoryOther    = "other"
)

// Skill is an embedded sub-document of the Profile singleton. The ID is
// assigned at append time and stays stable across updates.
type Skill struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	Icon        string             `json:"icon" bson:"icon"`
	Proficiency int                `json:"proficiency" bson:"proficiency"`
}

type SocialLinks struct {
	GitHub    string `json:"github" bson:"github"`
	LinkedIn  string `json:"linkedin" bson:"linkedin"`
	Twitter   string `json:"twitter" bson:"twitter"`
	Instagram string `json:"instagram" bson:"instagram"`
}

type ProfileStats struct {
	ProjectsCompleted int `json:"projectsCompleted" bson:"projectsCompleted"`
	Technologies      int `json:"technologies" bson:"technologies"`
	YearsLearning     int `json:"yearsLearning" bson:"yearsLearning"`
}

// Profile is a singleton record: at most one document ever exists, created
// lazily on first read or write and never deleted.
type Profile struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Title           string             `json:"title" bson:"title"`
	HeroDescription string             `json:"heroDescription" bson:"heroDescription"`
	AboutText       string             `json:"aboutText" bson:"aboutText"`
	AboutImage      string             `json:"aboutImage" bson:"aboutImage"`
	Email           string             `json:"email" bson:"email"`
	Phone           string             `json:"phone" bson:"phone"`
	Location        string             `json:"location" bson:"location"`
	SocialLinks     SocialLinks        `json:"socialLinks" bson:"socialLinks"`
	ResumeURL       string             `json:"resumeUrl" bson:"resumeUrl"`
	Stats           ProfileStats       `json:"stats" bson:"stats"`
	Skills          []Skill            `json:"skills" bson:"skills"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProfilePatch carries a partial update: nil fields are left untouched.
type ProfilePatch struct {
	Name            *string       `json:"name"`
	Title           *string       `json:"title"`
	HeroDescription *string       `json:"heroDescription"`
	AboutText       *string       `json:"aboutText"`
	AboutImage      *string       `json:"aboutImage"`
	Email           *string       `json:"email"`
	Phone           *string       `json:"phone"`
	Location        *string       `json:"location"`
	SocialLinks     *SocialLinks  `json:"socialLinks"`
	ResumeURL       *string       `json:"resumeUrl"`
	Stats           *ProfileStats `json:"stats"`
}

// SkillPatch carries a partial update of one embedded skill.
type SkillPatch struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Icon        *string `json:"icon"`
	Proficiency *int    `json:"proficiency"`
}

type ProfileRepository interface {
	// GetOrCreateSingleton returns the one Profile document, creating a
	// default one when the collection is empty.
	GetOrCreateSingleton(ctx context.Context) (*Profile, error)
	// ApplyPatch merges the non-nil patch fields into the singleton,
	// creating it when absent, and returns the updated document.
	ApplyPatch(ctx context.Context, patch *ProfilePatch) (*Profile, error)
	AddSkill(ctx context.Context, skill *Skill) (*Profile, error)
	UpdateSkill(ctx context.Context, skillID string, patch *SkillPatch) (*Profile, error)
	DeleteSkill(ctx context.Context, skillID string) (*Profile, error)
}

type ProfileUsecase interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, patch *ProfilePatch) (*Profile, error)
	AddSkill(ctx context.Context, skill *Skill) (*Profile, error)
	UpdateSkill(ctx context.Context, skillID string, patch *SkillPatch) (*Profile, error)
	DeleteSkill(ctx context.Context, skillID string) (*Profile, error)
	UploadImage(ctx context.Context, filename string, data []byte) (*Profile, error)
	UploadResume(ctx context.Context, filename string, data []byte) (*Profile, error)
}
