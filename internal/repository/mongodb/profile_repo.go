package mongodb

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type profileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) domain.ProfileRepository {
	return &profileRepository{col: db.Collection("profiles")}
}

// GetOrCreateSingleton returns the one Profile document, inserting a
// default one when the collection is empty. The empty filter makes the
// singleton contract explicit: the collection never holds more than one
// document because every accessor goes through this path or ApplyPatch.
func (r *profileRepository) GetOrCreateSingleton(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.col.FindOne(ctx, bson.M{}).Decode(&profile)
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	now := time.Now()
	profile = domain.Profile{
		Name:      "Your Name",
		Title:     "Software Developer",
		Skills:    []domain.Skill{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.col.InsertOne(ctx, &profile)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		profile.ID = oid
	}
	return &profile, nil
}

// ApplyPatch merges the non-nil patch fields into the singleton with a
// single upserting update, so the record is created on first write.
func (r *profileRepository) ApplyPatch(ctx context.Context, patch *domain.ProfilePatch) (*domain.Profile, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.HeroDescription != nil {
		set["heroDescription"] = *patch.HeroDescription
	}
	if patch.AboutText != nil {
		set["aboutText"] = *patch.AboutText
	}
	if patch.AboutImage != nil {
		set["aboutImage"] = *patch.AboutImage
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.SocialLinks != nil {
		set["socialLinks"] = *patch.SocialLinks
	}
	if patch.ResumeURL != nil {
		set["resumeUrl"] = *patch.ResumeURL
	}
	if patch.Stats != nil {
		set["stats"] = *patch.Stats
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"createdAt": time.Now(),
			"skills":    []domain.Skill{},
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var profile domain.Profile
	if err := r.col.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) AddSkill(ctx context.Context, skill *domain.Skill) (*domain.Profile, error) {
	// Ensure the singleton exists before pushing into its skill list
	if _, err := r.GetOrCreateSingleton(ctx); err != nil {
		return nil, err
	}

	skill.ID = primitive.NewObjectID()

	update := bson.M{
		"$push": bson.M{"skills": skill},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile domain.Profile
	if err := r.col.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateSkill(ctx context.Context, skillID string, patch *domain.SkillPatch) (*domain.Profile, error) {
	oid, err := parseObjectID(skillID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["skills.$.name"] = *patch.Name
	}
	if patch.Category != nil {
		set["skills.$.category"] = *patch.Category
	}
	if patch.Icon != nil {
		set["skills.$.icon"] = *patch.Icon
	}
	if patch.Proficiency != nil {
		set["skills.$.proficiency"] = *patch.Proficiency
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile domain.Profile
	err = r.col.FindOneAndUpdate(ctx, bson.M{"skills._id": oid}, bson.M{"$set": set}, opts).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) DeleteSkill(ctx context.Context, skillID string) (*domain.Profile, error) {
	oid, err := parseObjectID(skillID)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$pull": bson.M{"skills": bson.M{"_id": oid}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile domain.Profile
	err = r.col.FindOneAndUpdate(ctx, bson.M{"skills._id": oid}, update, opts).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
