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

type experienceRepository struct {
	col *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) domain.ExperienceRepository {
	return &experienceRepository{col: db.Collection("experience")}
}

func (r *experienceRepository) Create(ctx context.Context, experience *domain.Experience) error {
	now := time.Now()
	experience.CreatedAt = now
	experience.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, experience)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		experience.ID = oid
	}
	return nil
}

func (r *experienceRepository) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var experience domain.Experience
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&experience)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *experienceRepository) Fetch(ctx context.Context, expType string) ([]domain.Experience, error) {
	query := bson.M{}
	if expType != "" {
		query["type"] = expType
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "startDate", Value: -1},
	})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	experiences := []domain.Experience{}
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r *experienceRepository) Update(ctx context.Context, id string, patch *domain.ExperiencePatch) (*domain.Experience, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Organization != nil {
		set["organization"] = *patch.Organization
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.StartDate != nil {
		set["startDate"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		set["endDate"] = *patch.EndDate
	}
	if patch.Current != nil {
		set["current"] = *patch.Current
	}
	if patch.Technologies != nil {
		set["technologies"] = patch.Technologies
	}
	if patch.Achievements != nil {
		set["achievements"] = patch.Achievements
	}
	if patch.Order != nil {
		set["order"] = *patch.Order
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var experience domain.Experience
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&experience)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *experienceRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
