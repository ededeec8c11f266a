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

type projectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) domain.ProjectRepository {
	return &projectRepository{col: db.Collection("projects")}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Images == nil {
		project.Images = []domain.ProjectImage{}
	}

	res, err := r.col.InsertOne(ctx, project)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		project.ID = oid
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var project domain.Project
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Fetch(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	query := bson.M{}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: -1},
	})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []domain.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, id string, patch *domain.ProjectPatch) (*domain.Project, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.LongDescription != nil {
		set["longDescription"] = *patch.LongDescription
	}
	if patch.Technologies != nil {
		set["technologies"] = patch.Technologies
	}
	if patch.Features != nil {
		set["features"] = patch.Features
	}
	if patch.Links != nil {
		set["links"] = *patch.Links
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Featured != nil {
		set["featured"] = *patch.Featured
	}
	if patch.Order != nil {
		set["order"] = *patch.Order
	}
	if patch.StartDate != nil {
		set["startDate"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		set["endDate"] = *patch.EndDate
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project domain.Project
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
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

func (r *projectRepository) AddImage(ctx context.Context, id string, image *domain.ProjectImage, setCanonical bool) (*domain.Project, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	image.ID = primitive.NewObjectID()

	set := bson.M{"updatedAt": time.Now()}
	if setCanonical {
		set["image"] = image.URL
	}
	update := bson.M{
		"$push": bson.M{"images": image},
		"$set":  set,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project domain.Project
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) RemoveImage(ctx context.Context, id, imageID string) (*domain.Project, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	imgOID, err := parseObjectID(imageID)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$pull": bson.M{"images": bson.M{"_id": imgOID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project domain.Project
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid, "images._id": imgOID}, update, opts).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}
