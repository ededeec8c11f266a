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

type certificationRepository struct {
	col *mongo.Collection
}

func NewCertificationRepository(db *mongo.Database) domain.CertificationRepository {
	return &certificationRepository{col: db.Collection("certifications")}
}

func (r *certificationRepository) Create(ctx context.Context, certification *domain.Certification) error {
	now := time.Now()
	certification.CreatedAt = now
	certification.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, certification)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		certification.ID = oid
	}
	return nil
}

func (r *certificationRepository) GetByID(ctx context.Context, id string) (*domain.Certification, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var certification domain.Certification
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&certification)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &certification, nil
}

func (r *certificationRepository) Fetch(ctx context.Context) ([]domain.Certification, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: -1},
	})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	certifications := []domain.Certification{}
	if err := cursor.All(ctx, &certifications); err != nil {
		return nil, err
	}
	return certifications, nil
}

func (r *certificationRepository) Update(ctx context.Context, id string, patch *domain.CertificationPatch) (*domain.Certification, error) {
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
	if patch.Platform != nil {
		set["platform"] = *patch.Platform
	}
	if patch.Icon != nil {
		set["icon"] = *patch.Icon
	}
	if patch.IssueDate != nil {
		set["issueDate"] = *patch.IssueDate
	}
	if patch.CredentialURL != nil {
		set["credentialUrl"] = *patch.CredentialURL
	}
	if patch.CredentialID != nil {
		set["credentialId"] = *patch.CredentialID
	}
	if patch.ImageURL != nil {
		set["imageUrl"] = *patch.ImageURL
	}
	if patch.Skills != nil {
		set["skills"] = patch.Skills
	}
	if patch.Order != nil {
		set["order"] = *patch.Order
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var certification domain.Certification
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&certification)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &certification, nil
}

func (r *certificationRepository) Delete(ctx context.Context, id string) error {
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
