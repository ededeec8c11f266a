package mongodb

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) domain.MessageRepository {
	return &messageRepository{col: db.Collection("messages")}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	now := time.Now()
	message.Email = strings.ToLower(message.Email)
	message.CreatedAt = now
	message.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, message)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		message.ID = oid
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var message domain.Message
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&message)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) Fetch(ctx context.Context, status string) ([]domain.Message, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []domain.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Message, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var message domain.Message
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&message)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) Reply(ctx context.Context, id, replyText string, repliedAt time.Time) (*domain.Message, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"status":    domain.MessageStatusReplied,
		"replied":   true,
		"replyText": replyText,
		"repliedAt": repliedAt,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var message domain.Message
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&message)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) Delete(ctx context.Context, id string) error {
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

func (r *messageRepository) Stats(ctx context.Context) (*domain.MessageStats, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	unread, err := r.col.CountDocuments(ctx, bson.M{"status": domain.MessageStatusUnread})
	if err != nil {
		return nil, err
	}
	read, err := r.col.CountDocuments(ctx, bson.M{"status": domain.MessageStatusRead})
	if err != nil {
		return nil, err
	}
	replied, err := r.col.CountDocuments(ctx, bson.M{"status": domain.MessageStatusReplied})
	if err != nil {
		return nil, err
	}

	return &domain.MessageStats{
		Total:   total,
		Unread:  unread,
		Read:    read,
		Replied: replied,
	}, nil
}
