package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type contactRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewContactRepository(db *mongo.Database, logger *zap.Logger) ContactRepository {
	return &contactRepo{
		coll:   db.Collection("contacts"),
		logger: logger,
	}
}

func (r *contactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	msg.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, msg)
	if err != nil {
		r.logger.Error("failed to insert contact message", zap.Error(err))
		return fmt.Errorf("failed to insert contact message: %w", err)
	}

	msg.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *contactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("failed to query contact messages", zap.Error(err))
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []domain.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}

	return messages, nil
}

func (r *contactRepo) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		r.logger.Error("failed to mark contact message read", zap.String("message_id", id.Hex()), zap.Error(err))
		return fmt.Errorf("failed to mark contact message read: %w", err)
	}

	if res.MatchedCount == 0 {
		return ErrContactNotFound
	}

	return nil
}

func (r *contactRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete contact message", zap.String("message_id", id.Hex()), zap.Error(err))
		return fmt.Errorf("failed to delete contact message: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrContactNotFound
	}

	return nil
}
