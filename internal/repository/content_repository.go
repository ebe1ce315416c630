package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*domain.Service, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PortfolioRepository interface {
	Create(ctx context.Context, item *domain.PortfolioItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.PortfolioItem, error)
	List(ctx context.Context, category string) ([]domain.PortfolioItem, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*domain.PortfolioItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type serviceRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewServiceRepository(db *mongo.Database, logger *zap.Logger) ServiceRepository {
	return &serviceRepo{
		coll:   db.Collection("services"),
		logger: logger,
	}
}

func (r *serviceRepo) Create(ctx context.Context, svc *domain.Service) error {
	now := time.Now().UTC()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, svc)
	if err != nil {
		r.logger.Error("failed to insert service", zap.Error(err))
		return fmt.Errorf("failed to insert service: %w", err)
	}

	svc.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *serviceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Service, error) {
	var svc domain.Service
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}

	return &svc, nil
}

func (r *serviceRepo) List(ctx context.Context) ([]domain.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("failed to query services", zap.Error(err))
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []domain.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}

	return services, nil
}

func (r *serviceRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*domain.Service, error) {
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Service
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrServiceNotFound
		}

		r.logger.Error("failed to update service", zap.String("service_id", id.Hex()), zap.Error(err))
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	return &updated, nil
}

func (r *serviceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete service", zap.String("service_id", id.Hex()), zap.Error(err))
		return fmt.Errorf("failed to delete service: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrServiceNotFound
	}

	return nil
}

type portfolioRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewPortfolioRepository(db *mongo.Database, logger *zap.Logger) PortfolioRepository {
	return &portfolioRepo{
		coll:   db.Collection("portfolio"),
		logger: logger,
	}
}

func (r *portfolioRepo) Create(ctx context.Context, item *domain.PortfolioItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		r.logger.Error("failed to insert portfolio item", zap.Error(err))
		return fmt.Errorf("failed to insert portfolio item: %w", err)
	}

	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *portfolioRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.PortfolioItem, error) {
	var item domain.PortfolioItem
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("failed to find portfolio item: %w", err)
	}

	return &item, nil
}

func (r *portfolioRepo) List(ctx context.Context, category string) ([]domain.PortfolioItem, error) {
	query := bson.M{}
	if category != "" {
		query["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		r.logger.Error("failed to query portfolio", zap.Error(err))
		return nil, fmt.Errorf("failed to query portfolio: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.PortfolioItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio items: %w", err)
	}

	return items, nil
}

func (r *portfolioRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*domain.PortfolioItem, error) {
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.PortfolioItem
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPortfolioNotFound
		}

		r.logger.Error("failed to update portfolio item", zap.String("item_id", id.Hex()), zap.Error(err))
		return nil, fmt.Errorf("failed to update portfolio item: %w", err)
	}

	return &updated, nil
}

func (r *portfolioRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete portfolio item", zap.String("item_id", id.Hex()), zap.Error(err))
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrPortfolioNotFound
	}

	return nil
}
