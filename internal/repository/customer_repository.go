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

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*domain.Customer, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type customerRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewCustomerRepository(db *mongo.Database, logger *zap.Logger) CustomerRepository {
	return &customerRepo{
		coll:   db.Collection("customers"),
		logger: logger,
	}
}

func (r *customerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, customer)
	if err != nil {
		r.logger.Error("failed to insert customer", zap.Error(err))
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	customer.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *customerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &customer, nil
}

func (r *customerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("failed to query customers", zap.Error(err))
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []domain.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}

	return customers, nil
}

func (r *customerRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*domain.Customer, error) {
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Customer
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCustomerNotFound
		}

		r.logger.Error("failed to update customer", zap.String("customer_id", id.Hex()), zap.Error(err))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return &updated, nil
}

func (r *customerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete customer", zap.String("customer_id", id.Hex()), zap.Error(err))
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
