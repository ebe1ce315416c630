package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/mylogger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	// Update applies set to the order identified by id only if its stored
	// version matches version, bumping the version by one. It returns the
	// document after the update.
	Update(ctx context.Context, id primitive.ObjectID, version int64, set bson.M) (*domain.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type orderRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
	tracer trace.Tracer
}

func NewOrderRepository(db *mongo.Database, logger *zap.Logger) OrderRepository {
	return &orderRepo{
		coll:   db.Collection("orders"),
		logger: logger,
		tracer: otel.Tracer("order_repository"),
	}
}

func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("customer", order.Customer),
		attribute.Int("items_count", len(order.Items)),
	)

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		span.RecordError(err)

		mylogger.Error(
			ctx,
			r.logger,
			"Failed to insert order",
			zap.Error(err),
		)

		return fmt.Errorf("failed to insert order: %w", err)
	}

	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *orderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.FindByID")
	defer span.End()

	span.SetAttributes(
		attribute.String("order_id", id.Hex()),
	)

	var order domain.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}

		span.RecordError(err)

		mylogger.Error(
			ctx,
			r.logger,
			"Failed to find order",
			zap.String("order_id", id.Hex()),
			zap.Error(err),
		)

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return &order, nil
}

func (r *orderRepo) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.List")
	defer span.End()

	query := bson.M{}
	if filter.Customer != "" {
		query["customer"] = filter.Customer
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		span.RecordError(err)

		mylogger.Error(
			ctx,
			r.logger,
			"Failed to query orders",
			zap.Error(err),
		)

		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		span.RecordError(err)

		mylogger.Error(
			ctx,
			r.logger,
			"Failed to decode orders",
			zap.Error(err),
		)

		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

func (r *orderRepo) Update(ctx context.Context, id primitive.ObjectID, version int64, set bson.M) (*domain.Order, error) {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.Update")
	defer span.End()

	span.SetAttributes(
		attribute.String("order_id", id.Hex()),
		attribute.Int64("version", version),
	)

	set["updatedAt"] = time.Now().UTC()

	update := bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Order
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id, "version": version}, update, opts).
		Decode(&updated)
	if err == nil {
		return &updated, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		span.RecordError(err)

		mylogger.Error(
			ctx,
			r.logger,
			"Failed to update order",
			zap.String("order_id", id.Hex()),
			zap.Error(err),
		)

		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	// No match on (id, version): tell a missing order apart from a
	// concurrent writer bumping the version between read and write.
	count, countErr := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if countErr != nil {
		span.RecordError(countErr)
		return nil, fmt.Errorf("failed to check order existence: %w", countErr)
	}

	if count > 0 {
		mylogger.Warn(
			ctx,
			r.logger,
			"Order version conflict",
			zap.String("order_id", id.Hex()),
			zap.Int64("expected_version", version),
		)

		return nil, ErrOrderVersionConflict
	}

	return nil, ErrOrderNotFound
}

func (r *orderRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := r.tracer.Start(ctx, "OrderRepository.Delete")
	defer span.End()

	span.SetAttributes(
		attribute.String("order_id", id.Hex()),
	)

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		span.RecordError(err)

		mylogger.Error(
			ctx,
			r.logger,
			"Failed to delete order",
			zap.String("order_id", id.Hex()),
			zap.Error(err),
		)

		return fmt.Errorf("failed to delete order: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrOrderNotFound
	}

	return nil
}
