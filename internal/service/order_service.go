package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/repository"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/mylogger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type OrderService interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.OrderPatch) (*domain.Order, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.OrderView, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *zap.Logger
	tracer      trace.Tracer

	// strictPricing re-fetches each referenced product on write and rejects
	// items whose submitted price differs from the catalog price. Off by
	// default: the captured price is a deliberate snapshot.
	strictPricing bool
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger *zap.Logger,
	strictPricing bool,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		logger:        logger,
		tracer:        otel.Tracer("order_service"),
		strictPricing: strictPricing,
	}
}

func (s *orderService) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Create")
	defer span.End()

	span.SetAttributes(
		attribute.Int("items_count", len(order.Items)),
	)

	if len(order.Items) == 0 {
		return nil, ErrNoItems
	}

	if !order.PaymentMethod.Valid() {
		return nil, ErrInvalidPayment
	}

	if s.strictPricing {
		if err := s.verifyPrices(ctx, order.Items); err != nil {
			return nil, err
		}
	}

	// The total is always recomputed here; whatever the client submitted
	// is already discarded at the transport boundary.
	order.CalculateTotal()
	order.Status = domain.OrderStatusNew
	order.Date = time.Now().UTC().Format("2006-01-02")
	order.Version = 1

	if err := s.orderRepo.Create(ctx, order); err != nil {
		mylogger.Error(
			ctx,
			s.logger,
			"Failed to create order",
			zap.String("customer", order.Customer),
			zap.Error(err),
		)

		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	mylogger.Info(
		ctx,
		s.logger,
		"Order created",
		zap.String("order_id", order.ID.Hex()),
		zap.Float64("total", order.Total),
	)

	return order, nil
}

func (s *orderService) Update(ctx context.Context, id primitive.ObjectID, patch domain.OrderPatch) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Update")
	defer span.End()

	span.SetAttributes(
		attribute.String("order_id", id.Hex()),
	)

	existing, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}

	if patch.Customer != nil {
		set["customer"] = *patch.Customer
	}
	if patch.ShippingInfo != nil {
		set["shippingInfo"] = *patch.ShippingInfo
	}
	if patch.PaymentMethod != nil {
		if !patch.PaymentMethod.Valid() {
			return nil, ErrInvalidPayment
		}
		set["paymentMethod"] = *patch.PaymentMethod
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		set["status"] = *patch.Status
	}
	if patch.Items != nil {
		items := *patch.Items

		if s.strictPricing {
			if err := s.verifyPrices(ctx, items); err != nil {
				return nil, err
			}
		}

		// The total only moves together with the items.
		set["items"] = items
		set["total"] = domain.LineItemTotal(items)
	}

	updated, err := s.orderRepo.Update(ctx, id, existing.Version, set)
	if err != nil {
		if errors.Is(err, repository.ErrOrderVersionConflict) {
			mylogger.Warn(
				ctx,
				s.logger,
				"Concurrent order update rejected",
				zap.String("order_id", id.Hex()),
			)

			return nil, err
		}

		mylogger.Error(
			ctx,
			s.logger,
			"Failed to update order",
			zap.String("order_id", id.Hex()),
			zap.Error(err),
		)

		return nil, err
	}

	return updated, nil
}

func (s *orderService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func (s *orderService) List(ctx context.Context, filter domain.OrderFilter) ([]domain.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.List")
	defer span.End()

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, orders)
	if err != nil {
		// Product resolution is display sugar; a failed lookup must not
		// take the whole listing down.
		mylogger.Warn(
			ctx,
			s.logger,
			"Failed to resolve products for order listing",
			zap.Error(err),
		)

		products = nil
	}

	views := make([]domain.OrderView, len(orders))
	for i, order := range orders {
		views[i] = domain.NewOrderView(order, products)
	}

	return views, nil
}

func (s *orderService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.Delete")
	defer span.End()

	span.SetAttributes(
		attribute.String("order_id", id.Hex()),
	)

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrOrderNotFound) {
			mylogger.Error(
				ctx,
				s.logger,
				"Failed to delete order",
				zap.String("order_id", id.Hex()),
				zap.Error(err),
			)
		}

		return err
	}

	mylogger.Info(
		ctx,
		s.logger,
		"Order deleted",
		zap.String("order_id", id.Hex()),
	)

	return nil
}

func (s *orderService) verifyPrices(ctx context.Context, items []domain.OrderItem) error {
	for _, item := range items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return ErrUnknownProduct
			}
			return err
		}

		if product.Price != item.Price {
			mylogger.Warn(
				ctx,
				s.logger,
				"Submitted item price diverges from catalog",
				zap.String("product_id", item.ProductID.Hex()),
				zap.Float64("submitted", item.Price),
				zap.Float64("catalog", product.Price),
			)

			return ErrPriceMismatch
		}
	}

	return nil
}

func (s *orderService) resolveProducts(ctx context.Context, orders []domain.Order) (map[string]*domain.Product, error) {
	seen := make(map[string]struct{})
	var ids []primitive.ObjectID
	for _, order := range orders {
		for _, item := range order.Items {
			key := item.ProductID.Hex()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID.Hex()] = &products[i]
	}

	return byID, nil
}
