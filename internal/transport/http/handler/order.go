package handler

import (
	"errors"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/service"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/mylogger"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders   service.OrderService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewOrderHandler(orders service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		validate: validator.New(),
		logger:   logger,
	}
}

type OrderItemInput struct {
	Product  string  `json:"product" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int32   `json:"quantity" validate:"required,gte=1"`
}

type ShippingInfoInput struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// CreateOrderInput deliberately has no total field: the server computes the
// total from the items and a client-supplied value is dropped at parse time.
type CreateOrderInput struct {
	Customer      string             `json:"customer" validate:"required"`
	Items         []OrderItemInput   `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string             `json:"paymentMethod" validate:"required,oneof=card cash"`
	ShippingInfo  *ShippingInfoInput `json:"shippingInfo"`
}

type UpdateOrderInput struct {
	Customer      *string            `json:"customer" validate:"omitempty,min=1"`
	Items         *[]OrderItemInput  `json:"items" validate:"omitempty,min=1,dive"`
	PaymentMethod *string            `json:"paymentMethod" validate:"omitempty,oneof=card cash"`
	Status        *string            `json:"status" validate:"omitempty,oneof=new in_progress completed"`
	ShippingInfo  *ShippingInfoInput `json:"shippingInfo"`
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	input := new(CreateOrderInput)
	if err := c.BodyParser(input); err != nil {
		mylogger.Warn(ctx, h.logger, "failed to parse create order body", zap.Error(err))

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": utils.FormatValidationError(err),
		})
	}

	items, err := toDomainItems(input.Items)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	order := &domain.Order{
		Customer:      input.Customer,
		Items:         items,
		PaymentMethod: domain.PaymentMethod(input.PaymentMethod),
		ShippingInfo:  toDomainShipping(input.ShippingInfo),
	}

	created, err := h.orders.Create(ctx, order)
	if err != nil {
		mylogger.Warn(ctx, h.logger, "create order failed", zap.Error(err))
		return errorJSON(c, err)
	}

	mylogger.Info(
		ctx,
		h.logger,
		"order created",
		zap.String("order_id", created.ID.Hex()),
		zap.Float64("total", created.Total),
	)

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid order id",
		})
	}

	input := new(UpdateOrderInput)
	if err := c.BodyParser(input); err != nil {
		mylogger.Warn(ctx, h.logger, "failed to parse update order body", zap.Error(err))

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": utils.FormatValidationError(err),
		})
	}

	patch := domain.OrderPatch{
		Customer:     input.Customer,
		ShippingInfo: toDomainShipping(input.ShippingInfo),
	}

	if input.PaymentMethod != nil {
		method := domain.PaymentMethod(*input.PaymentMethod)
		patch.PaymentMethod = &method
	}

	if input.Status != nil {
		status := domain.OrderStatus(*input.Status)
		patch.Status = &status
	}

	if input.Items != nil {
		items, err := toDomainItems(*input.Items)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		patch.Items = &items
	}

	updated, err := h.orders.Update(ctx, id, patch)
	if err != nil {
		mylogger.Warn(
			ctx,
			h.logger,
			"update order failed",
			zap.String("order_id", id.Hex()),
			zap.Error(err),
		)

		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid order id",
		})
	}

	order, err := h.orders.Get(c.UserContext(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	filter := domain.OrderFilter{
		Customer: c.Query("customer"),
		Status:   domain.OrderStatus(c.Query("status")),
	}

	if filter.Status != "" && !filter.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown order status",
		})
	}

	orders, err := h.orders.List(c.UserContext(), filter)
	if err != nil {
		mylogger.Warn(c.UserContext(), h.logger, "list orders failed", zap.Error(err))
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid order id",
		})
	}

	if err := h.orders.Delete(ctx, id); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "order deleted",
	})
}

func toDomainItems(inputs []OrderItemInput) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		productID, err := primitive.ObjectIDFromHex(in.Product)
		if err != nil {
			return nil, errors.New("invalid product id: " + in.Product)
		}

		items = append(items, domain.OrderItem{
			ProductID: productID,
			Name:      in.Name,
			Price:     in.Price,
			Quantity:  in.Quantity,
		})
	}

	return items, nil
}

func toDomainShipping(in *ShippingInfoInput) *domain.ShippingInfo {
	if in == nil {
		return nil
	}

	return &domain.ShippingInfo{
		Address: in.Address,
		City:    in.City,
		Phone:   in.Phone,
		Notes:   in.Notes,
	}
}
