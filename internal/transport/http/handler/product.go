package handler

import (
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/service"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/mylogger"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProductHandler struct {
	products service.ProductService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewProductHandler(products service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		validate: validator.New(),
		logger:   logger,
	}
}

type ProductInput struct {
	NameAr        string  `json:"nameAr" validate:"required,min=2,max=200"`
	NameEn        string  `json:"nameEn" validate:"max=200"`
	DescriptionAr string  `json:"descriptionAr" validate:"max=2000"`
	DescriptionEn string  `json:"descriptionEn" validate:"max=2000"`
	Price         float64 `json:"price" validate:"gte=0"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl" validate:"omitempty,url"`
	InStock       bool    `json:"inStock"`
}

func (in *ProductInput) toDomain() *domain.Product {
	return &domain.Product{
		NameAr:        in.NameAr,
		NameEn:        in.NameEn,
		DescriptionAr: in.DescriptionAr,
		DescriptionEn: in.DescriptionEn,
		Price:         in.Price,
		Category:      in.Category,
		ImageURL:      in.ImageURL,
		InStock:       in.InStock,
	}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	input := new(ProductInput)
	if err := c.BodyParser(input); err != nil {
		mylogger.Warn(ctx, h.logger, "failed to parse create product body", zap.Error(err))

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

	created, err := h.products.Create(ctx, input.toDomain())
	if err != nil {
		return errorJSON(c, err)
	}

	mylogger.Info(ctx, h.logger, "product created", zap.String("product_id", created.ID.Hex()))

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	product, err := h.products.FindByID(c.UserContext(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List(c.UserContext(), c.Query("category"))
	if err != nil {
		mylogger.Warn(c.UserContext(), h.logger, "list products failed", zap.Error(err))
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	input := new(ProductInput)
	if err := c.BodyParser(input); err != nil {
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

	updated, err := h.products.Update(ctx, id, input.toDomain())
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	if err := h.products.Delete(c.UserContext(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "product deleted",
	})
}
