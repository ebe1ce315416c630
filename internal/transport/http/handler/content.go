package handler

import (
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/service"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ContentHandler serves the marketing content: offered services and portfolio.
type ContentHandler struct {
	content  service.ContentService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewContentHandler(content service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		content:  content,
		validate: validator.New(),
		logger:   logger,
	}
}

type ServiceInput struct {
	TitleAr       string `json:"titleAr" validate:"required,min=2,max=200"`
	TitleEn       string `json:"titleEn" validate:"max=200"`
	DescriptionAr string `json:"descriptionAr" validate:"max=2000"`
	DescriptionEn string `json:"descriptionEn" validate:"max=2000"`
	Icon          string `json:"icon"`
	SortOrder     int32  `json:"sortOrder" validate:"gte=0"`
}

type PortfolioInput struct {
	TitleAr       string `json:"titleAr" validate:"required,min=2,max=200"`
	TitleEn       string `json:"titleEn" validate:"max=200"`
	DescriptionAr string `json:"descriptionAr" validate:"max=2000"`
	DescriptionEn string `json:"descriptionEn" validate:"max=2000"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,url"`
	Category      string `json:"category"`
}

// parseBody decodes and validates the request body. When it returns false
// the 400 response has already been written.
func (h *ContentHandler) parseBody(c *fiber.Ctx, input any) (bool, error) {
	if err := c.BodyParser(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": utils.FormatValidationError(err),
		})
	}

	return true, nil
}

func (h *ContentHandler) CreateService(c *fiber.Ctx) error {
	input := new(ServiceInput)
	if ok, err := h.parseBody(c, input); !ok {
		return err
	}

	created, err := h.content.CreateService(c.UserContext(), serviceToDomain(input))
	if err != nil {
		h.logger.Warn("create service failed", zap.Error(err))
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ContentHandler) GetService(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid service id"})
	}

	svc, err := h.content.GetService(c.UserContext(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(svc)
}

func (h *ContentHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.content.ListServices(c.UserContext())
	if err != nil {
		h.logger.Warn("list services failed", zap.Error(err))
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(services)
}

func (h *ContentHandler) UpdateService(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid service id"})
	}

	input := new(ServiceInput)
	if ok, err := h.parseBody(c, input); !ok {
		return err
	}

	updated, err := h.content.UpdateService(c.UserContext(), id, serviceToDomain(input))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ContentHandler) DeleteService(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid service id"})
	}

	if err := h.content.DeleteService(c.UserContext(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "service deleted"})
}

func (h *ContentHandler) CreatePortfolioItem(c *fiber.Ctx) error {
	input := new(PortfolioInput)
	if ok, err := h.parseBody(c, input); !ok {
		return err
	}

	created, err := h.content.CreatePortfolioItem(c.UserContext(), portfolioToDomain(input))
	if err != nil {
		h.logger.Warn("create portfolio item failed", zap.Error(err))
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ContentHandler) GetPortfolioItem(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid portfolio id"})
	}

	item, err := h.content.GetPortfolioItem(c.UserContext(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *ContentHandler) ListPortfolio(c *fiber.Ctx) error {
	items, err := h.content.ListPortfolio(c.UserContext(), c.Query("category"))
	if err != nil {
		h.logger.Warn("list portfolio failed", zap.Error(err))
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *ContentHandler) UpdatePortfolioItem(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid portfolio id"})
	}

	input := new(PortfolioInput)
	if ok, err := h.parseBody(c, input); !ok {
		return err
	}

	updated, err := h.content.UpdatePortfolioItem(c.UserContext(), id, portfolioToDomain(input))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ContentHandler) DeletePortfolioItem(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid portfolio id"})
	}

	if err := h.content.DeletePortfolioItem(c.UserContext(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "portfolio item deleted"})
}

func serviceToDomain(in *ServiceInput) *domain.Service {
	return &domain.Service{
		TitleAr:       in.TitleAr,
		TitleEn:       in.TitleEn,
		DescriptionAr: in.DescriptionAr,
		DescriptionEn: in.DescriptionEn,
		Icon:          in.Icon,
		SortOrder:     in.SortOrder,
	}
}

func portfolioToDomain(in *PortfolioInput) *domain.PortfolioItem {
	return &domain.PortfolioItem{
		TitleAr:       in.TitleAr,
		TitleEn:       in.TitleEn,
		DescriptionAr: in.DescriptionAr,
		DescriptionEn: in.DescriptionEn,
		ImageURL:      in.ImageURL,
		Category:      in.Category,
	}
}
