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

type ContactHandler struct {
	contacts service.ContactService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewContactHandler(contacts service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		validate: validator.New(),
		logger:   logger,
	}
}

// ContactInput requires at least one way to reach the sender back.
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"omitempty,email,required_without=Phone"`
	Phone   string `json:"phone" validate:"required_without=Email"`
	Message string `json:"message" validate:"required,min=5,max=5000"`
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	input := new(ContactInput)
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

	msg := &domain.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}

	created, err := h.contacts.Submit(c.UserContext(), msg)
	if err != nil {
		h.logger.Warn("contact submit failed", zap.Error(err))
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	messages, err := h.contacts.List(c.UserContext())
	if err != nil {
		h.logger.Warn("list contacts failed", zap.Error(err))
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid message id"})
	}

	if err := h.contacts.MarkRead(c.UserContext(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "marked as read"})
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid message id"})
	}

	if err := h.contacts.Delete(c.UserContext(), id); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "message deleted"})
}
