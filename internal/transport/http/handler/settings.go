package handler

import (
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/service"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	settings service.SettingsService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewSettingsHandler(settings service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		validate: validator.New(),
		logger:   logger,
	}
}

type SettingsInput struct {
	SiteNameAr string            `json:"siteNameAr" validate:"required,min=2,max=200"`
	SiteNameEn string            `json:"siteNameEn" validate:"max=200"`
	Phone      string            `json:"phone" validate:"max=30"`
	Email      string            `json:"email" validate:"omitempty,email"`
	Address    string            `json:"address" validate:"max=500"`
	Socials    map[string]string `json:"socials"`
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settings.Get(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	input := new(SettingsInput)
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

	settings := &domain.SiteSettings{
		SiteNameAr: input.SiteNameAr,
		SiteNameEn: input.SiteNameEn,
		Phone:      input.Phone,
		Email:      input.Email,
		Address:    input.Address,
		Socials:    input.Socials,
	}

	updated, err := h.settings.Update(c.UserContext(), settings)
	if err != nil {
		h.logger.Warn("update settings failed", zap.Error(err))
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
