package handler

import (
	"errors"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/repository"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/service"
	"github.com/gofiber/fiber/v2"
)

// statusFromError maps service and repository errors onto HTTP status codes.
// Anything unrecognized is a 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrServiceNotFound),
		errors.Is(err, repository.ErrPortfolioNotFound),
		errors.Is(err, repository.ErrContactNotFound),
		errors.Is(err, repository.ErrCustomerNotFound),
		errors.Is(err, repository.ErrSettingsNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, repository.ErrOrderVersionConflict):
		return fiber.StatusConflict

	case errors.Is(err, service.ErrNoItems),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrUnknownProduct),
		errors.Is(err, service.ErrPriceMismatch):
		return fiber.StatusBadRequest
	}

	return fiber.StatusInternalServerError
}

// errorJSON writes the uniform error body. Internal errors are masked with a
// generic message; the real cause stays in the server logs.
func errorJSON(c *fiber.Ctx, err error) error {
	status := statusFromError(err)

	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "internal server error"
	}

	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}
