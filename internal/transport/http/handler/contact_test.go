package handler

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubContactService struct {
	lastSubmit *domain.ContactMessage

	submitErr   error
	markReadErr error
	deleteErr   error

	messages []domain.ContactMessage
}

func (s *stubContactService) Submit(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	received := *msg
	s.lastSubmit = &received
	if s.submitErr != nil {
		return nil, s.submitErr
	}

	msg.ID = primitive.NewObjectID()
	return msg, nil
}

func (s *stubContactService) List(_ context.Context) ([]domain.ContactMessage, error) {
	return s.messages, nil
}

func (s *stubContactService) MarkRead(_ context.Context, _ primitive.ObjectID) error {
	return s.markReadErr
}

func (s *stubContactService) Delete(_ context.Context, _ primitive.ObjectID) error {
	return s.deleteErr
}

func newContactTestApp(svc *stubContactService) *fiber.App {
	app := fiber.New()
	h := NewContactHandler(svc, zap.NewNop())

	app.Post("/contacts", h.Submit)
	app.Get("/contacts", h.List)
	app.Put("/contacts/:id/read", h.MarkRead)
	app.Delete("/contacts/:id", h.Delete)

	return app
}

func TestSubmitContactEndpoint_PhoneOnly(t *testing.T) {
	svc := &stubContactService{}
	app := newContactTestApp(svc)

	payload := map[string]any{
		"name":    "أحمد",
		"phone":   "0501234567",
		"message": "أريد عرض سعر للوحة إعلانية",
	}

	req := httptest.NewRequest("POST", "/contacts", jsonBody(t, payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NotNil(t, svc.lastSubmit)
	assert.Equal(t, "0501234567", svc.lastSubmit.Phone)
	assert.Empty(t, svc.lastSubmit.Email)
}

func TestSubmitContactEndpoint_EmailOnly(t *testing.T) {
	app := newContactTestApp(&stubContactService{})

	payload := map[string]any{
		"name":    "سارة",
		"email":   "sara@example.com",
		"message": "استفسار عن خدمات التصميم",
	}

	req := httptest.NewRequest("POST", "/contacts", jsonBody(t, payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestSubmitContactEndpoint_NoContactChannel(t *testing.T) {
	app := newContactTestApp(&stubContactService{})

	// Neither email nor phone: no way to reach the sender back.
	payload := map[string]any{
		"name":    "أحمد",
		"message": "رسالة بدون وسيلة تواصل",
	}

	req := httptest.NewRequest("POST", "/contacts", jsonBody(t, payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, "validation failed", body["error"])
}

func TestSubmitContactEndpoint_MalformedEmail(t *testing.T) {
	app := newContactTestApp(&stubContactService{})

	payload := map[string]any{
		"name":    "أحمد",
		"email":   "not-an-email",
		"message": "استفسار",
	}

	req := httptest.NewRequest("POST", "/contacts", jsonBody(t, payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitContactEndpoint_MessageTooShort(t *testing.T) {
	app := newContactTestApp(&stubContactService{})

	payload := map[string]any{
		"name":    "أحمد",
		"phone":   "0501234567",
		"message": "هلا",
	}

	req := httptest.NewRequest("POST", "/contacts", jsonBody(t, payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMarkContactReadEndpoint(t *testing.T) {
	app := newContactTestApp(&stubContactService{})

	req := httptest.NewRequest("PUT", "/contacts/"+primitive.NewObjectID().Hex()+"/read", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, "marked as read", body["message"])
}

func TestMarkContactReadEndpoint_NotFound(t *testing.T) {
	app := newContactTestApp(&stubContactService{markReadErr: repository.ErrContactNotFound})

	req := httptest.NewRequest("PUT", "/contacts/"+primitive.NewObjectID().Hex()+"/read", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMarkContactReadEndpoint_InvalidID(t *testing.T) {
	app := newContactTestApp(&stubContactService{})

	req := httptest.NewRequest("PUT", "/contacts/not-a-hex-id/read", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
