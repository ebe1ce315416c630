package service

import (
	"context"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ContactService interface {
	Submit(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type contactService struct {
	contactRepo repository.ContactRepository
	logger      *zap.Logger
}

func NewContactService(contactRepo repository.ContactRepository, logger *zap.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (s *contactService) Submit(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		s.logger.Error("error saving contact message", zap.Error(err))
		return nil, err
	}

	s.logger.Info("contact message received", zap.String("message_id", msg.ID.Hex()))
	return msg, nil
}

func (s *contactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}

func (s *contactService) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return s.contactRepo.MarkRead(ctx, id)
}

func (s *contactService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.contactRepo.Delete(ctx, id)
}

type CustomerService interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, id primitive.ObjectID, customer *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *zap.Logger
}

func NewCustomerService(customerRepo repository.CustomerRepository, logger *zap.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *customerService) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error("error creating customer", zap.Error(err))
		return nil, err
	}

	return customer, nil
}

func (s *customerService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) Update(ctx context.Context, id primitive.ObjectID, customer *domain.Customer) (*domain.Customer, error) {
	set := bson.M{
		"name":  customer.Name,
		"email": customer.Email,
		"phone": customer.Phone,
		"note":  customer.Note,
	}

	return s.customerRepo.Update(ctx, id, set)
}

func (s *customerService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.customerRepo.Delete(ctx, id)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       *zap.Logger
}

func NewSettingsService(settingsRepo repository.SettingsRepository, logger *zap.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (s *settingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		s.logger.Error("error saving settings", zap.Error(err))
		return nil, err
	}

	return settings, nil
}
