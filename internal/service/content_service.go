package service

import (
	"context"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ContentService covers the marketing content collections: offered services
// and the portfolio showcase.
type ContentService interface {
	CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetService(ctx context.Context, id primitive.ObjectID) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	UpdateService(ctx context.Context, id primitive.ObjectID, svc *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, id primitive.ObjectID) error

	CreatePortfolioItem(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error)
	GetPortfolioItem(ctx context.Context, id primitive.ObjectID) (*domain.PortfolioItem, error)
	ListPortfolio(ctx context.Context, category string) ([]domain.PortfolioItem, error)
	UpdatePortfolioItem(ctx context.Context, id primitive.ObjectID, item *domain.PortfolioItem) (*domain.PortfolioItem, error)
	DeletePortfolioItem(ctx context.Context, id primitive.ObjectID) error
}

type contentService struct {
	serviceRepo   repository.ServiceRepository
	portfolioRepo repository.PortfolioRepository
	logger        *zap.Logger
}

func NewContentService(
	serviceRepo repository.ServiceRepository,
	portfolioRepo repository.PortfolioRepository,
	logger *zap.Logger,
) ContentService {
	return &contentService{
		serviceRepo:   serviceRepo,
		portfolioRepo: portfolioRepo,
		logger:        logger,
	}
}

func (s *contentService) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		s.logger.Error("error creating service entry", zap.Error(err))
		return nil, err
	}

	return svc, nil
}

func (s *contentService) GetService(ctx context.Context, id primitive.ObjectID) (*domain.Service, error) {
	return s.serviceRepo.FindByID(ctx, id)
}

func (s *contentService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.serviceRepo.List(ctx)
}

func (s *contentService) UpdateService(ctx context.Context, id primitive.ObjectID, svc *domain.Service) (*domain.Service, error) {
	set := bson.M{
		"titleAr":       svc.TitleAr,
		"titleEn":       svc.TitleEn,
		"descriptionAr": svc.DescriptionAr,
		"descriptionEn": svc.DescriptionEn,
		"icon":          svc.Icon,
		"sortOrder":     svc.SortOrder,
	}

	return s.serviceRepo.Update(ctx, id, set)
}

func (s *contentService) DeleteService(ctx context.Context, id primitive.ObjectID) error {
	return s.serviceRepo.Delete(ctx, id)
}

func (s *contentService) CreatePortfolioItem(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error) {
	if err := s.portfolioRepo.Create(ctx, item); err != nil {
		s.logger.Error("error creating portfolio item", zap.Error(err))
		return nil, err
	}

	return item, nil
}

func (s *contentService) GetPortfolioItem(ctx context.Context, id primitive.ObjectID) (*domain.PortfolioItem, error) {
	return s.portfolioRepo.FindByID(ctx, id)
}

func (s *contentService) ListPortfolio(ctx context.Context, category string) ([]domain.PortfolioItem, error) {
	return s.portfolioRepo.List(ctx, category)
}

func (s *contentService) UpdatePortfolioItem(ctx context.Context, id primitive.ObjectID, item *domain.PortfolioItem) (*domain.PortfolioItem, error) {
	set := bson.M{
		"titleAr":       item.TitleAr,
		"titleEn":       item.TitleEn,
		"descriptionAr": item.DescriptionAr,
		"descriptionEn": item.DescriptionEn,
		"imageUrl":      item.ImageURL,
		"category":      item.Category,
	}

	return s.portfolioRepo.Update(ctx, id, set)
}

func (s *contentService) DeletePortfolioItem(ctx context.Context, id primitive.ObjectID) error {
	return s.portfolioRepo.Delete(ctx, id)
}
