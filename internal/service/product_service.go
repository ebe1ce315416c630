package service

import (
	"context"
	"errors"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProductService interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	List(ctx context.Context, category string) ([]domain.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type productService struct {
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *productService) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("error creating product", zap.Error(err))
		return nil, err
	}

	return product, nil
}

func (s *productService) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *productService) List(ctx context.Context, category string) ([]domain.Product, error) {
	return s.productRepo.List(ctx, category)
}

func (s *productService) Update(ctx context.Context, id primitive.ObjectID, product *domain.Product) (*domain.Product, error) {
	set := bson.M{
		"nameAr":        product.NameAr,
		"nameEn":        product.NameEn,
		"descriptionAr": product.DescriptionAr,
		"descriptionEn": product.DescriptionEn,
		"price":         product.Price,
		"category":      product.Category,
		"imageUrl":      product.ImageURL,
		"inStock":       product.InStock,
	}

	updated, err := s.productRepo.Update(ctx, id, set)
	if err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			s.logger.Error("error updating product", zap.String("product_id", id.Hex()), zap.Error(err))
		}
		return nil, err
	}

	return updated, nil
}

func (s *productService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.productRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			s.logger.Warn("product not found", zap.String("product_id", id.Hex()))
			return err
		}

		s.logger.Error("error deleting product", zap.Error(err))
		return err
	}

	return nil
}
