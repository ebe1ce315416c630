package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// cachedProductService caches get-by-id reads in Redis in front of another
// ProductService and invalidates on every write to the same product.
type cachedProductService struct {
	next        ProductService
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewCachedProductService(next ProductService, redisClient *redis.Client) ProductService {
	return &cachedProductService{
		next:        next,
		redisClient: redisClient,
		cacheTTL:    time.Minute * 10,
	}
}

func (s *cachedProductService) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return s.next.Create(ctx, product)
}

func (s *cachedProductService) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	key := productCacheKey(id)

	val, err := s.redisClient.Get(ctx, key).Result()
	if err == nil {
		var product domain.Product
		if err := json.Unmarshal([]byte(val), &product); err == nil {
			return &product, nil
		}
	}

	product, err := s.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(product); err == nil {
		s.redisClient.Set(ctx, key, data, s.cacheTTL)
	}

	return product, nil
}

func (s *cachedProductService) List(ctx context.Context, category string) ([]domain.Product, error) {
	return s.next.List(ctx, category)
}

func (s *cachedProductService) Update(ctx context.Context, id primitive.ObjectID, product *domain.Product) (*domain.Product, error) {
	updated, err := s.next.Update(ctx, id, product)
	if err != nil {
		return nil, err
	}

	s.redisClient.Del(ctx, productCacheKey(id))
	return updated, nil
}

func (s *cachedProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.next.Delete(ctx, id); err != nil {
		return err
	}

	s.redisClient.Del(ctx, productCacheKey(id))
	return nil
}

func productCacheKey(id primitive.ObjectID) string {
	return fmt.Sprintf("product:%s", id.Hex())
}
