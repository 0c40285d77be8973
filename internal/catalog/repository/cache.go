package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/pkg/logger"
)

const productCacheTTL = 5 * time.Minute

// CachedProductRepository is a read-through cache over a ProductRepository.
// Single-product reads are served from Redis when possible; every write
// invalidates the cached entry. Cache failures fall back to the database.
type CachedProductRepository struct {
	next  domain.ProductRepository
	redis *redis.Client
}

func NewCachedProductRepository(next domain.ProductRepository, redisClient *redis.Client) *CachedProductRepository {
	return &CachedProductRepository{next: next, redis: redisClient}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (r *CachedProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	key := productCacheKey(id)

	if data, err := r.redis.Get(ctx, key).Bytes(); err == nil {
		var product domain.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
		r.redis.Del(ctx, key)
	}

	product, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(product); err == nil {
		if err := r.redis.Set(ctx, key, data, productCacheTTL).Err(); err != nil {
			logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to cache product")
		}
	}
	return product, nil
}

func (r *CachedProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.next.Create(ctx, product)
}

func (r *CachedProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return r.next.FindBySKU(ctx, sku)
}

func (r *CachedProductRepository) FindByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]domain.Product, error) {
	return r.next.FindByCategory(ctx, categoryID, limit, offset)
}

func (r *CachedProductRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	return r.next.FindAll(ctx, limit, offset)
}

func (r *CachedProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := r.next.Update(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx, product.ID)
	return nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, id uint) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedProductRepository) UpdatePrice(ctx context.Context, id uint, newPrice decimal.Decimal) (decimal.Decimal, error) {
	oldPrice, err := r.next.UpdatePrice(ctx, id, newPrice)
	if err != nil {
		return decimal.Zero, err
	}
	r.invalidate(ctx, id)
	return oldPrice, nil
}

func (r *CachedProductRepository) invalidate(ctx context.Context, id uint) {
	if err := r.redis.Del(ctx, productCacheKey(id)).Err(); err != nil {
		logger.Warn(ctx).Err(err).Uint("product_id", id).Msg("Failed to invalidate product cache")
	}
}
