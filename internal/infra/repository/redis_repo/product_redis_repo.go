package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type ProductRepoError error

var ErrProductCacheMiss ProductRepoError = errors.New("product not in cache")

// IProductRedisRepository 定義 Redis 商品快取操作的介面
type IProductRedisRepository interface {
	// GetProduct 取得快取商品, 未命中回傳ErrProductCacheMiss
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)

	// SetProduct 寫入快取商品
	SetProduct(ctx context.Context, product *model.Product) error

	// DeleteProduct 移除快取商品
	DeleteProduct(ctx context.Context, productID uint) error
}

/*
redis 只當作catalog讀取的快取, 不是真相來源
結構: product:{id} -> 商品JSON, 帶TTL
*/
type ProductRedisRepo struct {
	productCache *redis.Client
	ttl          time.Duration
}

func NewProductRedisRepo(productCache *redis.Client, ttl time.Duration) *ProductRedisRepo {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ProductRedisRepo{productCache: productCache, ttl: ttl}
}

func generateProductKey(productID uint) string {
	return fmt.Sprintf("product:%d", productID)
}

func (s *ProductRedisRepo) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	val, err := s.productCache.Get(ctx, generateProductKey(productID)).Result()
	if err == redis.Nil {
		return nil, ErrProductCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product cache: %w", err)
	}

	var product model.Product
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return nil, fmt.Errorf("invalid product cache for %d: %w", productID, err)
	}
	return &product, nil
}

func (s *ProductRedisRepo) SetProduct(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return s.productCache.Set(ctx, generateProductKey(product.ProductID), data, s.ttl).Err()
}

func (s *ProductRedisRepo) DeleteProduct(ctx context.Context, productID uint) error {
	return s.productCache.Del(ctx, generateProductKey(productID)).Err()
}

var _ IProductRedisRepository = (*ProductRedisRepo)(nil)
