package redis_decorator

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
)

/*
cache aside: 讀取先走redis, 未命中回源db再回填
快取只影響延遲不影響正確性, redis故障時直接走db
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	redis redis_repo.IProductRedisRepository
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, redis redis_repo.IProductRedisRepository) db.IProductRepository {
	return &CacheAsideProductRepo{IProductRepository: dbRepo, redis: redis}
}

func (p *CacheAsideProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	cached, err := p.redis.GetProduct(ctx, productID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis_repo.ErrProductCacheMiss) {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache read failed")
	}

	product, err := p.IProductRepository.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := p.redis.SetProduct(ctx, product); err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache fill failed")
	}
	return product, nil
}

// UpdateProduct 寫db後讓快取失效, 下次讀取回填
func (p *CacheAsideProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := p.IProductRepository.UpdateProduct(ctx, product); err != nil {
		return err
	}

	if err := p.redis.DeleteProduct(ctx, product.ProductID); err != nil {
		log.Warn().Err(err).Uint("product_id", product.ProductID).Msg("product cache invalidate failed")
	}
	return nil
}
