package redis_repo

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func setupTestRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "password",
		DB:       1,
	})
}

type ProductRedisRepoTestSuite struct {
	suite.Suite
	productRepo *ProductRedisRepo
}

func (suite *ProductRedisRepoTestSuite) SetupTest() {
	rdb := setupTestRedis()
	rdb.FlushDB(context.Background())
	suite.productRepo = NewProductRedisRepo(rdb, 10*time.Minute)
}

func TestProductRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRedisRepoTestSuite))
}

func (suite *ProductRedisRepoTestSuite) TestSetGetProduct() {
	ctx := context.Background()
	product := &model.Product{
		ProductID: 1,
		Code:      "P-001",
		Name:      "test product",
		Price:     decimal.RequireFromString("10.00"),
		Stock:     100,
	}

	err := suite.productRepo.SetProduct(ctx, product)
	assert.NoError(suite.T(), err)

	cached, err := suite.productRepo.GetProduct(ctx, 1)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), product.ProductID, cached.ProductID)
	assert.Equal(suite.T(), product.Code, cached.Code)
	assert.True(suite.T(), product.Price.Equal(cached.Price))
}

func (suite *ProductRedisRepoTestSuite) TestGetProduct_CacheMiss() {
	cached, err := suite.productRepo.GetProduct(context.Background(), 99999)

	assert.ErrorIs(suite.T(), err, ErrProductCacheMiss)
	assert.Nil(suite.T(), cached)
}

func (suite *ProductRedisRepoTestSuite) TestDeleteProduct() {
	ctx := context.Background()
	product := &model.Product{
		ProductID: 2,
		Code:      "P-002",
		Name:      "test product",
		Price:     decimal.RequireFromString("5.00"),
	}

	err := suite.productRepo.SetProduct(ctx, product)
	assert.NoError(suite.T(), err)

	err = suite.productRepo.DeleteProduct(ctx, 2)
	assert.NoError(suite.T(), err)

	cached, err := suite.productRepo.GetProduct(ctx, 2)
	assert.ErrorIs(suite.T(), err, ErrProductCacheMiss)
	assert.Nil(suite.T(), cached)
}

// 刪除不存在的key不回傳錯誤
func (suite *ProductRedisRepoTestSuite) TestDeleteProduct_NotExist() {
	err := suite.productRepo.DeleteProduct(context.Background(), 99999)
	assert.NoError(suite.T(), err)
}
