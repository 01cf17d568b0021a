package db

import (
	"context"
	"fmt"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
)

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *ProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, productID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductRepo) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (s *ProductRepo) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Where("category = ?", category).Find(&products).Error
	return products, err
}

// SearchProducts 以名稱或描述模糊查詢
func (s *ProductRepo) SearchProducts(ctx context.Context, keyword string) ([]model.Product, error) {
	var products []model.Product
	pattern := fmt.Sprintf("%%%s%%", keyword)
	err := s.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Find(&products).Error
	return products, err
}

func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// 分頁查詢商品
func (s *ProductRepo) GetProductsPaginated(ctx context.Context, page, pageSize int) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	offset := (page - 1) * pageSize

	s.db.WithContext(ctx).Model(&model.Product{}).Count(&total)
	err := s.db.WithContext(ctx).Offset(offset).Limit(pageSize).Find(&products).Error

	return products, total, err
}
