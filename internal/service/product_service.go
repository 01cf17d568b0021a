package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"gorm.io/gorm"
)

type IProductService interface {
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]model.Product, error)
	GetProductsPaginated(ctx context.Context, page, pageSize int) ([]model.Product, int64, error)
	CreateProduct(ctx context.Context, product *model.Product) error
}

type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (p *ProductService) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := p.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (p *ProductService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return p.productRepo.GetAllProducts(ctx)
}

func (p *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return p.productRepo.GetProductsByCategory(ctx, category)
}

func (p *ProductService) SearchProducts(ctx context.Context, keyword string) ([]model.Product, error) {
	return p.productRepo.SearchProducts(ctx, keyword)
}

func (p *ProductService) GetProductsPaginated(ctx context.Context, page, pageSize int) ([]model.Product, int64, error) {
	return p.productRepo.GetProductsPaginated(ctx, page, pageSize)
}

func (p *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	return p.productRepo.CreateProduct(ctx, product)
}

var _ IProductService = (*ProductService)(nil)
