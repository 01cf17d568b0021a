package dto

import (
	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ProductID   uint            `json:"product_id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       uint            `json:"stock"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	ImageUrl    string          `json:"image_url"`
}

// ProductBriefDTO 內嵌在cart/order item內的商品摘要
type ProductBriefDTO struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageUrl  string          `json:"image_url"`
}

func ConvertProductToDTO(p *model.Product) ProductDTO {
	return ProductDTO{
		ProductID:   p.ProductID,
		Code:        p.Code,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Description: p.Description,
		ImageUrl:    p.ImageUrl,
	}
}

func ConvertProductToBriefDTO(p *model.Product) ProductBriefDTO {
	return ProductBriefDTO{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.Price,
		ImageUrl:  p.ImageUrl,
	}
}

func ConvertProductsToDTO(products []model.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, ConvertProductToDTO(&products[i]))
	}
	return dtos
}
