package dto

import (
	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
)

// AddToCartDTO quantity省略時預設為1
type AddToCartDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity"`
}

// UpdateCartItemDTO quantity省略時預設為1 (保留item)
// 要移除item必須明確送quantity <= 0
type UpdateCartItemDTO struct {
	Quantity *int `json:"quantity"`
}

type CartItemDTO struct {
	CartItemID uint            `json:"cart_item_id"`
	Product    ProductBriefDTO `json:"product"`
	Quantity   int             `json:"quantity"`
}

type CartDTO struct {
	CartID uint          `json:"cart_id"`
	UserID uint          `json:"user_id"`
	Items  []CartItemDTO `json:"items"`
}

func ConvertCartToDTO(cart *model.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		items = append(items, CartItemDTO{
			CartItemID: item.CartItemID,
			Product:    ConvertProductToBriefDTO(&item.Product),
			Quantity:   item.Quantity,
		})
	}
	return CartDTO{
		CartID: cart.CartID,
		UserID: cart.UserID,
		Items:  items,
	}
}
