package dto

import (
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/shopspring/decimal"
)

type CreateOrderDTO struct {
	ShippingAddress string `json:"shipping_address"`
	BillingAddress  string `json:"billing_address"`
}

type OrderItemDTO struct {
	OrderItemID uint            `json:"order_item_id"`
	Product     ProductBriefDTO `json:"product"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type OrderDTO struct {
	OrderID         uint            `json:"order_id"`
	OrderNumber     string          `json:"order_number"`
	Status          string          `json:"status"`
	Amount          decimal.Decimal `json:"amount"`
	ShippingAddress string          `json:"shipping_address"`
	BillingAddress  string          `json:"billing_address"`
	OrderDate       time.Time       `json:"order_date"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []OrderItemDTO  `json:"items"`
}

func ConvertOrderToDTO(order *model.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemDTO{
			OrderItemID: item.OrderItemID,
			Product:     ConvertProductToBriefDTO(&item.Product),
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return OrderDTO{
		OrderID:         order.OrderID,
		OrderNumber:     order.OrderNumber,
		Status:          order.Status,
		Amount:          order.Amount,
		ShippingAddress: order.ShippingAddress,
		BillingAddress:  order.BillingAddress,
		OrderDate:       order.OrderDate,
		CreatedAt:       order.CreatedAt,
		Items:           items,
	}
}

func ConvertOrdersToDTO(orders []model.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, ConvertOrderToDTO(&orders[i]))
	}
	return dtos
}
