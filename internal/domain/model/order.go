package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order建立後不再變動, cart轉單時一次寫入
type Order struct {
	OrderID         uint            `gorm:"primaryKey" json:"order_id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	OrderNumber     string          `gorm:"not null;type:varchar(20);uniqueIndex" json:"order_number"`
	Status          string          `gorm:"not null;type:varchar(20);default:processing" json:"status"`
	Amount          decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	ShippingAddress string          `gorm:"type:varchar(255)" json:"shipping_address"`
	BillingAddress  string          `gorm:"type:varchar(255)" json:"billing_address"`
	OrderDate       time.Time       `gorm:"not null" json:"order_date"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	BaseModel
}

// Price為轉單當下的商品單價快照, 與Product後續調價脫鉤
type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey" json:"order_item_id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   uint            `gorm:"not null" json:"product_id"`
	Product     Product         `gorm:"foreignKey:ProductID" json:"product"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	BaseModel
}
