package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   uint            `gorm:"primaryKey" json:"product_id"`
	Code        string          `gorm:"not null;type:varchar(100);unique" json:"code"`
	Name        string          `gorm:"not null;type:varchar(100)" json:"name"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Stock       uint            `gorm:"not null;type:int" json:"stock"`
	Category    string          `gorm:"not null;type:varchar(50)" json:"category"`
	Description string          `gorm:"not null;type:text" json:"description"`
	ImageUrl    string          `gorm:"type:varchar(255)" json:"image_url"`
	BaseModel
}
