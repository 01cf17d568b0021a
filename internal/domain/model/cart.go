package model

import "time"

// 每個user只會有一個cart, 第一次存取時才建立
// 轉單後cart會被清空但不刪除
type Cart struct {
	CartID uint       `gorm:"primaryKey" json:"cart_id"`
	UserID uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	BaseModel
}

// 同一個cart同一個product只會有一列, 重複加入時合併數量
// cart item採硬刪除, 避免軟刪除殘留列卡住(cart_id, product_id)唯一索引
type CartItem struct {
	CartItemID uint      `gorm:"primaryKey" json:"cart_item_id"`
	CartID     uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"null" json:"updated_at"`
}
