package db

import (
	"context"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

// GetOrCreateCart 原子性find-or-insert
// user_id有唯一索引, 兩個併發請求不會建出兩個cart, 輸的那邊DoNothing後重新查詢
func (s *CartRepo) GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error) {
	cart := model.Cart{UserID: userID}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error
	if err != nil {
		return nil, err
	}

	return s.GetCartByUserID(ctx, userID)
}

// GetCartByUserID 查詢cart含items與商品資訊
// cart不存在時回傳gorm.ErrRecordNotFound, 不自動建立
func (s *CartRepo) GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.cart_item_id ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpsertItem 加入商品, 已存在則累加數量
// 用ON CONFLICT在db端合併, 不在應用層read-modify-write, 併發加入同商品會收斂成單列
func (s *CartRepo) UpsertItem(ctx context.Context, cartID, productID uint, quantity int) error {
	item := model.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
		}),
	}).Create(&item).Error
}

// GetItemForUser 以item id查詢cart item, 並限定cart屬於該user
// 其他user的item一律回傳gorm.ErrRecordNotFound
func (s *CartRepo) GetItemForUser(ctx context.Context, itemID, userID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.db.WithContext(ctx).
		Joins("JOIN carts ON carts.cart_id = cart_items.cart_id").
		Where("cart_items.cart_item_id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SetItemQuantity 覆寫數量, 不做累加
func (s *CartRepo) SetItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	return s.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_item_id = ?", itemID).
		Update("quantity", quantity).Error
}

func (s *CartRepo) DeleteItem(ctx context.Context, itemID uint) error {
	return s.db.WithContext(ctx).
		Where("cart_item_id = ?", itemID).
		Delete(&model.CartItem{}).Error
}

// ClearItems 清空cart所有items, cart本身保留
func (s *CartRepo) ClearItems(ctx context.Context, cartID uint) error {
	return s.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}
