package db

import (
	"context"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"gorm.io/gorm"
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrderWithCartClear cart轉單
// order與order items寫入, cart items清空必須在同一個事務內
// 任一步失敗全部rollback, 不會留下沒有items的order或沒清空的cart
func (s *OrderRepo) CreateOrderWithCartClear(ctx context.Context, order *model.Order, cartID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
}

// Read - 根據ID查詢訂單, 限定owner
func (s *OrderRepo) GetOrderByIDForUser(ctx context.Context, orderID, userID uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).
		Preload("Items.Product").
		Where("order_id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 根據用戶ID查詢訂單, 新的在前
func (s *OrderRepo) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("order_id DESC").
		Find(&orders).Error
	return orders, err
}

// 分頁查詢訂單
func (s *OrderRepo) GetOrdersByUserIDPaginated(ctx context.Context, userID uint, page, pageSize int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	offset := (page - 1) * pageSize

	query := s.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", userID)
	query.Count(&total)

	err := query.Preload("Items.Product").
		Order("order_id DESC").
		Offset(offset).Limit(pageSize).
		Find(&orders).Error

	return orders, total, err
}
