package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/producer"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotExist = errs.New(errs.NotFoundCode, "order not found")
	ErrCartEmpty     = errs.New(errs.BadRequestCode, "cart is empty")
)

type IOrderService interface {
	CreateOrder(ctx context.Context, userID uint, shippingAddress, billingAddress string) (*model.Order, error)
	GetOrder(ctx context.Context, userID, orderID uint) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	CalculateCartAmount(ctx context.Context, cartItems ...model.CartItem) (decimal.Decimal, error)
}

type OrderService struct {
	orderRepo     db.IOrderRepository
	cartRepo      db.ICartRepository
	productRepo   db.IProductRepository
	eventProducer producer.IOrderEventProducer
}

// eventProducer可為nil, 轉單事件是best effort不影響主流程
func NewOrderService(orderRepo db.IOrderRepository, cartRepo db.ICartRepository, productRepo db.IProductRepository, eventProducer producer.IOrderEventProducer) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		eventProducer: eventProducer,
	}
}

/*
CreateOrder cart轉單

 1. cart不存在 -> ErrCartNotExist, cart沒有items -> ErrCartEmpty
 2. 以轉單當下的商品價格計算總金額並做價格快照
 3. order+items寫入與cart清空在同一個事務, 失敗全部rollback
 4. 訂單編號唯一索引擋撞號, 撞到換號重試一次
*/
func (o *OrderService) CreateOrder(ctx context.Context, userID uint, shippingAddress, billingAddress string) (*model.Order, error) {
	cart, err := o.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotExist
		}
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	amount, err := o.CalculateCartAmount(ctx, cart.Items...)
	if err != nil {
		return nil, err
	}

	orderItems := make([]model.OrderItem, 0, len(cart.Items))
	for _, cartItem := range cart.Items {
		product, err := o.productRepo.GetProductByID(ctx, cartItem.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}

		orderItems = append(orderItems, model.OrderItem{
			ProductID: cartItem.ProductID,
			Quantity:  cartItem.Quantity,
			Price:     product.Price,
		})
	}

	orderNumber, err := generateOrderNumber()
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:          userID,
		OrderNumber:     orderNumber,
		Status:          string(constants.OrderStatusProcessing),
		Amount:          amount,
		ShippingAddress: shippingAddress,
		BillingAddress:  billingAddress,
		OrderDate:       time.Now(),
		Items:           orderItems,
	}

	err = o.orderRepo.CreateOrderWithCartClear(ctx, order, cart.CartID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 撞號機率極低, 換一組編號重試一次就好
		if order.OrderNumber, err = generateOrderNumber(); err != nil {
			return nil, err
		}
		err = o.orderRepo.CreateOrderWithCartClear(ctx, order, cart.CartID)
	}
	if err != nil {
		return nil, err
	}

	if o.eventProducer != nil {
		if err := o.eventProducer.ProduceOrderCreatedEvent(ctx, order); err != nil {
			log.Warn().Err(err).Str("order_number", order.OrderNumber).Msg("produce order created event failed")
		}
	}

	return o.orderRepo.GetOrderByIDForUser(ctx, order.OrderID, userID)
}

func (o *OrderService) GetOrder(ctx context.Context, userID, orderID uint) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotExist
		}
		return nil, err
	}
	return order, nil
}

func (o *OrderService) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	return o.orderRepo.GetOrdersByUserID(ctx, userID)
}

/*
計算購物車總金額, 用商品當下價格
*/
func (o *OrderService) CalculateCartAmount(ctx context.Context, cartItems ...model.CartItem) (decimal.Decimal, error) {
	amount := decimal.NewFromInt(0)
	for _, cartItem := range cartItems {
		product, err := o.productRepo.GetProductByID(ctx, cartItem.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return decimal.Decimal{}, ErrProductNotFound
			}
			return decimal.Decimal{}, err
		}
		amount = amount.Add(product.Price.Mul(decimal.NewFromInt(int64(cartItem.Quantity))))
	}
	return amount, nil
}

// 固定前綴加8碼大寫hex, 唯一性靠db唯一索引把關
func generateOrderNumber() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return constants.OrderNumberPrefix + strings.ToUpper(hex.EncodeToString(b)), nil
}

var _ IOrderService = (*OrderService)(nil)
