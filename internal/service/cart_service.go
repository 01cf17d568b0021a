package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errs.New(errs.NotFoundCode, "product not found")
	ErrCartItemNotFound = errs.New(errs.NotFoundCode, "cart item not found")
	ErrCartNotExist     = errs.New(errs.NotFoundCode, "cart not found")
	ErrInvalidQuantity  = errs.New(errs.BadRequestCode, "quantity must be a positive integer")
)

type ICartService interface {
	GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error)
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.Cart, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID uint) (*model.Cart, error)
	ClearCart(ctx context.Context, userID uint) (*model.Cart, error)
}

type CartService struct {
	cartRepo    db.ICartRepository
	productRepo db.IProductRepository
}

func NewCartService(cartRepo db.ICartRepository, productRepo db.IProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetOrCreateCart 冪等, cart不存在就建立空的
func (c *CartService) GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error) {
	return c.cartRepo.GetOrCreateCart(ctx, userID)
}

// AddItem 加入商品到cart
// 已存在同商品時數量累加, 合併在db端原子完成
// quantity必須為正數, 不像UpdateItemQuantity把非正數當刪除處理
func (c *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	_, err := c.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := c.cartRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.cartRepo.UpsertItem(ctx, cart.CartID, productID, quantity); err != nil {
		return nil, err
	}

	return c.cartRepo.GetCartByUserID(ctx, userID)
}

// UpdateItemQuantity 覆寫item數量
// quantity <= 0 視為移除該item, 不是錯誤
func (c *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.Cart, error) {
	item, err := c.cartRepo.GetItemForUser(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	if quantity <= 0 {
		err = c.cartRepo.DeleteItem(ctx, item.CartItemID)
	} else {
		err = c.cartRepo.SetItemQuantity(ctx, item.CartItemID, quantity)
	}
	if err != nil {
		return nil, err
	}

	return c.cartRepo.GetCartByUserID(ctx, userID)
}

// RemoveItem 移除item, 其他user的item視同不存在
func (c *CartService) RemoveItem(ctx context.Context, userID, itemID uint) (*model.Cart, error) {
	item, err := c.cartRepo.GetItemForUser(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	if err := c.cartRepo.DeleteItem(ctx, item.CartItemID); err != nil {
		return nil, err
	}

	return c.cartRepo.GetCartByUserID(ctx, userID)
}

// ClearCart 清空cart所有items
// cart從未建立過回傳ErrCartNotExist, 與空cart不同
func (c *CartService) ClearCart(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := c.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotExist
		}
		return nil, err
	}

	if err := c.cartRepo.ClearItems(ctx, cart.CartID); err != nil {
		return nil, err
	}

	return c.cartRepo.GetCartByUserID(ctx, userID)
}

var _ ICartService = (*CartService)(nil)
