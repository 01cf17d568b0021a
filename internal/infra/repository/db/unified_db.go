package db

import (
	"context"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"gorm.io/gorm"
)

// UnifiedDB 統一的資料庫介面
type UnifiedDB interface {
	GetDB() *gorm.DB
	InitMigrate() error

	ICartRepository
	IOrderRepository
	IProductRepository
	IUserRepository
}

// ICartRepository Cart 相關操作介面
type ICartRepository interface {
	GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error)
	GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error)
	UpsertItem(ctx context.Context, cartID, productID uint, quantity int) error
	GetItemForUser(ctx context.Context, itemID, userID uint) (*model.CartItem, error)
	SetItemQuantity(ctx context.Context, itemID uint, quantity int) error
	DeleteItem(ctx context.Context, itemID uint) error
	ClearItems(ctx context.Context, cartID uint) error
}

// IOrderRepository Order 相關操作介面
type IOrderRepository interface {
	CreateOrderWithCartClear(ctx context.Context, order *model.Order, cartID uint) error
	GetOrderByIDForUser(ctx context.Context, orderID, userID uint) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	GetOrdersByUserIDPaginated(ctx context.Context, userID uint, page, pageSize int) ([]model.Order, int64, error)
}

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, productID uint) (*model.Product, error)
	GetProductByCode(ctx context.Context, code string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	GetProductsPaginated(ctx context.Context, page, pageSize int) ([]model.Product, int64, error)
}

// IUserRepository User 相關操作介面
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// UnifiedDBImpl 統一資料庫實現
type UnifiedDBImpl struct {
	db    *gorm.DB
	dbDao *DbDao
	*CartRepo
	*OrderRepo
	*ProductRepo
	*UserRepo
}

// NewUnifiedDB 創建新的統一資料庫實例
func NewUnifiedDB(db *gorm.DB) *UnifiedDBImpl {
	dbDao := NewDbDao(db)
	return &UnifiedDBImpl{
		db:          db,
		dbDao:       dbDao,
		CartRepo:    NewCartRepo(dbDao),
		OrderRepo:   NewOrderRepo(dbDao),
		ProductRepo: NewProductRepo(dbDao),
		UserRepo:    NewUserRepo(dbDao),
	}
}

func (u *UnifiedDBImpl) InitMigrate() error {
	return u.dbDao.InitMigrate()
}

// GetDB 獲取資料庫連接
func (u *UnifiedDBImpl) GetDB() *gorm.DB {
	return u.db
}

var (
	_ UnifiedDB          = (*UnifiedDBImpl)(nil)
	_ ICartRepository    = (*UnifiedDBImpl)(nil)
	_ IOrderRepository   = (*UnifiedDBImpl)(nil)
	_ IProductRepository = (*UnifiedDBImpl)(nil)
	_ IUserRepository    = (*UnifiedDBImpl)(nil)
)
