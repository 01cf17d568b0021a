package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepoTestSuite struct {
	suite.Suite
	db        *gorm.DB
	orderRepo *OrderRepo
	cartRepo  *CartRepo
	userRepo  *UserRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *OrderRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_ordercenter", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.orderRepo = NewOrderRepo(dbDao)
	suite.cartRepo = NewCartRepo(dbDao)
	suite.userRepo = NewUserRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *OrderRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM carts")
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM users")
}

// TearDownSuite 在測試套件結束後執行
func (suite *OrderRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *OrderRepoTestSuite) createTestUser(email string) *model.User {
	user, err := suite.userRepo.CreateUser(context.Background(), &model.User{
		UserName:       "Test User",
		UserEmail:      email,
		HashedPassword: "hashed",
	})
	require.NoError(suite.T(), err)
	return user
}

func (suite *OrderRepoTestSuite) createTestProduct(code string, price string) *model.Product {
	product := &model.Product{
		Code:     code,
		Name:     "Test Product " + code,
		Price:    decimal.RequireFromString(price),
		Stock:    100,
		Category: "test",
	}
	err := suite.db.Create(product).Error
	require.NoError(suite.T(), err)
	return product
}

// 建立帶items的cart, 回傳cart
func (suite *OrderRepoTestSuite) createCartWithItems(userID uint, products ...*model.Product) *model.Cart {
	cart, err := suite.cartRepo.GetOrCreateCart(context.Background(), userID)
	require.NoError(suite.T(), err)
	for i, product := range products {
		err = suite.cartRepo.UpsertItem(context.Background(), cart.CartID, product.ProductID, i+1)
		require.NoError(suite.T(), err)
	}
	cart, err = suite.cartRepo.GetCartByUserID(context.Background(), userID)
	require.NoError(suite.T(), err)
	return cart
}

func (suite *OrderRepoTestSuite) TestCreateOrderWithCartClear() {
	user := suite.createTestUser("order@example.com")
	productA := suite.createTestProduct("P-001", "10.00")
	productB := suite.createTestProduct("P-002", "5.00")
	cart := suite.createCartWithItems(user.UserID, productA, productB)

	order := &model.Order{
		UserID:      user.UserID,
		OrderNumber: "ORD-0000AAAA",
		Status:      string(constants.OrderStatusProcessing),
		Amount:      decimal.RequireFromString("20.00"),
		OrderDate:   time.Now(),
		Items: []model.OrderItem{
			{ProductID: productA.ProductID, Quantity: 1, Price: productA.Price},
			{ProductID: productB.ProductID, Quantity: 2, Price: productB.Price},
		},
	}

	err := suite.orderRepo.CreateOrderWithCartClear(context.Background(), order, cart.CartID)
	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), order.OrderID)

	// order items一併寫入
	found, err := suite.orderRepo.GetOrderByIDForUser(context.Background(), order.OrderID, user.UserID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), found.Items, 2)
	require.True(suite.T(), decimal.RequireFromString("20.00").Equal(found.Amount))

	// cart items同事務清空
	cart, err = suite.cartRepo.GetCartByUserID(context.Background(), user.UserID)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), cart.Items)
}

// 訂單編號重複時整個事務rollback, cart items保持原樣
func (suite *OrderRepoTestSuite) TestCreateOrderWithCartClear_DuplicateNumberRollsBack() {
	user := suite.createTestUser("order@example.com")
	product := suite.createTestProduct("P-001", "10.00")
	cart := suite.createCartWithItems(user.UserID, product)

	first := &model.Order{
		UserID:      user.UserID,
		OrderNumber: "ORD-0000AAAA",
		Status:      string(constants.OrderStatusProcessing),
		Amount:      decimal.RequireFromString("10.00"),
		OrderDate:   time.Now(),
		Items: []model.OrderItem{
			{ProductID: product.ProductID, Quantity: 1, Price: product.Price},
		},
	}
	err := suite.orderRepo.CreateOrderWithCartClear(context.Background(), first, cart.CartID)
	require.NoError(suite.T(), err)

	// 重新裝cart再用同一個編號轉單
	err = suite.cartRepo.UpsertItem(context.Background(), cart.CartID, product.ProductID, 3)
	require.NoError(suite.T(), err)

	second := &model.Order{
		UserID:      user.UserID,
		OrderNumber: "ORD-0000AAAA",
		Status:      string(constants.OrderStatusProcessing),
		Amount:      decimal.RequireFromString("30.00"),
		OrderDate:   time.Now(),
		Items: []model.OrderItem{
			{ProductID: product.ProductID, Quantity: 3, Price: product.Price},
		},
	}
	err = suite.orderRepo.CreateOrderWithCartClear(context.Background(), second, cart.CartID)
	require.ErrorIs(suite.T(), err, gorm.ErrDuplicatedKey)

	// rollback後cart items還在
	cartAfter, err := suite.cartRepo.GetCartByUserID(context.Background(), user.UserID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), cartAfter.Items, 1)
	require.Equal(suite.T(), 3, cartAfter.Items[0].Quantity)

	var count int64
	suite.db.Model(&model.Order{}).Where("user_id = ?", user.UserID).Count(&count)
	require.Equal(suite.T(), int64(1), count)
}

func (suite *OrderRepoTestSuite) TestGetOrderByIDForUser_OtherUser() {
	owner := suite.createTestUser("owner@example.com")
	other := suite.createTestUser("other@example.com")
	product := suite.createTestProduct("P-001", "10.00")
	cart := suite.createCartWithItems(owner.UserID, product)

	order := &model.Order{
		UserID:      owner.UserID,
		OrderNumber: "ORD-0000AAAA",
		Status:      string(constants.OrderStatusProcessing),
		Amount:      decimal.RequireFromString("10.00"),
		OrderDate:   time.Now(),
		Items: []model.OrderItem{
			{ProductID: product.ProductID, Quantity: 1, Price: product.Price},
		},
	}
	err := suite.orderRepo.CreateOrderWithCartClear(context.Background(), order, cart.CartID)
	require.NoError(suite.T(), err)

	found, err := suite.orderRepo.GetOrderByIDForUser(context.Background(), order.OrderID, other.UserID)
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
	require.Nil(suite.T(), found)
}

func (suite *OrderRepoTestSuite) TestGetOrdersByUserID_NewestFirst() {
	user := suite.createTestUser("order@example.com")
	product := suite.createTestProduct("P-001", "10.00")

	numbers := []string{"ORD-00000001", "ORD-00000002", "ORD-00000003"}
	for _, number := range numbers {
		cart := suite.createCartWithItems(user.UserID, product)
		order := &model.Order{
			UserID:      user.UserID,
			OrderNumber: number,
			Status:      string(constants.OrderStatusProcessing),
			Amount:      decimal.RequireFromString("10.00"),
			OrderDate:   time.Now(),
			Items: []model.OrderItem{
				{ProductID: product.ProductID, Quantity: 1, Price: product.Price},
			},
		}
		err := suite.orderRepo.CreateOrderWithCartClear(context.Background(), order, cart.CartID)
		require.NoError(suite.T(), err)
	}

	orders, err := suite.orderRepo.GetOrdersByUserID(context.Background(), user.UserID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 3)
	require.Equal(suite.T(), "ORD-00000003", orders[0].OrderNumber)
	require.Equal(suite.T(), "ORD-00000001", orders[2].OrderNumber)
}

func (suite *OrderRepoTestSuite) TestGetOrdersByUserIDPaginated() {
	user := suite.createTestUser("order@example.com")
	product := suite.createTestProduct("P-001", "10.00")

	for i := 1; i <= 25; i++ {
		cart := suite.createCartWithItems(user.UserID, product)
		order := &model.Order{
			UserID:      user.UserID,
			OrderNumber: fmt.Sprintf("ORD-%08d", i),
			Status:      string(constants.OrderStatusProcessing),
			Amount:      decimal.RequireFromString("10.00"),
			OrderDate:   time.Now(),
			Items: []model.OrderItem{
				{ProductID: product.ProductID, Quantity: 1, Price: product.Price},
			},
		}
		err := suite.orderRepo.CreateOrderWithCartClear(context.Background(), order, cart.CartID)
		require.NoError(suite.T(), err)
	}

	// 第一頁每頁10筆
	orders, total, err := suite.orderRepo.GetOrdersByUserIDPaginated(context.Background(), user.UserID, 1, 10)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 10)
	require.Equal(suite.T(), int64(25), total)

	// 第三頁只剩5筆
	orders, total, err = suite.orderRepo.GetOrdersByUserIDPaginated(context.Background(), user.UserID, 3, 10)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 5)
	require.Equal(suite.T(), int64(25), total)
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}
