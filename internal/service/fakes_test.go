package service

import (
	"context"
	"sync"

	"github.com/RoyceAzure/lab/ordercenter/internal/domain/model"
	"gorm.io/gorm"
)

// in-memory fakes, 模擬repo層包含gorm sentinel errors的行為

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uint]*model.Product
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uint]*model.Product)}
	for _, p := range products {
		cp := *p
		repo.products[p.ProductID] = &cp
	}
	return repo
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) setPrice(productID uint, product *model.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *product
	f.products[productID] = &cp
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *product
	f.products[product.ProductID] = &cp
	return nil
}

func (f *fakeProductRepo) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) SearchProducts(ctx context.Context, keyword string) ([]model.Product, error) {
	return f.GetAllProducts(ctx)
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	f.setPrice(product.ProductID, product)
	return nil
}

func (f *fakeProductRepo) GetProductsPaginated(ctx context.Context, page, pageSize int) ([]model.Product, int64, error) {
	products, _ := f.GetAllProducts(ctx)
	return products, int64(len(products)), nil
}

type fakeCartRepo struct {
	mu         sync.Mutex
	carts      map[uint]*model.Cart     // key: userID
	items      map[uint]*model.CartItem // key: cartItemID
	nextCartID uint
	nextItemID uint
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: make(map[uint]*model.Cart),
		items: make(map[uint]*model.CartItem),
	}
}

func (f *fakeCartRepo) GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error) {
	f.mu.Lock()
	if _, ok := f.carts[userID]; !ok {
		f.nextCartID++
		f.carts[userID] = &model.Cart{CartID: f.nextCartID, UserID: userID}
	}
	f.mu.Unlock()
	return f.GetCartByUserID(ctx, userID)
}

func (f *fakeCartRepo) GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	snapshot := model.Cart{CartID: cart.CartID, UserID: cart.UserID}
	for _, item := range f.items {
		if item.CartID == cart.CartID {
			snapshot.Items = append(snapshot.Items, *item)
		}
	}
	return &snapshot, nil
}

func (f *fakeCartRepo) UpsertItem(ctx context.Context, cartID, productID uint, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.CartID == cartID && item.ProductID == productID {
			item.Quantity += quantity
			return nil
		}
	}
	f.nextItemID++
	f.items[f.nextItemID] = &model.CartItem{
		CartItemID: f.nextItemID,
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
	}
	return nil
}

func (f *fakeCartRepo) GetItemForUser(ctx context.Context, itemID, userID uint) (*model.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[itemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cart, ok := f.carts[userID]
	if !ok || cart.CartID != item.CartID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeCartRepo) SetItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[itemID]; ok {
		item.Quantity = quantity
	}
	return nil
}

func (f *fakeCartRepo) DeleteItem(ctx context.Context, itemID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, itemID)
	return nil
}

func (f *fakeCartRepo) ClearItems(ctx context.Context, cartID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, item := range f.items {
		if item.CartID == cartID {
			delete(f.items, id)
		}
	}
	return nil
}

type fakeUserRepo struct {
	mu         sync.Mutex
	users      map[uint]*model.User
	nextUserID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.UserEmail == user.UserEmail {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	f.nextUserID++
	user.UserID = f.nextUserID
	cp := *user
	f.users[user.UserID] = &cp
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.UserEmail == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeOrderRepo struct {
	mu          sync.Mutex
	cartRepo    *fakeCartRepo
	orders      map[uint]*model.Order
	nextOrderID uint
	usedNumbers map[string]bool

	// 模擬訂單編號撞號, >0時前n次create回傳duplicated key
	failDuplicated int
}

func newFakeOrderRepo(cartRepo *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		cartRepo:    cartRepo,
		orders:      make(map[uint]*model.Order),
		usedNumbers: make(map[string]bool),
	}
}

func (f *fakeOrderRepo) CreateOrderWithCartClear(ctx context.Context, order *model.Order, cartID uint) error {
	f.mu.Lock()
	if f.failDuplicated > 0 {
		f.failDuplicated--
		f.mu.Unlock()
		return gorm.ErrDuplicatedKey
	}
	if f.usedNumbers[order.OrderNumber] {
		f.mu.Unlock()
		return gorm.ErrDuplicatedKey
	}

	f.nextOrderID++
	order.OrderID = f.nextOrderID
	for i := range order.Items {
		order.Items[i].OrderID = order.OrderID
		order.Items[i].OrderItemID = f.nextOrderID*100 + uint(i)
	}
	f.usedNumbers[order.OrderNumber] = true
	stored := *order
	stored.Items = append([]model.OrderItem(nil), order.Items...)
	f.orders[order.OrderID] = &stored
	f.mu.Unlock()

	return f.cartRepo.ClearItems(ctx, cartID)
}

func (f *fakeOrderRepo) GetOrderByIDForUser(ctx context.Context, orderID, userID uint) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok || order.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *order
	cp.Items = append([]model.OrderItem(nil), order.Items...)
	return &cp, nil
}

func (f *fakeOrderRepo) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			cp := *order
			cp.Items = append([]model.OrderItem(nil), order.Items...)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetOrdersByUserIDPaginated(ctx context.Context, userID uint, page, pageSize int) ([]model.Order, int64, error) {
	orders, _ := f.GetOrdersByUserID(ctx, userID)
	return orders, int64(len(orders)), nil
}
