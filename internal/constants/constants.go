package constants

const (
	//分頁
	DefaultPagingSize int = 10
	DefaultPaging     int = 1
)

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  string     = "Authorization"
	AuthorizationTypeBearer string     = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
)

type TokenDurationHour int

const (
	AccessTokenDuration TokenDurationHour = 24
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

// 訂單狀態
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func IsValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// 訂單編號前綴，後接8碼大寫hex亂數
const OrderNumberPrefix = "ORD-"
