package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
	"github.com/RoyceAzure/lab/ordercenter/internal/util"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary list current user orders
// @use 取得目前user的所有order, 新的在前
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.OrderDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /orders/ [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	orders, err := h.orderService.GetOrdersByUserID(r.Context(), payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertOrdersToDTO(orders), nil)
}

// @Summary get order
// @use 取得目前user的單一order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Security     ApiKeyAuth
// @Router /orders/{id}/ [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	orderID, err := parseIDParam(r, "id")
	if err != nil {
		handleServiceError(w, err)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), payload.UserID, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertOrderToDTO(order), nil)
}

// @Summary create order from cart
// @use cart轉單, 成功回201, cart不存在404, cart為空400
// @Tags orders
// @Accept json
// @Produce json
// @Param addresses body dto.CreateOrderDTO false "shipping and billing addresses"
// @Success 201 {object} api.Response{data=dto.OrderDTO} "created"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Security     ApiKeyAuth
// @Router /orders/create/ [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	// body可以整個省略, 地址欄位留空
	var createDTO dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil && !errors.Is(err, io.EOF) {
		api.ErrorJSON(w, int(errs.BadRequestCode), nil, errs.ErrStrMap[errs.BadRequestCode])
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), payload.UserID, createDTO.ShippingAddress, createDTO.BillingAddress)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSONWithStatus(w, http.StatusCreated, dto.ConvertOrderToDTO(order), nil)
}
