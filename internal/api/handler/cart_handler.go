package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
	"github.com/RoyceAzure/lab/ordercenter/internal/util"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

// @Summary get current user cart
// @use 取得目前user的cart, 不存在就建立空的
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /orders/cart/ [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	cart, err := h.cartService.GetOrCreateCart(r.Context(), payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertCartToDTO(cart), nil)
}

// @Summary add product to cart
// @use 加入商品, quantity省略時預設1
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.AddToCartDTO true "product id and quantity"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Security     ApiKeyAuth
// @Router /orders/cart/add/ [post]
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	var addDTO dto.AddToCartDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, int(errs.BadRequestCode), nil, errs.ErrStrMap[errs.BadRequestCode])
		return
	}

	quantity := 1
	if addDTO.Quantity != nil {
		quantity = *addDTO.Quantity
	}

	cart, err := h.cartService.AddItem(r.Context(), payload.UserID, addDTO.ProductID, quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertCartToDTO(cart), nil)
}

// @Summary update cart item quantity
// @use 覆寫item數量, quantity省略時預設1, quantity <= 0等同移除
// @Tags cart
// @Accept json
// @Produce json
// @Param item_id path int true "cart item id"
// @Param quantity body dto.UpdateCartItemDTO true "new quantity"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Security     ApiKeyAuth
// @Router /orders/cart/update/{item_id}/ [put]
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	itemID, err := parseIDParam(r, "item_id")
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var updateDTO dto.UpdateCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, int(errs.BadRequestCode), nil, errs.ErrStrMap[errs.BadRequestCode])
		return
	}

	// 沒帶quantity時視為1, 不會把漏欄位當成移除
	quantity := 1
	if updateDTO.Quantity != nil {
		quantity = *updateDTO.Quantity
	}

	cart, err := h.cartService.UpdateItemQuantity(r.Context(), payload.UserID, itemID, quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertCartToDTO(cart), nil)
}

// @Summary remove cart item
// @use 從cart移除單一item
// @Tags cart
// @Accept json
// @Produce json
// @Param item_id path int true "cart item id"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Security     ApiKeyAuth
// @Router /orders/cart/remove/{item_id}/ [delete]
func (h *CartHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	itemID, err := parseIDParam(r, "item_id")
	if err != nil {
		handleServiceError(w, err)
		return
	}

	cart, err := h.cartService.RemoveItem(r.Context(), payload.UserID, itemID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertCartToDTO(cart), nil)
}

// @Summary clear cart
// @use 移除cart內所有item
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Security     ApiKeyAuth
// @Router /orders/cart/clear/ [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())

	cart, err := h.cartService.ClearCart(r.Context(), payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertCartToDTO(cart), nil)
}
