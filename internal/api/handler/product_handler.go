package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// @Summary list products
// @use 商品列表, ?search=關鍵字 或 ?category=分類, 兩者都沒有就回全部
// @Tags products
// @Accept json
// @Produce json
// @Param search query string false "keyword search on name and description"
// @Param category query string false "filter by category"
// @Success 200 {object} api.Response{data=[]dto.ProductDTO} "success"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /products/ [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if keyword := r.URL.Query().Get("search"); keyword != "" {
		result, err := h.productService.SearchProducts(r.Context(), keyword)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		api.SuccessJSON(w, dto.ConvertProductsToDTO(result), nil)
		return
	}

	if category := r.URL.Query().Get("category"); category != "" {
		result, err := h.productService.GetProductsByCategory(r.Context(), category)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		api.SuccessJSON(w, dto.ConvertProductsToDTO(result), nil)
		return
	}

	result, err := h.productService.GetAllProducts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ConvertProductsToDTO(result), nil)
}

// @Summary get product
// @use 取得單一商品
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /products/{id}/ [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "id")
	if err != nil {
		handleServiceError(w, err)
		return
	}

	product, err := h.productService.GetProduct(r.Context(), productID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertProductToDTO(product), nil)
}
