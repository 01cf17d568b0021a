package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/api"
	"github.com/go-chi/chi/v5"
)

// handleServiceError service層的CodeError直接對應http status
// 其餘一律視為internal error, 不洩漏db細節
func handleServiceError(w http.ResponseWriter, err error) {
	var codeErr *errs.CodeError
	if errors.As(err, &codeErr) {
		api.ErrorJSON(w, int(codeErr.Code), codeErr, errs.ErrStrMap[codeErr.Code])
		return
	}
	api.ErrorJSON(w, int(errs.InternalErrorCode), err, errs.ErrStrMap[errs.InternalErrorCode])
}

// parseIDParam 解析路徑上的數字id
// 非數字的id視同資源不存在
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.New(errs.NotFoundCode, name+" not found")
	}
	return uint(id), nil
}
