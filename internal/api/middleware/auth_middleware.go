package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/token"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/api"
)

// AuthMiddleware 驗證ctx是否有token payload
// 未登入的請求在進到service之前就被擋下
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload)
		if !ok {
			api.ErrorJSON(w, int(errs.UnauthenticatedCode), errs.New(errs.UnauthenticatedCode, "unauthenticated"), errs.ErrStrMap[errs.UnauthenticatedCode])
			return
		}
		next.ServeHTTP(w, r)
	})
}
