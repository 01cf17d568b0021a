package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/token"
)

// AuthPayloadMiddleware 解析Bearer token並把payload放進ctx
// 沒帶token或token無效時不擋請求, 由AuthMiddleware決定該路由是否需要登入
func AuthPayloadMiddleware(tokenMaker token.Maker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorizationHeader := r.Header.Get(constants.AuthorizationHeaderKey)
			if authorizationHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			fields := strings.Fields(authorizationHeader)
			if len(fields) < 2 || strings.ToLower(fields[0]) != constants.AuthorizationTypeBearer {
				next.ServeHTTP(w, r)
				return
			}

			payload, err := tokenMaker.VerifyToken(fields[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), constants.AuthorizationPayloadKey, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
