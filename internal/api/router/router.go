package router

import (
	"net/http"

	_ "github.com/RoyceAzure/lab/ordercenter/docs"
	"github.com/RoyceAzure/lab/ordercenter/internal/api"
	m "github.com/RoyceAzure/lab/ordercenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker, redisClient *redis.Client, rateLimitPerMin int, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.NewRateLimitMiddleware(redisClient, rateLimitPerMin))
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(m.LoggerMiddleware(logger))

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", server.AuthHandler.Login)
			r.Post("/register", server.AuthHandler.Register)
			r.With(m.AuthMiddleware).Get("/me", server.AuthHandler.Me)
		})

		//商品目錄是公開的
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Get("/{id}/", server.ProductHandler.GetProduct)
		})

		//orders路由全部需要登入
		r.Route("/orders", func(r chi.Router) {
			r.Use(m.AuthMiddleware)

			r.Get("/", server.OrderHandler.ListOrders)
			r.Post("/create/", server.OrderHandler.CreateOrder)
			r.Get("/{id}/", server.OrderHandler.GetOrder)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", server.CartHandler.GetCart)
				r.Post("/add/", server.CartHandler.AddToCart)
				r.Put("/update/{item_id}/", server.CartHandler.UpdateCartItem)
				r.Delete("/remove/{item_id}/", server.CartHandler.RemoveCartItem)
				r.Delete("/clear/", server.CartHandler.ClearCart)
			})
		})
	})

	return r
}
