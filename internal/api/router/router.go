package router

import (
	"github.com/RoyceAzure/lab/storefront/internal/api"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.ListProducts)
			r.Get("/{productID}", server.CatalogHandler.GetProduct)
			r.Get("/{productID}/sizes", server.CatalogHandler.GetSizeOptions)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", server.CartHandler.GetCart)
			r.Delete("/", server.CartHandler.Clear)
			r.Post("/items", server.CartHandler.AddItem)
			r.Post("/items/{productID}/{size}/increment", server.CartHandler.Increment)
			r.Post("/items/{productID}/{size}/decrement", server.CartHandler.Decrement)
			r.Delete("/items/{productID}/{size}", server.CartHandler.RemoveItem)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", server.FavoritesHandler.List)
			r.Post("/{productID}/toggle", server.FavoritesHandler.Toggle)
			r.Delete("/{productID}", server.FavoritesHandler.Remove)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", server.OrderHandler.PlaceOrder)
			r.Get("/", server.OrderHandler.ListOrders)
			r.Get("/events", server.OrderHandler.StreamEvents)
			r.Get("/{orderID}", server.OrderHandler.GetOrder)
		})
	})

	return r
}
