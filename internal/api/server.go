package api

import "github.com/RoyceAzure/lab/storefront/internal/api/handler"

// Server 聚合所有 handler，給 router 掛路由用
type Server struct {
	CatalogHandler   *handler.CatalogHandler
	CartHandler      *handler.CartHandler
	FavoritesHandler *handler.FavoritesHandler
	OrderHandler     *handler.OrderHandler
}

func NewServer(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	favoritesHandler *handler.FavoritesHandler,
	orderHandler *handler.OrderHandler,
) *Server {
	if catalogHandler == nil || cartHandler == nil || favoritesHandler == nil || orderHandler == nil {
		panic("server handlers cannot be nil")
	}
	return &Server{
		CatalogHandler:   catalogHandler,
		CartHandler:      cartHandler,
		FavoritesHandler: favoritesHandler,
		OrderHandler:     orderHandler,
	}
}
