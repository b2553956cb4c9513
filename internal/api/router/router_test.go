package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	orders *store.OrderStore
	mux    http.Handler
}

func (s *RouterTestSuite) SetupTest() {
	logger := zerolog.Nop()
	cat := catalog.New(
		model.Product{ProductID: "p-a", Name: "Tee", Price: 1000, Category: "tops"},
		model.Product{ProductID: "p-b", Name: "Hoodie", Price: 1500, Category: "tops"},
		model.Product{ProductID: "p-c", Name: "Tote", Price: 900, Category: "accessories"},
	)
	cartStore := store.NewCartStore(logger)
	favoritesStore := store.NewFavoritesStore(logger)
	s.orders = store.NewOrderStore(time.Minute, time.Minute, logger)

	server := api.NewServer(
		handler.NewCatalogHandler(cat, favoritesStore),
		handler.NewCartHandler(cat, cartStore, favoritesStore),
		handler.NewFavoritesHandler(cat, favoritesStore),
		handler.NewOrderHandler(cartStore, s.orders, logger),
	)
	s.mux = SetupRouter(server, &logger)
}

func (s *RouterTestSuite) TearDownTest() {
	s.orders.Close()
}

func (s *RouterTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func (s *RouterTestSuite) TestListProducts() {
	rec := s.do(http.MethodGet, "/api/v1/products", nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	products := decodeData[[]dto.ProductDTO](s.T(), rec)
	require.Len(s.T(), products, 3)
	require.Equal(s.T(), "10.00", products[0].DisplayPrice)
}

func (s *RouterTestSuite) TestSizeOptionsFallBackToOneSize() {
	rec := s.do(http.MethodGet, "/api/v1/products/p-c/sizes", nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	sizes := decodeData[dto.SizeOptionsDTO](s.T(), rec)
	require.Equal(s.T(), []string{"One Size"}, sizes.Sizes)
}

func (s *RouterTestSuite) TestUnknownProductIs404() {
	rec := s.do(http.MethodGet, "/api/v1/products/p-404", nil)
	require.Equal(s.T(), http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestCartFlow() {
	s.do(http.MethodPost, "/api/v1/cart/items", dto.AddCartItemDTO{ProductID: "p-a", Size: "M"})
	s.do(http.MethodPost, "/api/v1/cart/items", dto.AddCartItemDTO{ProductID: "p-a", Size: "M"})
	rec := s.do(http.MethodPost, "/api/v1/cart/items/p-a/M/decrement", nil)

	cart := decodeData[dto.CartDTO](s.T(), rec)
	require.Len(s.T(), cart.Lines, 1)
	require.Equal(s.T(), 1, cart.Lines[0].Quantity)

	rec = s.do(http.MethodDelete, "/api/v1/cart", nil)
	cart = decodeData[dto.CartDTO](s.T(), rec)
	require.Empty(s.T(), cart.Lines)
	require.Zero(s.T(), cart.TotalPrice)
}

func (s *RouterTestSuite) TestFavoritesToggle() {
	rec := s.do(http.MethodPost, "/api/v1/favorites/p-b/toggle", nil)
	p := decodeData[dto.ProductDTO](s.T(), rec)
	require.True(s.T(), p.Favorite)

	rec = s.do(http.MethodGet, "/api/v1/favorites", nil)
	favorites := decodeData[[]dto.ProductDTO](s.T(), rec)
	require.Len(s.T(), favorites, 1)

	rec = s.do(http.MethodPost, "/api/v1/favorites/p-b/toggle", nil)
	p = decodeData[dto.ProductDTO](s.T(), rec)
	require.False(s.T(), p.Favorite)
}

// 完整結帳情境：A M x1 (1000) + B L x2 (1500) -> 總額 4000、數量 3，
// 下單後清空購物車，訂單內容不受影響。
func (s *RouterTestSuite) TestCheckoutEndToEnd() {
	s.do(http.MethodPost, "/api/v1/cart/items", dto.AddCartItemDTO{ProductID: "p-a", Size: "M"})
	s.do(http.MethodPost, "/api/v1/cart/items", dto.AddCartItemDTO{ProductID: "p-b", Size: "L"})
	rec := s.do(http.MethodPost, "/api/v1/cart/items/p-b/L/increment", nil)

	cart := decodeData[dto.CartDTO](s.T(), rec)
	require.Equal(s.T(), 3, cart.TotalCount)
	require.Equal(s.T(), int64(4000), cart.TotalPrice)

	rec = s.do(http.MethodPost, "/api/v1/orders", nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)
	order := decodeData[dto.OrderDTO](s.T(), rec)
	require.Equal(s.T(), int64(4000), order.Amount)
	require.Len(s.T(), order.Lines, 2)
	require.Equal(s.T(), string(model.OrderStatusProcessing), order.Status)

	// 下單後購物車已清空
	rec = s.do(http.MethodGet, "/api/v1/cart", nil)
	cart = decodeData[dto.CartDTO](s.T(), rec)
	require.Empty(s.T(), cart.Lines)

	// 訂單不受購物車清空影響
	rec = s.do(http.MethodGet, "/api/v1/orders/"+order.OrderID, nil)
	got := decodeData[dto.OrderDTO](s.T(), rec)
	require.Equal(s.T(), int64(4000), got.Amount)
	require.Len(s.T(), got.Lines, 2)
}

func (s *RouterTestSuite) TestPlaceOrderOnEmptyCartIs400() {
	rec := s.do(http.MethodPost, "/api/v1/orders", nil)
	require.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestOrdersListedMostRecentFirst() {
	s.do(http.MethodPost, "/api/v1/cart/items", dto.AddCartItemDTO{ProductID: "p-a", Size: "M"})
	recA := s.do(http.MethodPost, "/api/v1/orders", nil)
	orderA := decodeData[dto.OrderDTO](s.T(), recA)

	s.do(http.MethodPost, "/api/v1/cart/items", dto.AddCartItemDTO{ProductID: "p-b", Size: "L"})
	recB := s.do(http.MethodPost, "/api/v1/orders", nil)
	orderB := decodeData[dto.OrderDTO](s.T(), recB)

	rec := s.do(http.MethodGet, "/api/v1/orders", nil)
	orders := decodeData[[]dto.OrderDTO](s.T(), rec)
	require.Len(s.T(), orders, 2)
	require.Equal(s.T(), orderB.OrderID, orders[0].OrderID)
	require.Equal(s.T(), orderA.OrderID, orders[1].OrderID)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
