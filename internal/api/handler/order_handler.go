package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/domain/event"
	"github.com/RoyceAzure/lab/storefront/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type OrderHandler struct {
	cart   *store.CartStore
	orders *store.OrderStore
	logger zerolog.Logger
}

func NewOrderHandler(cart *store.CartStore, orders *store.OrderStore, logger zerolog.Logger) *OrderHandler {
	if cart == nil {
		panic("cart store cannot be nil")
	}
	if orders == nil {
		panic("order store cannot be nil")
	}
	return &OrderHandler{cart: cart, orders: orders, logger: logger}
}

// PlaceOrder checks out the current cart. Placing and clearing are two
// separate store calls; the order store never touches the cart itself.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	lines := h.cart.Items()
	if len(lines) == 0 {
		errorJSON(w, http.StatusBadRequest, "cart is empty")
		return
	}

	order := h.orders.Place(lines, h.cart.TotalPrice())
	h.cart.Clear()

	successJSON(w, dto.ConvertOrderToDTO(order))
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orders.Orders()
	out := make([]dto.OrderDTO, len(orders))
	for i, o := range orders {
		out[i] = dto.ConvertOrderToDTO(o)
	}
	successJSON(w, out)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.orders.Order(chi.URLParam(r, "orderID"))
	if !ok {
		errorJSON(w, http.StatusNotFound, "order not found")
		return
	}
	successJSON(w, dto.ConvertOrderToDTO(order))
}

// StreamEvents pushes order store events to the client over SSE.
// 訂閱的 callback 在 store 的 goroutine 上執行，只負責丟進 channel，
// 寫 response 由 handler 自己的 goroutine 處理。
func (h *OrderHandler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		errorJSON(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := make(chan event.Event, 16)
	sub := h.orders.Subscribe(func(evt event.Event) {
		select {
		case ch <- evt:
		default:
			// 慢速消費者直接丟事件，不能卡住廣播
		}
	})
	defer h.orders.Unsubscribe(sub)

	for {
		select {
		case <-r.Context().Done():
			return
		case evt := <-ch:
			data, err := json.Marshal(evt)
			if err != nil {
				h.logger.Error().Err(err).Msg("marshal order event failed")
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Type(), data)
			flusher.Flush()
		}
	}
}
