package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/store"
	"github.com/RoyceAzure/lab/storefront/pkg/pricing"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	catalog   *catalog.Catalog
	cart      *store.CartStore
	favorites *store.FavoritesStore
}

func NewCartHandler(c *catalog.Catalog, cart *store.CartStore, favorites *store.FavoritesStore) *CartHandler {
	if c == nil {
		panic("catalog cannot be nil")
	}
	if cart == nil {
		panic("cart store cannot be nil")
	}
	if favorites == nil {
		panic("favorites store cannot be nil")
	}
	return &CartHandler{catalog: c, cart: cart, favorites: favorites}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	successJSON(w, h.cartDTO())
}

// AddItem 加入購物車，同 (product, size) 已存在就只加數量
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.Product(req.ProductID)
	if err != nil {
		errorJSON(w, http.StatusNotFound, err.Error())
		return
	}
	size := req.Size
	if size == "" {
		size = catalog.SizeOptions(product.Category)[0]
	}

	h.cart.AddItem(product, size)
	successJSON(w, h.cartDTO())
}

func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.cart.Increment(chi.URLParam(r, "productID"), chi.URLParam(r, "size"))
	successJSON(w, h.cartDTO())
}

func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.cart.Decrement(chi.URLParam(r, "productID"), chi.URLParam(r, "size"))
	successJSON(w, h.cartDTO())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.cart.Remove(chi.URLParam(r, "productID"), chi.URLParam(r, "size"))
	successJSON(w, h.cartDTO())
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	successJSON(w, h.cartDTO())
}

func (h *CartHandler) cartDTO() dto.CartDTO {
	items := h.cart.Items()
	lines := make([]dto.CartLineDTO, len(items))
	for i, l := range items {
		lines[i] = dto.CartLineDTO{
			Product:  dto.ConvertProductToDTO(l.Product, h.favorites.IsFavorite(l.Product.ProductID)),
			Size:     l.Size,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		}
	}
	total := h.cart.TotalPrice()
	return dto.CartDTO{
		Lines:             lines,
		TotalCount:        h.cart.TotalCount(),
		TotalPrice:        total,
		DisplayTotalPrice: pricing.Format(total),
	}
}
