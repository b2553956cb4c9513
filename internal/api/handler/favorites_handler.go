package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/store"
	"github.com/go-chi/chi/v5"
)

type FavoritesHandler struct {
	catalog   *catalog.Catalog
	favorites *store.FavoritesStore
}

func NewFavoritesHandler(c *catalog.Catalog, favorites *store.FavoritesStore) *FavoritesHandler {
	if c == nil {
		panic("catalog cannot be nil")
	}
	if favorites == nil {
		panic("favorites store cannot be nil")
	}
	return &FavoritesHandler{catalog: c, favorites: favorites}
}

func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.favorites.Items()
	out := make([]dto.ProductDTO, len(items))
	for i, p := range items {
		out[i] = dto.ConvertProductToDTO(p, true)
	}
	successJSON(w, out)
}

func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Product(chi.URLParam(r, "productID"))
	if err != nil {
		errorJSON(w, http.StatusNotFound, err.Error())
		return
	}
	h.favorites.Toggle(product)
	successJSON(w, dto.ConvertProductToDTO(product, h.favorites.IsFavorite(product.ProductID)))
}

func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.favorites.Remove(chi.URLParam(r, "productID"))
	successJSON(w, map[string]int{"count": h.favorites.Count()})
}
