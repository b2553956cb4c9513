package handler

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/store"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalog   *catalog.Catalog
	favorites *store.FavoritesStore
}

func NewCatalogHandler(c *catalog.Catalog, favorites *store.FavoritesStore) *CatalogHandler {
	if c == nil {
		panic("catalog cannot be nil")
	}
	if favorites == nil {
		panic("favorites store cannot be nil")
	}
	return &CatalogHandler{catalog: c, favorites: favorites}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products()
	out := make([]dto.ProductDTO, len(products))
	for i, p := range products {
		out[i] = dto.ConvertProductToDTO(p, h.favorites.IsFavorite(p.ProductID))
	}
	successJSON(w, out)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Product(chi.URLParam(r, "productID"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, err.Error())
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	successJSON(w, dto.ConvertProductToDTO(p, h.favorites.IsFavorite(p.ProductID)))
}

func (h *CatalogHandler) GetSizeOptions(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Product(chi.URLParam(r, "productID"))
	if err != nil {
		errorJSON(w, http.StatusNotFound, err.Error())
		return
	}
	successJSON(w, dto.SizeOptionsDTO{
		ProductID: p.ProductID,
		Sizes:     catalog.SizeOptions(p.Category),
	})
}
