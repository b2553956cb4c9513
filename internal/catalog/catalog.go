package catalog

import (
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

var ErrProductNotFound = errors.New("product not found")

// 各分類可選尺寸，查不到的分類一律回 One Size
var sizeOptions = map[string][]string{
	"tops":    {"XS", "S", "M", "L", "XL"},
	"bottoms": {"XS", "S", "M", "L", "XL"},
	"shoes":   {"38", "39", "40", "41", "42", "43", "44"},
}

var defaultSizeOptions = []string{"One Size"}

// SizeOptions returns the allowed sizes for a category.
func SizeOptions(category string) []string {
	opts, ok := sizeOptions[category]
	if !ok {
		opts = defaultSizeOptions
	}
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}

// Catalog 唯讀商品主檔，建立之後不會再變動
type Catalog struct {
	products []model.Product
	byID     map[string]model.Product
}

func New(products ...model.Product) *Catalog {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		byID:     make(map[string]model.Product, len(products)),
	}
	copy(c.products, products)
	for _, p := range products {
		c.byID[p.ProductID] = p
	}
	return c
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Product(productID string) (model.Product, error) {
	p, ok := c.byID[productID]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (c *Catalog) Count() int {
	return len(c.products)
}
