package catalog

import (
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestSizeOptions(t *testing.T) {
	require.Equal(t, []string{"XS", "S", "M", "L", "XL"}, SizeOptions("tops"))
	require.Equal(t, []string{"XS", "S", "M", "L", "XL"}, SizeOptions("bottoms"))
	require.Contains(t, SizeOptions("shoes"), "42")

	// 未知分類一律 One Size
	require.Equal(t, []string{"One Size"}, SizeOptions("accessories"))
	require.Equal(t, []string{"One Size"}, SizeOptions(""))
}

func TestSizeOptions_ReturnedSliceIsDetached(t *testing.T) {
	opts := SizeOptions("tops")
	opts[0] = "mutated"
	require.Equal(t, "XS", SizeOptions("tops")[0])
}

func TestCatalog_Lookup(t *testing.T) {
	c := New(
		model.Product{ProductID: "p-1", Name: "Tee", Price: 1990, Category: "tops"},
		model.Product{ProductID: "p-2", Name: "Sneaker", Price: 6990, Category: "shoes"},
	)

	require.Equal(t, 2, c.Count())

	p, err := c.Product("p-2")
	require.NoError(t, err)
	require.Equal(t, "Sneaker", p.Name)

	_, err = c.Product("p-404")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalog_ProductsKeepsOrder(t *testing.T) {
	c := New(
		model.Product{ProductID: "p-2"},
		model.Product{ProductID: "p-1"},
	)
	products := c.Products()
	require.Equal(t, "p-2", products[0].ProductID)
	require.Equal(t, "p-1", products[1].ProductID)
}

func TestDefaultCatalogSeed(t *testing.T) {
	c := Default()
	require.NotZero(t, c.Count())
	for _, p := range c.Products() {
		require.NotEmpty(t, p.ProductID)
		require.NotEmpty(t, p.Name)
		require.Positive(t, p.Price)
		require.NotEmpty(t, SizeOptions(p.Category))
	}
}
