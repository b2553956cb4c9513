package catalog

import "github.com/RoyceAzure/lab/storefront/internal/domain/model"

// Default returns the demo catalog. Prices are in minor units.
func Default() *Catalog {
	return New(
		model.Product{
			ProductID:   "p-1001",
			Name:        "Classic Crewneck Tee",
			Price:       1990,
			ImageURL:    "/images/crewneck-tee.png",
			Description: "Heavyweight cotton tee with a relaxed fit.",
			Category:    "tops",
		},
		model.Product{
			ProductID:   "p-1002",
			Name:        "Oversized Hoodie",
			Price:       4990,
			ImageURL:    "/images/oversized-hoodie.png",
			Description: "Brushed fleece hoodie with dropped shoulders.",
			Category:    "tops",
		},
		model.Product{
			ProductID:   "p-2001",
			Name:        "Tapered Chino Pants",
			Price:       3990,
			ImageURL:    "/images/tapered-chino.png",
			Description: "Stretch twill chinos, tapered below the knee.",
			Category:    "bottoms",
		},
		model.Product{
			ProductID:   "p-2002",
			Name:        "Wide-Leg Denim",
			Price:       5490,
			ImageURL:    "/images/wide-leg-denim.png",
			Description: "Rigid denim with a high rise and wide leg.",
			Category:    "bottoms",
		},
		model.Product{
			ProductID:   "p-3001",
			Name:        "Court Low Sneaker",
			Price:       6990,
			ImageURL:    "/images/court-low.png",
			Description: "Leather low-top with a vulcanized sole.",
			Category:    "shoes",
		},
		model.Product{
			ProductID:   "p-9001",
			Name:        "Canvas Tote Bag",
			Price:       1490,
			ImageURL:    "/images/canvas-tote.png",
			Description: "14oz canvas tote with interior pocket.",
			Category:    "accessories",
		},
	)
}
