package dto

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/pkg/pricing"
)

type ProductDTO struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	DisplayPrice string `json:"display_price"`
	ImageURL     string `json:"image_url"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Favorite     bool   `json:"favorite"`
}

type SizeOptionsDTO struct {
	ProductID string   `json:"product_id"`
	Sizes     []string `json:"sizes"`
}

type CartLineDTO struct {
	Product  ProductDTO `json:"product"`
	Size     string     `json:"size"`
	Quantity int        `json:"quantity"`
	Subtotal int64      `json:"subtotal"`
}

type CartDTO struct {
	Lines             []CartLineDTO `json:"lines"`
	TotalCount        int           `json:"total_count"`
	TotalPrice        int64         `json:"total_price"`
	DisplayTotalPrice string        `json:"display_total_price"`
}

type AddCartItemDTO struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
}

type OrderLineDTO struct {
	Product  ProductDTO `json:"product"`
	Size     string     `json:"size"`
	Quantity int        `json:"quantity"`
}

type OrderDTO struct {
	OrderID       string         `json:"order_id"`
	Lines         []OrderLineDTO `json:"lines"`
	Amount        int64          `json:"amount"`
	DisplayAmount string         `json:"display_amount"`
	OrderDate     time.Time      `json:"order_date"`
	Status        string         `json:"status"`
	ShippedAt     *time.Time     `json:"shipped_at,omitempty"`
	DeliveredAt   *time.Time     `json:"delivered_at,omitempty"`
}

func ConvertProductToDTO(p model.Product, favorite bool) ProductDTO {
	return ProductDTO{
		ProductID:    p.ProductID,
		Name:         p.Name,
		Price:        p.Price,
		DisplayPrice: pricing.Format(p.Price),
		ImageURL:     p.ImageURL,
		Description:  p.Description,
		Category:     p.Category,
		Favorite:     favorite,
	}
}

func ConvertOrderToDTO(o model.Order) OrderDTO {
	lines := make([]OrderLineDTO, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineDTO{
			Product:  ConvertProductToDTO(l.Product, false),
			Size:     l.Size,
			Quantity: l.Quantity,
		}
	}
	return OrderDTO{
		OrderID:       o.OrderID,
		Lines:         lines,
		Amount:        o.Amount,
		DisplayAmount: pricing.Format(o.Amount),
		OrderDate:     o.OrderDate,
		Status:        string(o.Status),
		ShippedAt:     o.ShippedAt,
		DeliveredAt:   o.DeliveredAt,
	}
}
