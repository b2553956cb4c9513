package model

// CartLine 購物車單一品項
// 同一個 (ProductID, Size) 在購物車內只會有一條 line
type CartLine struct {
	Product  Product `json:"product"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"` // 永遠 >= 1，歸零時整條移除
}

// Subtotal returns price * quantity in minor units.
func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}
