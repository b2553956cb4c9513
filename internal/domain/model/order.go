package model

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing" // 處理中
	OrderStatusShipped    OrderStatus = "Shipped"    // 已出貨
	OrderStatusDelivered  OrderStatus = "Delivered"  // 已送達，終態
)

// Next returns the status that follows s in the lifecycle.
// Delivered is terminal and returns itself.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case OrderStatusProcessing:
		return OrderStatusShipped
	case OrderStatusShipped:
		return OrderStatusDelivered
	default:
		return s
	}
}

// OrderLine 下單當下購物車品項的快照，之後購物車怎麼改都不影響
type OrderLine struct {
	Product  Product `json:"product"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
}

// Order 除了 Status 與對應時間戳之外，建立後即不可變
type Order struct {
	OrderID     string      `json:"order_id"`
	Lines       []OrderLine `json:"lines"`
	Amount      int64       `json:"amount"` // 下單時計算一次，不會重算
	OrderDate   time.Time   `json:"order_date"`
	Status      OrderStatus `json:"status"`
	ShippedAt   *time.Time  `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time  `json:"delivered_at,omitempty"`
}

// Clone returns a deep copy so callers cannot reach back into
// store-owned state through the Lines slice or timestamp pointers.
func (o Order) Clone() Order {
	cp := o
	cp.Lines = make([]OrderLine, len(o.Lines))
	copy(cp.Lines, o.Lines)
	if o.ShippedAt != nil {
		t := *o.ShippedAt
		cp.ShippedAt = &t
	}
	if o.DeliveredAt != nil {
		t := *o.DeliveredAt
		cp.DeliveredAt = &t
	}
	return cp
}
