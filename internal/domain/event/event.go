package event

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
)

type BaseEvent struct {
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBaseEvent() BaseEvent {
	return BaseEvent{
		EventID:   uuid.New().String(),
		CreatedAt: time.Now(),
	}
}

type EventType string

const (
	CartUpdatedEventName        EventType = "CartUpdated"
	CartClearedEventName        EventType = "CartCleared"
	FavoritesUpdatedEventName   EventType = "FavoritesUpdated"
	OrderPlacedEventName        EventType = "OrderPlaced"
	OrderStatusChangedEventName EventType = "OrderStatusChanged"
)

type Event interface {
	Type() EventType
}

// CartUpdatedEvent 購物車品項有增減 (add/increment/decrement/remove)
type CartUpdatedEvent struct {
	BaseEvent
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
}

func (e *CartUpdatedEvent) Type() EventType {
	return CartUpdatedEventName
}

// CartClearedEvent 整台購物車清空，只發一次
type CartClearedEvent struct {
	BaseEvent
}

func (e *CartClearedEvent) Type() EventType {
	return CartClearedEventName
}

type FavoritesUpdatedEvent struct {
	BaseEvent
	ProductID string `json:"product_id"`
	Favorite  bool   `json:"favorite"` // toggle 之後的狀態
}

func (e *FavoritesUpdatedEvent) Type() EventType {
	return FavoritesUpdatedEventName
}

type OrderPlacedEvent struct {
	BaseEvent
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
}

func (e *OrderPlacedEvent) Type() EventType {
	return OrderPlacedEventName
}

type OrderStatusChangedEvent struct {
	BaseEvent
	OrderID string            `json:"order_id"`
	Status  model.OrderStatus `json:"status"`
}

func (e *OrderStatusChangedEvent) Type() EventType {
	return OrderStatusChangedEventName
}
