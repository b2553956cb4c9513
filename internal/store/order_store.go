package store

import (
	"sync"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/event"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/pubsub"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultProcessingDuration = 10 * time.Second
	DefaultShippedDuration    = 10 * time.Second
)

// OrderStore owns every placed order and drives each one through
// Processing -> Shipped -> Delivered on two timers scheduled at
// placement time. Both fire offsets are computed from the creation
// time, not chained off each other.
//
// 訂單建立後只有 Status 與對應時間戳會變，其餘欄位不可變。
// Close 之後所有未觸發的 timer 都會取消，晚到的 fire 靜默略過。
type OrderStore struct {
	events *pubsub.Broadcaster

	processingDuration time.Duration
	shippedDuration    time.Duration

	mu     sync.Mutex
	orders []*model.Order // creation order
	timers map[string][]*time.Timer
	closed bool
	logger zerolog.Logger
}

func NewOrderStore(processingDuration, shippedDuration time.Duration, logger zerolog.Logger) *OrderStore {
	if processingDuration <= 0 {
		processingDuration = DefaultProcessingDuration
	}
	if shippedDuration <= 0 {
		shippedDuration = DefaultShippedDuration
	}
	return &OrderStore{
		events:             pubsub.NewBroadcaster(),
		processingDuration: processingDuration,
		shippedDuration:    shippedDuration,
		timers:             make(map[string][]*time.Timer),
		logger:             logger.With().Str("store", "order").Logger(),
	}
}

// Subscribe registers fn to run synchronously after every mutation,
// including the timer-driven status transitions.
func (s *OrderStore) Subscribe(fn func(event.Event)) pubsub.Subscription {
	return s.events.Subscribe(fn)
}

func (s *OrderStore) Unsubscribe(sub pubsub.Subscription) {
	s.events.Unsubscribe(sub)
}

// Place snapshots lines into a new Processing order, appends it,
// schedules the Shipped and Delivered transitions and broadcasts.
// The caller is responsible for clearing its cart afterwards; the
// order store never touches the cart.
//
// 快照是深拷貝，下單後購物車再怎麼改都不影響這張訂單。
func (s *OrderStore) Place(lines []model.CartLine, amount int64) model.Order {
	snapshot := make([]model.OrderLine, len(lines))
	for i, l := range lines {
		snapshot[i] = model.OrderLine{
			Product:  l.Product,
			Size:     l.Size,
			Quantity: l.Quantity,
		}
	}

	order := &model.Order{
		OrderID:   uuid.New().String(),
		Lines:     snapshot,
		Amount:    amount,
		OrderDate: time.Now(),
		Status:    model.OrderStatusProcessing,
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	if !s.closed {
		orderID := order.OrderID
		s.timers[orderID] = []*time.Timer{
			time.AfterFunc(s.processingDuration, func() {
				s.transition(orderID, model.OrderStatusShipped)
			}),
			time.AfterFunc(s.processingDuration+s.shippedDuration, func() {
				s.transition(orderID, model.OrderStatusDelivered)
			}),
		}
	}
	result := order.Clone()
	s.events.Enqueue(&event.OrderPlacedEvent{
		BaseEvent: event.NewBaseEvent(),
		OrderID:   result.OrderID,
		Amount:    result.Amount,
	})
	s.mu.Unlock()

	s.logger.Info().
		Str("order_id", result.OrderID).
		Int64("amount", result.Amount).
		Int("lines", len(result.Lines)).
		Msg("order placed")

	s.events.Flush()
	return result
}

// Orders returns a most-recent-first snapshot of every order.
func (s *OrderStore) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.orders))
	for i, o := range s.orders {
		out[len(s.orders)-1-i] = o.Clone()
	}
	return out
}

// Order returns a snapshot of a single order by id.
func (s *OrderStore) Order(orderID string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.OrderID == orderID {
			return o.Clone(), true
		}
	}
	return model.Order{}, false
}

// Count is the number of orders ever placed.
func (s *OrderStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// PendingTransitions is the number of scheduled transition timers the
// store is still tracking. Zero once every order is Delivered or the
// store is closed.
func (s *OrderStore) PendingTransitions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, ts := range s.timers {
		n += len(ts)
	}
	return n
}

// Close cancels every outstanding transition timer. A timer that
// already fired and is waiting on the lock will see closed and do
// nothing. Idempotent.
func (s *OrderStore) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	var stopped int
	for _, ts := range s.timers {
		for _, t := range ts {
			if t.Stop() {
				stopped++
			}
		}
	}
	s.timers = make(map[string][]*time.Timer)
	s.mu.Unlock()

	s.logger.Info().Int("cancelled_timers", stopped).Msg("order store closed")
}

// transition 只改 Status 與對應時間戳，其餘欄位不動。
//
// 兩個 timer 是獨立 goroutine，搶到 s.mu 的先後沒有保證。狀態只能
// 沿著 Next() 前進：不是下一個狀態的 fire 一律丟棄，所以狀態永遠不會
// 倒退。唯一的例外是 Delivered 先搶到鎖 — Shipped 的排程時間必定更早、
// 期限必定已過，這時先補上 Shipped 再送達，之後遲到的 Shipped fire
// 會被同一個 guard 丟棄。
func (s *OrderStore) transition(orderID string, status model.OrderStatus) {
	now := time.Now()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	var order *model.Order
	for _, o := range s.orders {
		if o.OrderID == orderID {
			order = o
			break
		}
	}
	if order == nil {
		s.mu.Unlock()
		return
	}
	if order.Status.Next() != status {
		catchUp := status == model.OrderStatusDelivered &&
			order.Status == model.OrderStatusProcessing
		if !catchUp {
			s.mu.Unlock()
			return
		}
		order.Status = model.OrderStatusShipped
		order.ShippedAt = &now
		s.events.Enqueue(&event.OrderStatusChangedEvent{
			BaseEvent: event.NewBaseEvent(),
			OrderID:   orderID,
			Status:    model.OrderStatusShipped,
		})
	}
	order.Status = status
	switch status {
	case model.OrderStatusShipped:
		order.ShippedAt = &now
	case model.OrderStatusDelivered:
		order.DeliveredAt = &now
		// 終態，該訂單不會再有排程
		delete(s.timers, orderID)
	}
	s.events.Enqueue(&event.OrderStatusChangedEvent{
		BaseEvent: event.NewBaseEvent(),
		OrderID:   orderID,
		Status:    status,
	})
	s.mu.Unlock()

	s.logger.Info().
		Str("order_id", orderID).
		Str("status", string(status)).
		Msg("order status changed")

	s.events.Flush()
}
