package store

import (
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/domain/event"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/pubsub"
	"github.com/rs/zerolog"
)

// CartStore owns the cart lines. Every operation is total: decrement
// or remove on an absent line is a safe no-op, never an error.
//
// 同一個 (ProductID, Size) 最多一條 line，重複 AddItem 只加數量。
// mutation 完成後才廣播，訂閱者看不到改到一半的狀態。
type CartStore struct {
	events *pubsub.Broadcaster

	mu     sync.Mutex
	lines  []model.CartLine // insertion order
	logger zerolog.Logger
}

func NewCartStore(logger zerolog.Logger) *CartStore {
	return &CartStore{
		events: pubsub.NewBroadcaster(),
		logger: logger.With().Str("store", "cart").Logger(),
	}
}

// Subscribe registers fn to run synchronously after every mutation.
func (s *CartStore) Subscribe(fn func(event.Event)) pubsub.Subscription {
	return s.events.Subscribe(fn)
}

func (s *CartStore) Unsubscribe(sub pubsub.Subscription) {
	s.events.Unsubscribe(sub)
}

// AddItem inserts a new line with quantity 1, or bumps the quantity of
// the existing (product, size) line by 1. Always succeeds.
func (s *CartStore) AddItem(product model.Product, size string) {
	s.mu.Lock()
	if i := s.indexOfLocked(product.ProductID, size); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, model.CartLine{
			Product:  product,
			Size:     size,
			Quantity: 1,
		})
	}
	s.enqueueUpdatedLocked(product.ProductID, size)
	s.mu.Unlock()

	s.logger.Debug().
		Str("product_id", product.ProductID).
		Str("size", size).
		Msg("cart item added")
	s.events.Flush()
}

// Increment adds 1 to the quantity of the (productID, size) line.
// No-op if the line is absent.
func (s *CartStore) Increment(productID, size string) {
	s.mu.Lock()
	i := s.indexOfLocked(productID, size)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines[i].Quantity++
	s.enqueueUpdatedLocked(productID, size)
	s.mu.Unlock()

	s.events.Flush()
}

// Decrement subtracts 1 from the quantity of the (productID, size)
// line. 數量只剩 1 時整條移除，不會留下 quantity 0 的 line。
func (s *CartStore) Decrement(productID, size string) {
	s.mu.Lock()
	i := s.indexOfLocked(productID, size)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	if s.lines[i].Quantity > 1 {
		s.lines[i].Quantity--
	} else {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
	s.enqueueUpdatedLocked(productID, size)
	s.mu.Unlock()

	s.events.Flush()
}

// Remove deletes the line unconditionally. Safe no-op if absent.
func (s *CartStore) Remove(productID, size string) {
	s.mu.Lock()
	i := s.indexOfLocked(productID, size)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.enqueueUpdatedLocked(productID, size)
	s.mu.Unlock()

	s.events.Flush()
}

// Clear empties the cart with a single broadcast.
func (s *CartStore) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.events.Enqueue(&event.CartClearedEvent{BaseEvent: event.NewBaseEvent()})
	s.mu.Unlock()

	s.events.Flush()
}

// Items returns a snapshot of the current lines. Mutating the returned
// slice does not touch the store.
func (s *CartStore) Items() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalCount is the sum of quantities across all lines.
func (s *CartStore) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of price*quantity in minor units, recomputed
// on every call.
func (s *CartStore) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var amount int64
	for _, l := range s.lines {
		amount += l.Subtotal()
	}
	return amount
}

func (s *CartStore) indexOfLocked(productID, size string) int {
	for i := range s.lines {
		if s.lines[i].Product.ProductID == productID && s.lines[i].Size == size {
			return i
		}
	}
	return -1
}

// enqueueUpdatedLocked 必須在持有 s.mu 時呼叫，
// 事件入隊順序才會等於 mutation 順序
func (s *CartStore) enqueueUpdatedLocked(productID, size string) {
	s.events.Enqueue(&event.CartUpdatedEvent{
		BaseEvent: event.NewBaseEvent(),
		ProductID: productID,
		Size:      size,
	})
}
