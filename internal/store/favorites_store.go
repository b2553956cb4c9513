package store

import (
	"sort"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/domain/event"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/pubsub"
	"github.com/rs/zerolog"
)

// FavoritesStore owns the liked-product set, keyed by product id.
type FavoritesStore struct {
	events *pubsub.Broadcaster

	mu       sync.Mutex
	products map[string]model.Product
	logger   zerolog.Logger
}

func NewFavoritesStore(logger zerolog.Logger) *FavoritesStore {
	return &FavoritesStore{
		events:   pubsub.NewBroadcaster(),
		products: make(map[string]model.Product),
		logger:   logger.With().Str("store", "favorites").Logger(),
	}
}

// Subscribe registers fn to run synchronously after every mutation.
func (s *FavoritesStore) Subscribe(fn func(event.Event)) pubsub.Subscription {
	return s.events.Subscribe(fn)
}

func (s *FavoritesStore) Unsubscribe(sub pubsub.Subscription) {
	s.events.Unsubscribe(sub)
}

func (s *FavoritesStore) IsFavorite(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.products[productID]
	return ok
}

// Toggle flips membership and broadcasts regardless of direction.
// toggle 兩次等於沒動。
func (s *FavoritesStore) Toggle(product model.Product) {
	s.mu.Lock()
	_, ok := s.products[product.ProductID]
	if ok {
		delete(s.products, product.ProductID)
	} else {
		s.products[product.ProductID] = product
	}
	s.events.Enqueue(&event.FavoritesUpdatedEvent{
		BaseEvent: event.NewBaseEvent(),
		ProductID: product.ProductID,
		Favorite:  !ok,
	})
	s.mu.Unlock()

	s.events.Flush()
}

// Remove deletes the product from the set. Safe no-op if absent.
func (s *FavoritesStore) Remove(productID string) {
	s.mu.Lock()
	_, ok := s.products[productID]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.products, productID)
	s.events.Enqueue(&event.FavoritesUpdatedEvent{
		BaseEvent: event.NewBaseEvent(),
		ProductID: productID,
		Favorite:  false,
	})
	s.mu.Unlock()

	s.events.Flush()
}

// Items returns the favorite products sorted by product id.
func (s *FavoritesStore) Items() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProductID < out[j].ProductID
	})
	return out
}

func (s *FavoritesStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}
