package pubsub

import (
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/domain/event"
)

// Subscription 訂閱憑證，Unsubscribe 時使用
type Subscription struct {
	id uint64
}

type subscriber struct {
	id uint64
	fn func(event.Event)
}

// Broadcaster is the notification channel every store exposes.
// Subscribers are invoked synchronously, in registration order, after
// each successful mutation.
//
// Publish 若在 callback 內被重入 (同一條 goroutine 的訂閱者又觸發了
// mutation)，事件會排進 pending queue，由最外層的 Publish 依序送完，
// 不會遞迴廣播也不會 deadlock。
type Broadcaster struct {
	mu         sync.Mutex
	nextID     uint64
	subs       []subscriber // registration order
	publishing bool
	pending    []event.Event
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers fn and returns a handle for Unsubscribe.
func (b *Broadcaster) Subscribe(fn func(event.Event)) Subscription {
	if fn == nil {
		panic("subscriber callback cannot be nil")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub := subscriber{id: b.nextID, fn: fn}
	b.subs = append(b.subs, sub)
	return Subscription{id: sub.id}
}

// Unsubscribe removes the subscription. Safe to call once per handle;
// an already removed handle is a no-op.
func (b *Broadcaster) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.subs {
		if b.subs[i].id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers evt to all current subscribers. If another publish
// is already draining (re-entrant callback or another goroutine), the
// event is queued and delivered by the active publisher, preserving
// per-broadcaster ordering.
func (b *Broadcaster) Publish(evt event.Event) {
	b.Enqueue(evt)
	b.Flush()
}

// Enqueue appends evt to the pending queue without delivering it.
// Stores呼叫時仍持有自己的 mutex，入隊順序因此等於 mutation 順序，
// 訂閱者不會看到跟實際變更相反的事件順序。
func (b *Broadcaster) Enqueue(evt event.Event) {
	b.mu.Lock()
	b.pending = append(b.pending, evt)
	b.mu.Unlock()
}

// Flush delivers every queued event. If another flush is already
// draining, this call returns immediately and the active drainer
// picks up the new events.
func (b *Broadcaster) Flush() {
	b.mu.Lock()
	if b.publishing {
		b.mu.Unlock()
		return
	}
	b.publishing = true

	for len(b.pending) > 0 {
		next := b.pending[0]
		b.pending = b.pending[1:]

		// 先照註冊順序抄一份 id，逐一送達前再確認訂閱仍然存在，
		// callback 內 Unsubscribe 的訂閱者不會再收到事件
		ids := make([]uint64, len(b.subs))
		for i, s := range b.subs {
			ids[i] = s.id
		}

		for _, id := range ids {
			fn := b.lookupLocked(id)
			if fn == nil {
				continue
			}
			b.mu.Unlock()
			fn(next)
			b.mu.Lock()
		}
	}

	b.publishing = false
	b.mu.Unlock()
}

// SubscriberCount returns the number of live subscriptions.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Broadcaster) lookupLocked(id uint64) func(event.Event) {
	for i := range b.subs {
		if b.subs[i].id == id {
			return b.subs[i].fn
		}
	}
	return nil
}
