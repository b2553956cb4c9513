package pubsub

import (
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/event"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_RegistrationOrder(t *testing.T) {
	b := NewBroadcaster()

	var got []string
	b.Subscribe(func(event.Event) { got = append(got, "first") })
	b.Subscribe(func(event.Event) { got = append(got, "second") })
	b.Subscribe(func(event.Event) { got = append(got, "third") })

	b.Publish(&event.CartClearedEvent{BaseEvent: event.NewBaseEvent()})

	require.Equal(t, []string{"first", "second", "third"}, got)
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := NewBroadcaster()

	var calls int
	sub := b.Subscribe(func(event.Event) { calls++ })

	b.Publish(&event.CartClearedEvent{BaseEvent: event.NewBaseEvent()})
	require.Equal(t, 1, calls)

	b.Unsubscribe(sub)
	b.Publish(&event.CartClearedEvent{BaseEvent: event.NewBaseEvent()})
	require.Equal(t, 1, calls)

	// 同一個 handle 再退訂一次是 no-op
	b.Unsubscribe(sub)
	require.Equal(t, 0, b.SubscriberCount())
}

func TestBroadcaster_UnsubscribeDuringBroadcast(t *testing.T) {
	b := NewBroadcaster()

	var secondCalls int
	var sub2 Subscription
	b.Subscribe(func(event.Event) { b.Unsubscribe(sub2) })
	sub2 = b.Subscribe(func(event.Event) { secondCalls++ })

	b.Publish(&event.CartClearedEvent{BaseEvent: event.NewBaseEvent()})
	require.Equal(t, 0, secondCalls)
}

func TestBroadcaster_ReentrantPublishIsQueued(t *testing.T) {
	b := NewBroadcaster()

	var got []event.EventType
	b.Subscribe(func(evt event.Event) {
		got = append(got, evt.Type())
		if evt.Type() == event.CartUpdatedEventName {
			// callback 內再觸發一次廣播，必須排隊而不是遞迴
			b.Publish(&event.CartClearedEvent{BaseEvent: event.NewBaseEvent()})
		}
	})

	b.Publish(&event.CartUpdatedEvent{BaseEvent: event.NewBaseEvent(), ProductID: "p-1", Size: "M"})

	require.Equal(t, []event.EventType{
		event.CartUpdatedEventName,
		event.CartClearedEventName,
	}, got)
}

func TestBroadcaster_EnqueueDeliversOnFlush(t *testing.T) {
	b := NewBroadcaster()

	var calls int
	b.Subscribe(func(event.Event) { calls++ })

	// Enqueue 只入隊，不送達
	b.Enqueue(&event.CartClearedEvent{BaseEvent: event.NewBaseEvent()})
	b.Enqueue(&event.CartClearedEvent{BaseEvent: event.NewBaseEvent()})
	require.Equal(t, 0, calls)

	b.Flush()
	require.Equal(t, 2, calls)

	// 沒有 pending 事件時 Flush 是 no-op
	b.Flush()
	require.Equal(t, 2, calls)
}

func TestBroadcaster_EnqueueOrderIsDeliveryOrder(t *testing.T) {
	b := NewBroadcaster()

	var got []event.EventType
	b.Subscribe(func(evt event.Event) { got = append(got, evt.Type()) })

	b.Enqueue(&event.CartUpdatedEvent{BaseEvent: event.NewBaseEvent(), ProductID: "p-1", Size: "M"})
	b.Enqueue(&event.CartClearedEvent{BaseEvent: event.NewBaseEvent()})
	b.Flush()

	require.Equal(t, []event.EventType{
		event.CartUpdatedEventName,
		event.CartClearedEventName,
	}, got)
}

func TestBroadcaster_NilCallbackPanics(t *testing.T) {
	b := NewBroadcaster()
	require.Panics(t, func() { b.Subscribe(nil) })
}
