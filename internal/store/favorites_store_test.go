package store

import (
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/event"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestFavoritesStore() *FavoritesStore {
	return NewFavoritesStore(zerolog.Nop())
}

func TestFavoritesStore_ToggleIsItsOwnInverse(t *testing.T) {
	favorites := newTestFavoritesStore()

	require.False(t, favorites.IsFavorite(testTee.ProductID))

	favorites.Toggle(testTee)
	require.True(t, favorites.IsFavorite(testTee.ProductID))

	favorites.Toggle(testTee)
	require.False(t, favorites.IsFavorite(testTee.ProductID))
	require.Equal(t, 0, favorites.Count())
}

func TestFavoritesStore_ToggleBroadcastsBothDirections(t *testing.T) {
	favorites := newTestFavoritesStore()

	var got []bool
	favorites.Subscribe(func(evt event.Event) {
		e, ok := evt.(*event.FavoritesUpdatedEvent)
		require.True(t, ok)
		got = append(got, e.Favorite)
	})

	favorites.Toggle(testTee)
	favorites.Toggle(testTee)

	require.Equal(t, []bool{true, false}, got)
}

func TestFavoritesStore_RemoveAbsentIsNoop(t *testing.T) {
	favorites := newTestFavoritesStore()

	var calls int
	favorites.Subscribe(func(event.Event) { calls++ })

	favorites.Remove(testTee.ProductID)
	require.Equal(t, 0, calls)

	favorites.Toggle(testTee)
	favorites.Remove(testTee.ProductID)
	require.False(t, favorites.IsFavorite(testTee.ProductID))
	require.Equal(t, 2, calls)
}

func TestFavoritesStore_ItemsSortedByProductID(t *testing.T) {
	favorites := newTestFavoritesStore()
	favorites.Toggle(testHoodie)
	favorites.Toggle(testTee)

	items := favorites.Items()
	require.Len(t, items, 2)
	require.Equal(t, testTee.ProductID, items[0].ProductID)
	require.Equal(t, testHoodie.ProductID, items[1].ProductID)
}
