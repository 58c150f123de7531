//go:build unit

package session_test

import (
	"testing"

	"tab-kiosk/internal/domain/session"
	"tab-kiosk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalCents(t *testing.T) {
	t.Run("no selection costs nothing", func(t *testing.T) {
		assert.Equal(t, 0, session.TotalCents(nil, session.NewQuantity(5)))
	})

	t.Run("total is price times quantity across the whole range", func(t *testing.T) {
		for _, price := range []int{0, 1, 150, 999} {
			item := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) { b.PriceCents = price }).MustBuild()
			for qty := session.MinQuantity; qty <= session.MaxQuantity; qty++ {
				got := session.TotalCents(&item, session.NewQuantity(qty))
				assert.Equal(t, price*qty, got, "price=%d qty=%d", price, qty)
			}
		}
	})
}

func TestAfterBookingCents(t *testing.T) {
	item := builder.NewItemBuilder().MustBuild() // 150 cents

	t.Run("absent without a live balance", func(t *testing.T) {
		assert.Nil(t, session.AfterBookingCents(session.NoBalance(), &item, session.NewQuantity(2)))
		assert.Nil(t, session.AfterBookingCents(session.PendingBalance(), &item, session.NewQuantity(2)))
		assert.Nil(t, session.AfterBookingCents(session.NotFoundBalance(), &item, session.NewQuantity(2)))
	})

	t.Run("absent without a selection", func(t *testing.T) {
		assert.Nil(t, session.AfterBookingCents(session.FoundBalance(1000), nil, session.NewQuantity(2)))
	})

	t.Run("balance minus total when both present", func(t *testing.T) {
		after := session.AfterBookingCents(session.FoundBalance(1000), &item, session.NewQuantity(2))
		require.NotNil(t, after)
		assert.Equal(t, 700, *after)
	})

	t.Run("may go negative, the ledger decides", func(t *testing.T) {
		after := session.AfterBookingCents(session.FoundBalance(100), &item, session.NewQuantity(1))
		require.NotNil(t, after)
		assert.Equal(t, -50, *after)
	})
}

func TestSelectedItem(t *testing.T) {
	items := builder.Catalog()

	t.Run("resolves against the loaded catalog", func(t *testing.T) {
		selected := session.SelectedItem(items, "p1")
		require.NotNil(t, selected)
		assert.Equal(t, "Cola", selected.Name())
	})

	t.Run("weak reference stays unresolved for unknown ids", func(t *testing.T) {
		assert.Nil(t, session.SelectedItem(items, "ghost"))
	})

	t.Run("no selection before the catalog loads", func(t *testing.T) {
		assert.Nil(t, session.SelectedItem(nil, "p1"))
	})
}

func TestBalanceKnown(t *testing.T) {
	cents, known := session.FoundBalance(1000).Known()
	assert.True(t, known)
	assert.Equal(t, 1000, cents)

	for _, b := range []session.Balance{session.NoBalance(), session.PendingBalance(), session.NotFoundBalance()} {
		_, known := b.Known()
		assert.False(t, known, "status %s", b.Status)
	}
}
