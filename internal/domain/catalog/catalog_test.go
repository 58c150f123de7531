//go:build unit

package catalog_test

import (
	"testing"

	"tab-kiosk/internal/domain/catalog"
	"tab-kiosk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		item, err := catalog.NewItem("p1", "Cola", 150)
		require.NoError(t, err)

		assert.Equal(t, "p1", item.ID())
		assert.Equal(t, "Cola", item.Name())
		assert.Equal(t, 150, item.PriceCents())
		assert.InDelta(t, 1.5, item.PriceEuros(), 0.0001)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name       string
			id         string
			itemName   string
			priceCents int
			errIs      error
		}{
			{name: "empty id", id: "", itemName: "Cola", priceCents: 150, errIs: catalog.ErrEmptyItemID},
			{name: "whitespace id", id: "   ", itemName: "Cola", priceCents: 150, errIs: catalog.ErrEmptyItemID},
			{name: "empty name", id: "p1", itemName: "", priceCents: 150, errIs: catalog.ErrEmptyItemName},
			{name: "negative price", id: "p1", itemName: "Cola", priceCents: -1, errIs: catalog.ErrNegativePrice},
			{name: "zero price is valid", id: "p1", itemName: "Wasser", priceCents: 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := catalog.NewItem(tc.id, tc.itemName, tc.priceCents)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestFilter(t *testing.T) {
	items := builder.Catalog()

	t.Run("empty query returns the input slice unchanged", func(t *testing.T) {
		filtered := catalog.Filter(items, "")
		// Identity, not a copy: empty filter must not touch the list.
		assert.Same(t, &items[0], &filtered[0])
		assert.Len(t, filtered, len(items))
	})

	t.Run("whitespace query is treated as empty", func(t *testing.T) {
		filtered := catalog.Filter(items, "   ")
		assert.Len(t, filtered, len(items))
	})

	t.Run("case-insensitive substring match", func(t *testing.T) {
		filtered := catalog.Filter(items, "COLA")
		require.Len(t, filtered, 1)
		assert.Equal(t, "p1", filtered[0].ID())
	})

	t.Run("matches anywhere in the name", func(t *testing.T) {
		filtered := catalog.Filter(items, "mate")
		require.Len(t, filtered, 1)
		assert.Equal(t, "p3", filtered[0].ID())
	})

	t.Run("preserves catalog order", func(t *testing.T) {
		filtered := catalog.Filter(items, "e")
		require.Len(t, filtered, 2)
		assert.Equal(t, "p2", filtered[0].ID())
		assert.Equal(t, "p3", filtered[1].ID())
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		assert.Empty(t, catalog.Filter(items, "bier"))
	})
}

func TestFindByID(t *testing.T) {
	items := builder.Catalog()

	t.Run("resolves a loaded item", func(t *testing.T) {
		item, ok := catalog.FindByID(items, "p2")
		require.True(t, ok)
		assert.Equal(t, "Apfelschorle", item.Name())
	})

	t.Run("unknown id is absent", func(t *testing.T) {
		_, ok := catalog.FindByID(items, "nope")
		assert.False(t, ok)
	})

	t.Run("empty id is absent", func(t *testing.T) {
		_, ok := catalog.FindByID(items, "")
		assert.False(t, ok)
	})
}
