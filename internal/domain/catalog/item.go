package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyItemID   = errors.New("item id cannot be empty")
	ErrEmptyItemName = errors.New("item name cannot be empty")
	ErrNegativePrice = errors.New("item price cannot be negative")
)

// Item is a purchasable catalog entry. Immutable once fetched; the catalog is
// read-only for the lifetime of a session.
type Item struct {
	id         string
	name       string
	priceCents int
}

func NewItem(id, name string, priceCents int) (Item, error) {
	if strings.TrimSpace(id) == "" {
		return Item{}, ErrEmptyItemID
	}
	if strings.TrimSpace(name) == "" {
		return Item{}, ErrEmptyItemName
	}
	if priceCents < 0 {
		return Item{}, ErrNegativePrice
	}

	return Item{
		id:         id,
		name:       name,
		priceCents: priceCents,
	}, nil
}

func (i Item) ID() string {
	return i.id
}

func (i Item) Name() string {
	return i.name
}

func (i Item) PriceCents() int {
	return i.priceCents
}

func (i Item) PriceEuros() float64 {
	return float64(i.priceCents) / 100.0
}
