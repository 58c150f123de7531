//go:build unit

package builder

import (
	"fmt"

	"tab-kiosk/internal/domain/catalog"
)

type ItemBuilder struct {
	ID         string
	Name       string
	PriceCents int
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:         "p1",
		Name:       "Cola",
		PriceCents: 150,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) Build() (catalog.Item, error) {
	return catalog.NewItem(b.ID, b.Name, b.PriceCents)
}

func (b *ItemBuilder) MustBuild() catalog.Item {
	item, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("invalid test item: %v", err))
	}
	return item
}

// Catalog builds a small fixed catalog for filter and selection tests.
func Catalog() []catalog.Item {
	return []catalog.Item{
		NewItemBuilder().MustBuild(),
		NewItemBuilder().With(func(b *ItemBuilder) { b.ID = "p2"; b.Name = "Apfelschorle"; b.PriceCents = 120 }).MustBuild(),
		NewItemBuilder().With(func(b *ItemBuilder) { b.ID = "p3"; b.Name = "Club-Mate"; b.PriceCents = 200 }).MustBuild(),
	}
}
