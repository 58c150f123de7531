package catalog

import "strings"

// Filter returns the items whose name contains query as a case-insensitive
// substring, preserving order. An empty or whitespace-only query returns the
// input slice unchanged.
func Filter(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name()), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FindByID resolves an item by id. The second return value is false when the
// id does not reference a loaded item.
func FindByID(items []Item, id string) (Item, bool) {
	if id == "" {
		return Item{}, false
	}
	for _, item := range items {
		if item.ID() == id {
			return item, true
		}
	}
	return Item{}, false
}
