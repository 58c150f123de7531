package usecase

import (
	"context"
	"sync"

	"tab-kiosk/internal/domain/catalog"
	"tab-kiosk/internal/pkg/errs"
)

var ErrCatalogUnavailable = errs.New("catalog unavailable")

// CatalogStore caches the active item list for the lifetime of the process.
// The first successful Load pins the list; a failed load is not cached, so
// the next caller fetches again. There is no automatic retry.
type CatalogStore struct {
	ledger LedgerGateway

	loadMu sync.Mutex // serializes fetches so concurrent first loads collapse
	mu     sync.RWMutex
	items  []catalog.Item
	loaded bool
}

func NewCatalogStore(ledger LedgerGateway) *CatalogStore {
	return &CatalogStore{ledger: ledger}
}

func (s *CatalogStore) Load(ctx context.Context) ([]catalog.Item, error) {
	if items, ok := s.Items(); ok {
		return items, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	// Another caller may have finished the load while we waited.
	if items, ok := s.Items(); ok {
		return items, nil
	}

	items, err := s.ledger.ListActiveItems(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()

	return items, nil
}

// Items returns the cached list in ledger order, without triggering a load.
func (s *CatalogStore) Items() ([]catalog.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, s.loaded
}

// Filter applies the case-insensitive substring filter to the cached list.
func (s *CatalogStore) Filter(query string) ([]catalog.Item, bool) {
	items, ok := s.Items()
	if !ok {
		return nil, false
	}
	return catalog.Filter(items, query), true
}

// FindItem resolves an id against the cached list. False when the catalog is
// not loaded or the id is unknown.
func (s *CatalogStore) FindItem(id string) (catalog.Item, bool) {
	items, ok := s.Items()
	if !ok {
		return catalog.Item{}, false
	}
	return catalog.FindByID(items, id)
}
