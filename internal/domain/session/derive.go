package session

import "tab-kiosk/internal/domain/catalog"

// Pure derivations over the session state. None of these touch the ledger;
// the prospective after-booking balance is a preview only and the ledger
// remains the sole authority on whether the debit is permitted.

// TotalCents is the prospective cost of the current selection. Zero when no
// item is selected.
func TotalCents(item *catalog.Item, qty Quantity) int {
	if item == nil {
		return 0
	}
	return item.PriceCents() * qty.Value()
}

// AfterBookingCents is the prospective balance after committing the current
// selection. Absent unless both a live balance and a selected item exist.
func AfterBookingCents(balance Balance, item *catalog.Item, qty Quantity) *int {
	cents, known := balance.Known()
	if !known || item == nil {
		return nil
	}
	after := cents - TotalCents(item, qty)
	return &after
}

// SelectedItem resolves the weakly-referenced selection against the loaded
// catalog. An id the catalog does not (yet) contain yields no item.
func SelectedItem(items []catalog.Item, selectedID string) *catalog.Item {
	item, ok := catalog.FindByID(items, selectedID)
	if !ok {
		return nil
	}
	return &item
}
