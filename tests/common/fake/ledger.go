//go:build unit

package fake

import (
	"context"
	"sync"

	"tab-kiosk/internal/domain/catalog"
)

// BookCall records one BookTransaction invocation.
type BookCall struct {
	DisplayID string
	ItemID    string
	Quantity  int
	Channel   string
}

// Ledger is a controllable LedgerGateway. The On* hooks run while the
// simulated request is in flight, so tests can hold responses open and
// release them out of order.
type Ledger struct {
	mu sync.Mutex

	Items    []catalog.Item
	ItemsErr error

	Balances   map[string]int
	BalanceErr error

	BookBalance *int
	BookErr     error

	OnBalance func(displayID string)
	OnBook    func(call BookCall)

	listCalls    int
	balanceCalls []string
	bookCalls    []BookCall
}

func NewLedger() *Ledger {
	return &Ledger{Balances: make(map[string]int)}
}

func (l *Ledger) ListActiveItems(_ context.Context) ([]catalog.Item, error) {
	l.mu.Lock()
	l.listCalls++
	items, err := l.Items, l.ItemsErr
	l.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return items, nil
}

func (l *Ledger) GetBalanceByDisplayID(_ context.Context, displayID string) (*int, error) {
	l.mu.Lock()
	l.balanceCalls = append(l.balanceCalls, displayID)
	hook := l.OnBalance
	err := l.BalanceErr
	balance, found := l.Balances[displayID]
	l.mu.Unlock()

	if hook != nil {
		hook(displayID)
	}
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &balance, nil
}

func (l *Ledger) BookTransaction(_ context.Context, displayID, itemID string, quantity int, channel string) (*int, error) {
	call := BookCall{DisplayID: displayID, ItemID: itemID, Quantity: quantity, Channel: channel}

	l.mu.Lock()
	l.bookCalls = append(l.bookCalls, call)
	hook := l.OnBook
	balance, err := l.BookBalance, l.BookErr
	l.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if err != nil {
		return nil, err
	}
	return balance, nil
}

func (l *Ledger) ListCalls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.listCalls
}

func (l *Ledger) BalanceCalls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.balanceCalls...)
}

func (l *Ledger) BookCalls() []BookCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]BookCall(nil), l.bookCalls...)
}

func (l *Ledger) SetItemsErr(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ItemsErr = err
}
