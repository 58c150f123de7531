package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tab-kiosk/internal/domain/session"
)

// DefaultDebounce is the idle window a typed display ID must survive before
// a lookup is issued.
const DefaultDebounce = 350 * time.Millisecond

// BalanceWatcher keeps a live preview of the balance for the display ID the
// holder is typing. Two mechanisms keep it race-safe: a debounce timer so
// only the last value typed within an idle window triggers a lookup, and a
// generation counter so a response is applied only while its request is
// still current. A slow response for a superseded ID must never clobber the
// value for a newer one, even when responses return out of order.
type BalanceWatcher struct {
	ledger   LedgerGateway
	debounce time.Duration

	mu      sync.Mutex
	gen     uint64
	timer   *time.Timer
	current session.Balance
}

func NewBalanceWatcher(ledger LedgerGateway, debounce time.Duration) *BalanceWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &BalanceWatcher{
		ledger:   ledger,
		debounce: debounce,
		current:  session.NoBalance(),
	}
}

// SetDisplayID reacts to a keystroke. Every call supersedes the previous
// one: the pending debounce timer is cancelled and any in-flight lookup is
// invalidated. An empty (trimmed) ID clears the preview immediately and
// issues no request.
func (w *BalanceWatcher) SetDisplayID(displayID string) {
	id := strings.TrimSpace(displayID)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	w.stopTimerLocked()

	if id == "" {
		w.current = session.NoBalance()
		return
	}

	w.current = session.PendingBalance()
	gen := w.gen
	w.timer = time.AfterFunc(w.debounce, func() {
		w.lookup(gen, id)
	})
}

// ApplyAuthoritative installs a committed balance directly, bypassing the
// debounce path, and invalidates any in-flight lookup so it cannot
// overwrite the authoritative value afterwards.
func (w *BalanceWatcher) ApplyAuthoritative(balanceCents *int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	w.stopTimerLocked()

	if balanceCents == nil {
		w.current = session.NotFoundBalance()
		return
	}
	w.current = session.FoundBalance(*balanceCents)
}

func (w *BalanceWatcher) Current() session.Balance {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Stop cancels any pending debounce timer. Called on session eviction.
func (w *BalanceWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
	w.stopTimerLocked()
}

func (w *BalanceWatcher) lookup(gen uint64, displayID string) {
	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	balance, err := w.ledger.GetBalanceByDisplayID(context.Background(), displayID)

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.gen {
		// Superseded while in flight; drop the stale response.
		return
	}

	if err != nil {
		slog.Warn("balance lookup failed", "error", err)
		w.current = session.NotFoundBalance()
		return
	}
	if balance == nil {
		w.current = session.NotFoundBalance()
		return
	}
	w.current = session.FoundBalance(*balance)
}

func (w *BalanceWatcher) stopTimerLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
