package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tab-kiosk/internal/domain/catalog"
	"tab-kiosk/internal/domain/session"
	"tab-kiosk/internal/pkg/clock"
	"tab-kiosk/internal/pkg/errs"
)

var (
	ErrValidation     = errs.New("display id and product selection required")
	ErrCommitInFlight = errs.New("booking already in flight")
	ErrCommitFailed   = errs.New("booking rejected by ledger")
)

// BookingChannel tags transactions committed through this kiosk.
const BookingChannel = "web"

// SessionController is the booking session state machine for one kiosk
// client. Three asynchronous activities can overlap (catalog load, balance
// lookup, commit); each owns its slice of the state, and ordering is
// enforced by the watcher's generation counter and the in-flight commit
// guard rather than by queueing.
type SessionController struct {
	catalog *CatalogStore
	balance *BalanceWatcher
	ledger  LedgerGateway
	prefs   PreferenceStore
	clock   clock.Clock

	deviceKey string

	mu              sync.Mutex
	displayID       string
	rememberID      bool
	selectedItemID  string // weak reference, resolved at derivation time
	quantity        session.Quantity
	query           string
	bookingInFlight bool
	lastResult      *session.CommitOutcome
	lastSeen        time.Time
}

// SessionView is an immutable snapshot of the session with all derived
// values resolved.
type SessionView struct {
	DisplayID         string
	RememberID        bool
	Balance           session.Balance
	SelectedItem      *catalog.Item
	Quantity          int
	Query             string
	TotalCents        int
	AfterBookingCents *int
	BookingInFlight   bool
	LastResult        *session.CommitOutcome
}

func NewSessionController(
	catalogStore *CatalogStore,
	ledger LedgerGateway,
	prefs PreferenceStore,
	clk clock.Clock,
	debounce time.Duration,
	deviceKey string,
) *SessionController {
	return &SessionController{
		catalog:   catalogStore,
		balance:   NewBalanceWatcher(ledger, debounce),
		ledger:    ledger,
		prefs:     prefs,
		clock:     clk,
		deviceKey: deviceKey,
		quantity:  session.DefaultQuantity(),
		lastSeen:  clk.Now(),
	}
}

// Seed restores the remembered display ID for this device, if any, and
// starts the balance preview for it.
func (c *SessionController) Seed(ctx context.Context) {
	displayID, ok, err := c.prefs.LoadDisplayID(ctx, c.deviceKey)
	if err != nil {
		slog.Warn("failed to load remembered display id", "error", err)
		return
	}
	if !ok || displayID == "" {
		return
	}

	c.mu.Lock()
	c.displayID = displayID
	c.rememberID = true
	c.mu.Unlock()

	c.balance.SetDisplayID(displayID)
}

// SeedSelection applies a deep-link preselect. The reference is weak: an id
// the catalog never loads simply stays unresolved and is ignored by every
// derivation.
func (c *SessionController) SeedSelection(itemID string) {
	if itemID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedItemID == "" {
		c.selectedItemID = itemID
	}
}

// SetDisplayID stores the raw input, restarts the debounced balance lookup
// and re-applies the remember-me reaction.
func (c *SessionController) SetDisplayID(ctx context.Context, displayID string) {
	c.mu.Lock()
	c.displayID = displayID
	c.touchLocked()
	c.mu.Unlock()

	c.balance.SetDisplayID(displayID)
	c.syncPreference(ctx)
}

func (c *SessionController) SetRememberID(ctx context.Context, remember bool) {
	c.mu.Lock()
	c.rememberID = remember
	c.touchLocked()
	c.mu.Unlock()

	c.syncPreference(ctx)
}

// SelectItem stores the selection; an empty id clears it. The id is not
// validated against the catalog here; resolution happens at derivation.
func (c *SessionController) SelectItem(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedItemID = itemID
	c.touchLocked()
}

func (c *SessionController) SetQuantity(quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantity = session.NewQuantity(quantity)
	c.touchLocked()
}

func (c *SessionController) StepQuantity(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantity = c.quantity.Step(delta)
	c.touchLocked()
}

func (c *SessionController) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
	c.touchLocked()
}

// Commit submits the booking. Exactly one commit may be in flight; re-entry
// while one is outstanding is a no-op. On failure the ledger's message is
// kept as the last result and the selection, quantity and query survive so
// the holder can retry without re-entering them. On
// success the authoritative balance replaces the live preview and the
// transient selection resets, leaving displayID and rememberID untouched.
func (c *SessionController) Commit(ctx context.Context) (session.CommitOutcome, error) {
	c.mu.Lock()
	if c.bookingInFlight {
		c.mu.Unlock()
		return session.CommitOutcome{}, ErrCommitInFlight
	}

	displayID := strings.TrimSpace(c.displayID)
	itemID := c.selectedItemID
	quantity := c.quantity.Value()

	if displayID == "" || itemID == "" {
		c.mu.Unlock()
		return session.CommitOutcome{}, ErrValidation
	}

	c.bookingInFlight = true
	c.lastResult = nil
	c.touchLocked()
	c.mu.Unlock()

	newBalance, err := c.ledger.BookTransaction(ctx, displayID, itemID, quantity, BookingChannel)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.bookingInFlight = false

	if err != nil {
		// Ledger message surfaces verbatim and stays visible in the session
		// snapshot; selection state is preserved.
		failure := session.FailureOutcome(err.Error())
		c.lastResult = &failure
		return session.CommitOutcome{}, errs.Mark(err, ErrCommitFailed)
	}

	outcome := session.SuccessOutcome(newBalance)
	c.lastResult = &outcome
	c.balance.ApplyAuthoritative(newBalance)

	c.selectedItemID = ""
	c.quantity = session.DefaultQuantity()
	c.query = ""

	return outcome, nil
}

// Snapshot resolves the current state against the loaded catalog.
func (c *SessionController) Snapshot() SessionView {
	items, _ := c.catalog.Items()
	balance := c.balance.Current()

	c.mu.Lock()
	defer c.mu.Unlock()

	selected := session.SelectedItem(items, c.selectedItemID)

	return SessionView{
		DisplayID:         c.displayID,
		RememberID:        c.rememberID,
		Balance:           balance,
		SelectedItem:      selected,
		Quantity:          c.quantity.Value(),
		Query:             c.query,
		TotalCents:        session.TotalCents(selected, c.quantity),
		AfterBookingCents: session.AfterBookingCents(balance, selected, c.quantity),
		BookingInFlight:   c.bookingInFlight,
		LastResult:        c.lastResult,
	}
}

// LastSeen is the time of the last user interaction, used for idle eviction.
func (c *SessionController) LastSeen() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

// Close cancels the pending balance timer.
func (c *SessionController) Close() {
	c.balance.Stop()
}

// syncPreference is the remember-me reaction: idempotent, order-independent,
// applied on every (rememberID, displayID) change.
func (c *SessionController) syncPreference(ctx context.Context) {
	c.mu.Lock()
	remember := c.rememberID
	displayID := strings.TrimSpace(c.displayID)
	c.mu.Unlock()

	var err error
	switch {
	case remember && displayID != "":
		err = c.prefs.SaveDisplayID(ctx, c.deviceKey, displayID)
	case !remember:
		err = c.prefs.ClearDisplayID(ctx, c.deviceKey)
	}
	if err != nil {
		slog.Warn("failed to sync display id preference", "error", err)
	}
}

func (c *SessionController) touchLocked() {
	c.lastSeen = c.clock.Now()
}
