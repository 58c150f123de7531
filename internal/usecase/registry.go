package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tab-kiosk/internal/pkg/clock"
	"tab-kiosk/internal/pkg/config"

	"github.com/google/uuid"
)

// SessionRegistry owns one SessionController per kiosk cookie. Sessions are
// created lazily on first contact and evicted after the idle TTL.
type SessionRegistry struct {
	catalog  *CatalogStore
	ledger   LedgerGateway
	prefs    PreferenceStore
	clock    clock.Clock
	debounce time.Duration
	idleTTL  time.Duration
	sweep    time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*SessionController
}

func NewSessionRegistry(
	catalogStore *CatalogStore,
	ledger LedgerGateway,
	prefs PreferenceStore,
	clk clock.Clock,
	cfg config.SessionConfig,
) *SessionRegistry {
	return &SessionRegistry{
		catalog:  catalogStore,
		ledger:   ledger,
		prefs:    prefs,
		clock:    clk,
		debounce: cfg.Debounce,
		idleTTL:  cfg.IdleTTL,
		sweep:    cfg.SweepPeriod,
		sessions: make(map[uuid.UUID]*SessionController),
	}
}

// Session returns the controller for the given session ID, creating and
// seeding it on first contact.
func (r *SessionRegistry) Session(ctx context.Context, sessionID uuid.UUID, deviceKey string) *SessionController {
	r.mu.Lock()
	ctrl, ok := r.sessions[sessionID]
	if ok {
		r.mu.Unlock()
		return ctrl
	}

	ctrl = NewSessionController(r.catalog, r.ledger, r.prefs, r.clock, r.debounce, deviceKey)
	r.sessions[sessionID] = ctrl
	r.mu.Unlock()

	ctrl.Seed(ctx)
	return ctrl
}

// Sweep evicts sessions idle longer than the TTL and returns the count.
func (r *SessionRegistry) Sweep() int {
	cutoff := r.clock.Now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, ctrl := range r.sessions {
		if ctrl.LastSeen().Before(cutoff) {
			ctrl.Close()
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// RunJanitor sweeps periodically until ctx is cancelled.
func (r *SessionRegistry) RunJanitor(ctx context.Context) {
	ticker := time.NewTicker(r.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := r.Sweep(); evicted > 0 {
				slog.Debug("evicted idle sessions", "count", evicted)
			}
		}
	}
}

// Len is the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
