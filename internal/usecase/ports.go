package usecase

import (
	"context"

	"tab-kiosk/internal/domain/catalog"
)

// LedgerGateway is the external balance ledger. Its internal consistency
// (atomicity of the debit) is its own concern; this service only consumes
// the RPC surface.
type LedgerGateway interface {
	ListActiveItems(ctx context.Context) ([]catalog.Item, error)
	// GetBalanceByDisplayID returns nil without error when the ledger has no
	// row for the ID.
	GetBalanceByDisplayID(ctx context.Context, displayID string) (*int, error)
	// BookTransaction returns the authoritative post-booking balance, nil
	// when the ledger acknowledged without a result row.
	BookTransaction(ctx context.Context, displayID, itemID string, quantity int, channel string) (*int, error)
}

// PreferenceStore persists the "remember my ID" opt-in per kiosk device.
type PreferenceStore interface {
	SaveDisplayID(ctx context.Context, deviceKey, displayID string) error
	ClearDisplayID(ctx context.Context, deviceKey string) error
	LoadDisplayID(ctx context.Context, deviceKey string) (string, bool, error)
}
