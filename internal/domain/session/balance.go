package session

type BalanceStatus string

const (
	// BalanceNone: no display ID entered, nothing to look up.
	BalanceNone BalanceStatus = "none"
	// BalancePending: a lookup is debouncing or in flight.
	BalancePending BalanceStatus = "pending"
	// BalanceFound: the ledger returned a balance for the current ID.
	BalanceFound BalanceStatus = "found"
	// BalanceNotFound: the ledger had no row for the ID, or the lookup failed.
	// Non-fatal; booking stays possible.
	BalanceNotFound BalanceStatus = "not_found"
)

// Balance is the live, possibly stale, preview of the holder's balance.
// Cents is meaningful only when Status is BalanceFound.
type Balance struct {
	Status BalanceStatus
	Cents  int
}

func NoBalance() Balance {
	return Balance{Status: BalanceNone}
}

func PendingBalance() Balance {
	return Balance{Status: BalancePending}
}

func FoundBalance(cents int) Balance {
	return Balance{Status: BalanceFound, Cents: cents}
}

func NotFoundBalance() Balance {
	return Balance{Status: BalanceNotFound}
}

// Cents and whether a balance is actually known.
func (b Balance) Known() (int, bool) {
	if b.Status != BalanceFound {
		return 0, false
	}
	return b.Cents, true
}
