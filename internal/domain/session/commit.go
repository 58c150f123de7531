package session

// CommitOutcome is the one-shot result of the most recent commit attempt.
// On success NewBalanceCents carries the authoritative balance, nil when
// the ledger acknowledged without a result row. On failure FailureMessage
// carries the ledger's message verbatim.
type CommitOutcome struct {
	NewBalanceCents *int
	FailureMessage  string
}

func SuccessOutcome(newBalanceCents *int) CommitOutcome {
	return CommitOutcome{NewBalanceCents: newBalanceCents}
}

func FailureOutcome(message string) CommitOutcome {
	return CommitOutcome{FailureMessage: message}
}

func (o CommitOutcome) Failed() bool {
	return o.FailureMessage != ""
}
