package session

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Quantity is the number of units in the current selection. Out-of-range
// values are clamped on every construction and step, never rejected.
type Quantity struct {
	value int
}

func NewQuantity(value int) Quantity {
	return Quantity{value: clamp(value)}
}

func DefaultQuantity() Quantity {
	return Quantity{value: MinQuantity}
}

func (q Quantity) Value() int {
	return q.value
}

// Step moves the quantity by delta, clamping at the bounds. Stepping down at
// the minimum or up at the maximum is a no-op.
func (q Quantity) Step(delta int) Quantity {
	return Quantity{value: clamp(q.value + delta)}
}

func clamp(v int) int {
	if v < MinQuantity {
		return MinQuantity
	}
	if v > MaxQuantity {
		return MaxQuantity
	}
	return v
}
