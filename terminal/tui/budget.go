package tui

// Budget is an optional space limit on one axis. The zero value is
// unbounded. A bounded budget never recovers once exhausted: consuming
// more than the remaining limit collapses it to unbounded for the rest
// of the scope, modelling "ran out of known space, lay out unconstrained".
type Budget struct {
	limit int
	known bool
}

// Bounded returns a budget limited to n cells
func Bounded(n int) Budget {
	return Budget{limit: n, known: true}
}

// Unbounded returns a budget with no known limit
func Unbounded() Budget {
	return Budget{}
}

// Limit returns the remaining space and whether a finite limit exists
func (b Budget) Limit() (int, bool) {
	return b.limit, b.known
}

// Or returns the remaining space, or fallback when unbounded
func (b Budget) Or(fallback int) int {
	if b.known {
		return b.limit
	}
	return fallback
}

// Consume subtracts n cells. Consuming past the limit returns Unbounded,
// permanently; it never clamps to zero.
func (b Budget) Consume(n int) Budget {
	if !b.known || n > b.limit {
		return Unbounded()
	}
	return Bounded(b.limit - n)
}

// Inset shrinks the budget by n on each side. A non-positive remainder
// is treated as unbounded rather than zero.
func (b Budget) Inset(n int) Budget {
	if !b.known || b.limit-2*n <= 0 {
		return Unbounded()
	}
	return Bounded(b.limit - 2*n)
}
