package dispatch

import (
	"errors"
	"fmt"
	"math"
)

// ErrBudgetExhausted is returned by Budget.Consume when a request exceeds
// the remaining allowance.
var ErrBudgetExhausted = errors.New("computation budget exhausted")

// Budget tracks the remaining computation allowance of an enclosing
// operation. The dispatcher forwards it to handlers whole rather than a
// capped subset (see Dispatcher.ForwardsFullBudget); running out of budget
// and an explicit failure return are the only ways an invocation ends early.
type Budget uint64

// NewBudget returns a budget holding amount units.
func NewBudget(amount uint64) *Budget {
	b := Budget(amount)
	return &b
}

// Consume deducts amount from the budget, failing with ErrBudgetExhausted if
// it exceeds the remainder.
func (b *Budget) Consume(amount uint64) error {
	if uint64(*b) < amount {
		return ErrBudgetExhausted
	}
	*(*uint64)(b) -= amount
	return nil
}

// Refund returns amount units to the budget.
func (b *Budget) Refund(amount uint64) *Budget {
	if uint64(*b) > math.MaxUint64-amount {
		panic("budget pushed above uint64")
	}
	*(*uint64)(b) += amount
	return b
}

// Remaining reports the unconsumed allowance.
func (b *Budget) Remaining() uint64 {
	return uint64(*b)
}

func (b *Budget) String() string {
	return fmt.Sprintf("%d", uint64(*b))
}
