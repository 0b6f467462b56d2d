package dispatch

import (
	"errors"
	"testing"
)

// TestBudgetConsume verifies deduction, exhaustion and refunds.
func TestBudgetConsume(t *testing.T) {
	b := NewBudget(100)
	if err := b.Consume(60); err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	if b.Remaining() != 40 {
		t.Fatalf("remaining %d, want 40", b.Remaining())
	}
	if err := b.Consume(41); !errors.Is(err, ErrBudgetExhausted) {
		t.Fatalf("expected ErrBudgetExhausted, got %v", err)
	}
	// A failed consumption must not dock the budget.
	if b.Remaining() != 40 {
		t.Fatalf("remaining %d after failed consume, want 40", b.Remaining())
	}
	b.Refund(10)
	if err := b.Consume(50); err != nil {
		t.Fatalf("consume after refund failed: %v", err)
	}
	if b.Remaining() != 0 {
		t.Fatalf("remaining %d, want 0", b.Remaining())
	}
}

// TestBudgetRefundOverflow verifies that pushing the budget above uint64
// panics rather than wrapping around.
func TestBudgetRefundOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on overflow")
		}
	}()
	NewBudget(^uint64(0)).Refund(1)
}
