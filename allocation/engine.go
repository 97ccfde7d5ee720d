package allocation

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ENGINE - Stateless allocator over a read-only store
// =============================================================================

// Engine runs the allocation algorithms against a Store. It holds no
// state between calls; every method is a self-contained computation
// over a snapshot of queried data.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Store exposes the engine's data collaborator (for layers that need
// the same snapshot for descriptive lookups, e.g. statement rows).
func (e *Engine) Store() Store { return e.store }

var hundred = decimal.NewFromInt(100)

// proportion computes value/total * cost rounded to 2 decimals.
// Callers guarantee total > 0.
func proportion(value, total, cost decimal.Decimal) decimal.Decimal {
	return value.Div(total).Mul(cost).Round(2)
}

// round2 rounds a monetary amount to cents. All allocators round at the
// point of allocation, never deferring to display.
func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
