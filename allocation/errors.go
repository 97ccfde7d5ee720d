/*
errors.go - Centralized error types for the allocation engine

PURPOSE:
  All engine error types in one place. Nothing here is fatal to a
  statement run: configuration mismatches surface as sentinel errors
  alongside empty results, and the combined allocator and statement
  assembler absorb them into skipped rules and degraded rows.

ERROR CATEGORIES:
  1. Lookup errors   - referenced entities that do not exist
  2. Policy errors   - cost type resolved with the wrong policy tag
  3. Rule errors     - combined rules missing required scope

USAGE:
  result, err := engine.AllocateByShare(ctx, id, total)
  if errors.Is(err, allocation.ErrPolicyMismatch) {
      // nothing to allocate for this cost type
  }

SEE ALSO:
  - combined.go: absorbs these errors into per-rule skips
  - statement package: absorbs these errors into degraded rows
*/
package allocation

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrCostTypeNotFound is returned when a referenced cost type does not exist.
	ErrCostTypeNotFound = errors.New("cost type not found")

	// ErrApartmentNotFound is returned when a referenced apartment does not exist.
	ErrApartmentNotFound = errors.New("apartment not found")

	// ErrContractNotFound is returned when a referenced contract does not exist.
	ErrContractNotFound = errors.New("contract not found")

	// ErrPolicyMismatch is returned when a cost type's policy tag does not
	// match the allocator it was handed to. The accompanying result is
	// empty: "nothing to allocate", not "zero for everyone".
	ErrPolicyMismatch = errors.New("cost type policy does not match allocator")

	// ErrMissingPeriod is returned for a consumption-based combined rule
	// that carries no billing period.
	ErrMissingPeriod = errors.New("consumption rule requires a billing period")

	// ErrInvalidPeriod is returned when a period ends before it starts.
	ErrInvalidPeriod = errors.New("invalid period: end before start")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// PolicyMismatchError reports which policy an allocator expected and
// what the cost type actually carries.
type PolicyMismatchError struct {
	CostTypeID CostTypeID
	Want       PolicyTag
	Got        PolicyTag
}

func (e *PolicyMismatchError) Error() string {
	return fmt.Sprintf("cost type %s has policy %q, allocator requires %q", e.CostTypeID, e.Got, e.Want)
}

func (e *PolicyMismatchError) Unwrap() error { return ErrPolicyMismatch }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCostTypeNotFound) ||
		errors.Is(err, ErrApartmentNotFound) ||
		errors.Is(err, ErrContractNotFound)
}

// IsSkippable returns true if a combined rule hitting this error should
// be skipped rather than fail the batch.
func IsSkippable(err error) bool {
	return IsNotFound(err) ||
		errors.Is(err, ErrPolicyMismatch) ||
		errors.Is(err, ErrMissingPeriod) ||
		errors.Is(err, ErrInvalidPeriod)
}
