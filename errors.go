package riemann

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Standard error variables for validation failures.
// All validation happens eagerly at the public API boundary, before any
// cell is evaluated.
var (
	// ErrInvalidRange reports an interval whose lower bound is not strictly
	// less than its upper bound.
	ErrInvalidRange = errors.New("interval lower bound must be less than upper bound")

	// ErrInvalidPartition reports a partition count below 1.
	ErrInvalidPartition = errors.New("partition count must be at least 1")

	// ErrArityMismatch reports a function whose declared argument count does
	// not equal the number of supplied dimensions.
	ErrArityMismatch = errors.New("function arity does not match dimension count")

	// ErrRuleCountMismatch reports a rule list that is neither a single rule
	// (broadcast to every interval) nor exactly one rule per interval.
	ErrRuleCountMismatch = errors.New("rule count must be 1 or match interval count")

	// ErrEmptyDimensions reports a summation over zero dimensions.
	ErrEmptyDimensions = errors.New("at least one dimension is required")
)

// EvalError wraps a failure raised by the target function during summation.
// Point holds the sample coordinates that triggered the failure, for
// diagnostics. The summation that produced it returned no partial result.
type EvalError struct {
	Func  string            // Name of the failing function
	Point []decimal.Decimal // Sample point at which evaluation failed
	Err   error             // Underlying failure, unmodified
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	coords := make([]string, len(e.Point))
	for i, x := range e.Point {
		coords[i] = x.String()
	}
	return fmt.Sprintf("evaluating %s at (%s): %v", e.Func, strings.Join(coords, ", "), e.Err)
}

// Unwrap returns the underlying error.
func (e *EvalError) Unwrap() error {
	return e.Err
}
