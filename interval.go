package riemann

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Interval is a closed one-dimensional range [lower, upper] divided into a
// fixed number of equal-width partitions.
//
// Intervals are immutable values: construct one per axis and share it freely.
// The partition width is derived once at construction using decimal division,
// so repeated sampling never drifts the way accumulated float64 steps do.
type Interval struct {
	lower      decimal.Decimal
	upper      decimal.Decimal
	partitions int
	step       decimal.Decimal
}

// NewInterval constructs an interval from its bounds and partition count.
//
// Returns ErrInvalidRange when lower >= upper and ErrInvalidPartition when
// partitions < 1.
func NewInterval(lower, upper decimal.Decimal, partitions int) (Interval, error) {
	if lower.Cmp(upper) >= 0 {
		return Interval{}, fmt.Errorf("[%s, %s]: %w", lower, upper, ErrInvalidRange)
	}
	if partitions < 1 {
		return Interval{}, fmt.Errorf("%d partitions: %w", partitions, ErrInvalidPartition)
	}

	return Interval{
		lower:      lower,
		upper:      upper,
		partitions: partitions,
		step:       upper.Sub(lower).Div(decimal.NewFromInt(int64(partitions))),
	}, nil
}

// NewIntervalFloat constructs an interval from float64 bounds.
//
// The bounds go through decimal.NewFromFloat, which recovers the shortest
// decimal representation of the float (0.1 becomes exactly 0.1, not the
// binary approximation).
func NewIntervalFloat(lower, upper float64, partitions int) (Interval, error) {
	return NewInterval(decimal.NewFromFloat(lower), decimal.NewFromFloat(upper), partitions)
}

// MustInterval is NewInterval that panics on invalid input.
// Intended for static configuration and tests, where the bounds are literals.
func MustInterval(lower, upper decimal.Decimal, partitions int) Interval {
	iv, err := NewInterval(lower, upper, partitions)
	if err != nil {
		panic(err)
	}
	return iv
}

// Lower returns the lower bound.
func (iv Interval) Lower() decimal.Decimal { return iv.lower }

// Upper returns the upper bound.
func (iv Interval) Upper() decimal.Decimal { return iv.upper }

// Partitions returns the number of equal-width partitions.
func (iv Interval) Partitions() int { return iv.partitions }

// Step returns the partition width (upper - lower) / partitions.
func (iv Interval) Step() decimal.Decimal { return iv.step }

// String implements fmt.Stringer.
func (iv Interval) String() string {
	return fmt.Sprintf("Interval(lower=%s, upper=%s, partitions=%d)", iv.lower, iv.upper, iv.partitions)
}
