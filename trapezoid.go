package riemann

import (
	"github.com/shopspring/decimal"
)

// Trapezoid computes the n-dimensional trapezoidal approximation of f over
// the given intervals.
//
// Instead of one interior sample per cell, every cell contributes the mean
// of f over its 2^n corners. Equivalently, and how it is computed here: one
// plain Riemann sum per left/right rule combination across the axes, with
// the 2^n results averaged. In one dimension this is the classical
// trapezoidal rule, the mean of the left and right sums.
//
// Same preconditions as Sum: intervals must be non-empty and match f's
// arity. Errors from f propagate as *EvalError.
func Trapezoid(f Func, intervals ...Interval) (decimal.Decimal, error) {
	if len(intervals) == 0 {
		return decimal.Decimal{}, ErrEmptyDimensions
	}

	corners := 1 << len(intervals)
	dims := make([]Dimension, len(intervals))

	total := decimal.Decimal{}
	for mask := 0; mask < corners; mask++ {
		for k, iv := range intervals {
			rule := Left
			if mask&(1<<k) != 0 {
				rule = Right
			}
			dims[k] = Dimension{Interval: iv, Rule: rule}
		}

		partial, err := Sum(f, dims...)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(partial)
	}

	return total.Div(decimal.NewFromInt(int64(corners))), nil
}
