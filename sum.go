package riemann

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Func is a function of several real variables together with its declared
// arity. Go offers no runtime introspection of closure signatures, so the
// arity is carried explicitly and checked against the dimension count before
// any evaluation happens; a mismatch is always an error, never a silently
// wrong answer.
//
// Eval receives one coordinate per dimension, in dimension order. The engine
// reuses the argument slice between cells, so Eval must not retain it.
// Implementations are assumed pure; cells may be evaluated in any order,
// including concurrently.
type Func struct {
	Name  string
	NArgs int
	Eval  func(x []decimal.Decimal) (decimal.Decimal, error)
}

// FuncN builds a Func with an explicit arity and a fallible body.
func FuncN(name string, nargs int, eval func(x []decimal.Decimal) (decimal.Decimal, error)) Func {
	return Func{Name: name, NArgs: nargs, Eval: eval}
}

// Func1 adapts an infallible single-variable function.
func Func1(name string, f func(x decimal.Decimal) decimal.Decimal) Func {
	return Func{
		Name:  name,
		NArgs: 1,
		Eval: func(x []decimal.Decimal) (decimal.Decimal, error) {
			return f(x[0]), nil
		},
	}
}

// Func2 adapts an infallible two-variable function.
func Func2(name string, f func(x, y decimal.Decimal) decimal.Decimal) Func {
	return Func{
		Name:  name,
		NArgs: 2,
		Eval: func(x []decimal.Decimal) (decimal.Decimal, error) {
			return f(x[0], x[1]), nil
		},
	}
}

// Func3 adapts an infallible three-variable function.
func Func3(name string, f func(x, y, z decimal.Decimal) decimal.Decimal) Func {
	return Func{
		Name:  name,
		NArgs: 3,
		Eval: func(x []decimal.Decimal) (decimal.Decimal, error) {
			return f(x[0], x[1], x[2]), nil
		},
	}
}

// Sum computes the Riemann sum of f over the given dimensions:
//
//	Σ over every grid cell of f(x*_1, ..., x*_n) · ∏ step_k
//
// where x*_k is chosen by dimension k's rule. Accumulation is plain decimal
// addition in grid order; the cell volume is factored out and applied once
// at the end, so exact inputs stay exact.
//
// Returns ErrEmptyDimensions for zero dimensions and ErrArityMismatch when
// f.NArgs differs from the dimension count. A failure inside f.Eval aborts
// the summation and is returned wrapped in an *EvalError carrying the sample
// point.
func Sum(f Func, dims ...Dimension) (decimal.Decimal, error) {
	points, err := samplePlan(f, dims)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return sumCells(f, dims, points, 0, GridSize(dims), nil)
}

// samplePlan validates the call and precomputes the per-axis sample
// coordinates, one slice per dimension. Every engine entry point funnels
// through this so validation happens exactly once, before any work.
func samplePlan(f Func, dims []Dimension) ([][]decimal.Decimal, error) {
	if len(dims) == 0 {
		return nil, ErrEmptyDimensions
	}
	if f.NArgs != len(dims) {
		return nil, fmt.Errorf("%s takes %d arguments, got %d dimensions: %w",
			f.Name, f.NArgs, len(dims), ErrArityMismatch)
	}

	points := make([][]decimal.Decimal, len(dims))
	for k, d := range dims {
		points[k] = d.Rule.Points(d.Interval)
	}
	return points, nil
}

// cellVolume returns ∏ step_k, the measure of a single grid cell.
func cellVolume(dims []Dimension) decimal.Decimal {
	delta := decimal.NewFromInt(1)
	for _, d := range dims {
		delta = delta.Mul(d.Interval.step)
	}
	return delta
}

// sumCells accumulates f over the half-open cell range [first, last) in grid
// order and scales by the cell volume. done, when non-nil, is polled between
// cells so a host can abort long sweeps; it reports the reason for stopping.
func sumCells(f Func, dims []Dimension, points [][]decimal.Decimal, first, last int64, done func() error) (decimal.Decimal, error) {
	idx := make([]int, len(dims))
	args := make([]decimal.Decimal, len(dims))
	decodeCell(first, dims, idx)

	total := decimal.Decimal{}
	for cell := first; cell < last; cell++ {
		if done != nil {
			if err := done(); err != nil {
				return decimal.Decimal{}, err
			}
		}

		for k := range idx {
			args[k] = points[k][idx[k]]
		}

		v, err := f.Eval(args)
		if err != nil {
			point := make([]decimal.Decimal, len(args))
			copy(point, args)
			return decimal.Decimal{}, &EvalError{Func: f.Name, Point: point, Err: err}
		}

		total = total.Add(v)
		advance(idx, dims)
	}

	return total.Mul(cellVolume(dims)), nil
}
