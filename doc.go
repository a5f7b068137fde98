// Package riemann computes n-dimensional Riemann sums with exact decimal arithmetic.
//
// # Overview
//
// riemann approximates definite integrals of functions of several real variables
// over axis-aligned boxes:
//
//	∫...∫ f(x_1, ..., x_n) dx_1 ... dx_n  ≈  Σ f(x*) · ΔV
//
// Each axis is described by an Interval (bounds plus a partition count) and a
// sampling Rule that picks the evaluation point inside every cell. The engine
// walks the Cartesian grid of cells, evaluates f at the selected point of each
// cell, weights by the cell volume, and accumulates the total.
//
// All arithmetic uses decimal.Decimal rather than binary floating point. The
// expected outputs of the classical textbook cases are exact:
//
//	∫ x² dx over [0,1], 10 partitions, left rule  = 0.285
//	∫∫ x²+y² over [0,1]×[0,1], 10×10, left rule   = 0.57
//	trapezoidal x² over [0,5], 10 partitions      = 41.875
//
// # Quick Start
//
// Integrate f(x) = x² over [0, 1] with 10 partitions and the left rule:
//
//	iv, err := riemann.NewInterval(decimal.Zero, decimal.NewFromInt(1), 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	square := riemann.Func1("x^2", func(x decimal.Decimal) decimal.Decimal {
//	    return x.Mul(x)
//	})
//
//	total, err := riemann.Sum(square, riemann.Dimension{Interval: iv, Rule: riemann.Left})
//	// total = 0.285
//
// Multiple dimensions are just more Dimension values. Dims pairs a slice of
// intervals with rules, broadcasting a single rule across every axis:
//
//	dims, err := riemann.Dims([]riemann.Interval{ivX, ivY}, riemann.Left)
//	total, err := riemann.Sum(addSquares, dims...)
//
// # Sampling Rules
//
// Three rules are built in. For cell i of an interval [a, b] split into n
// partitions of width Δx = (b-a)/n:
//
//	Left:   x* = a + i·Δx
//	Middle: x* = a + (2i+1)/2·Δx
//	Right:  x* = a + (i+1)·Δx
//
// A custom rule is any Rule value; the engine only ever calls Sample once per
// cell per axis. Rules never see function values; strategies that need f at
// the cell boundary (trapezoidal, Darboux) are a separate contract, see
// Trapezoid.
//
// # Trapezoidal Rule
//
// Trapezoid generalizes the classical trapezoidal rule to n dimensions by
// averaging f over all 2^n corners of each cell:
//
//	T = (1/2^n) · Σ over every left/right corner combination of the plain sum
//
// # Parallel Accumulation
//
// Grid cells are independent, so SumParallel splits the cell range statically
// across workers and combines the partial sums in worker order. Results are
// bit-identical to the serial engine for any worker count.
//
//	total, err := riemann.SumParallel(ctx, f, runtime.NumCPU(), dims...)
//
// # Errors
//
// Validation is eager and total: invalid intervals, mismatched rule counts,
// arity mismatches, and empty dimension lists are reported before any cell is
// evaluated, and a failure inside f aborts the whole computation wrapped in an
// *EvalError carrying the offending sample point. There is no partial-result
// mode: a half-evaluated grid is not an approximation of anything.
//
// # Testing
//
// Assertion helpers validate quadrature properties in the standard testing
// style:
//
//	func TestSquare(t *testing.T) {
//	    riemann.AssertBrackets(t, square, iv, "0.3333333333333333")
//	    riemann.AssertConverges(t, square, a, b, riemann.Middle, "0.3333333333333333",
//	        riemann.DefaultAssertionConfig())
//	}
package riemann
