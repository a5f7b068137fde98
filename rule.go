package riemann

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rule selects the sample point inside one grid cell of one axis.
//
// Sample must be a pure function of its arguments: for partition index i in
// [0, partitions) of interval iv with partition width step, it returns the
// coordinate at which the target function is evaluated. Rules are stateless
// and shared; the engine calls Sample exactly once per cell per axis.
//
// Rules never receive function values. Strategies that need f at the cell
// boundary (trapezoidal, upper/lower Darboux) cannot be expressed as a Rule
// and have their own entry point, Trapezoid.
type Rule struct {
	// Name identifies the rule in diagnostics and CLI flags. It carries no
	// semantics.
	Name string

	// Sample maps (interval, partition index, step) to the sample coordinate.
	Sample func(iv Interval, i int, step decimal.Decimal) decimal.Decimal
}

var two = decimal.NewFromInt(2)

// Left samples the lower boundary of each cell: x* = lower + i·step.
var Left = Rule{
	Name: "left",
	Sample: func(iv Interval, i int, step decimal.Decimal) decimal.Decimal {
		return iv.lower.Add(step.Mul(decimal.NewFromInt(int64(i))))
	},
}

// Middle samples the midpoint of each cell: x* = lower + (2i+1)/2·step.
var Middle = Rule{
	Name: "middle",
	Sample: func(iv Interval, i int, step decimal.Decimal) decimal.Decimal {
		return iv.lower.Add(step.Mul(decimal.NewFromInt(int64(2*i + 1))).Div(two))
	},
}

// Right samples the upper boundary of each cell: x* = lower + (i+1)·step.
var Right = Rule{
	Name: "right",
	Sample: func(iv Interval, i int, step decimal.Decimal) decimal.Decimal {
		return iv.lower.Add(step.Mul(decimal.NewFromInt(int64(i + 1))))
	},
}

// Points returns the sample coordinate of every cell along the interval,
// in partition order. The engine computes these once per axis and reuses
// them across the whole grid.
func (r Rule) Points(iv Interval) []decimal.Decimal {
	points := make([]decimal.Decimal, iv.partitions)
	for i := range points {
		points[i] = r.Sample(iv, i, iv.step)
	}
	return points
}

// String implements fmt.Stringer.
func (r Rule) String() string {
	return fmt.Sprintf("Rule(%s)", r.Name)
}

// RuleByName resolves one of the built-in rules from its name.
// Unknown names return false.
func RuleByName(name string) (Rule, bool) {
	switch name {
	case Left.Name:
		return Left, true
	case Middle.Name:
		return Middle, true
	case Right.Name:
		return Right, true
	default:
		return Rule{}, false
	}
}
