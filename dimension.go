package riemann

import "fmt"

// Dimension pairs one interval with the sampling rule used along it.
// An n-dimensional summation takes n Dimensions, one per function argument,
// in argument order.
type Dimension struct {
	Interval Interval
	Rule     Rule
}

// Dims pairs intervals with rules positionally.
//
// A single rule broadcasts across every interval. Otherwise the rule count
// must equal the interval count; any other count (including zero) is
// ErrRuleCountMismatch. No partial broadcast exists: two rules for five
// intervals is an error, not "first two axes then repeat".
func Dims(intervals []Interval, rules ...Rule) ([]Dimension, error) {
	if len(rules) != 1 && len(rules) != len(intervals) {
		return nil, fmt.Errorf("%d rules for %d intervals: %w",
			len(rules), len(intervals), ErrRuleCountMismatch)
	}

	dims := make([]Dimension, len(intervals))
	for i, iv := range intervals {
		rule := rules[0]
		if len(rules) > 1 {
			rule = rules[i]
		}
		dims[i] = Dimension{Interval: iv, Rule: rule}
	}
	return dims, nil
}
