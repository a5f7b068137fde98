package riemann

import (
	"testing"

	"github.com/shopspring/decimal"
)

// AssertionConfig contains thresholds for quadrature property checks.
type AssertionConfig struct {
	// Partition counts used for refinement checks, coarsest first.
	Levels []int

	// Maximum absolute error at the finest level in AssertConverges.
	Tolerance decimal.Decimal
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Levels:    []int{10, 100, 1000},
		Tolerance: decimal.New(1, -2), // |error| < 0.01 at 1000 partitions
	}
}

// AssertExact verifies a computed sum equals an expected decimal literal.
//
// Comparison is by numeric value, so "0.2850" and "0.285" agree. Use this
// for cases where the arithmetic is exact (rational steps, polynomial f)
// and the closed-form value is known.
func AssertExact(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()

	expected, err := decimal.NewFromString(want)
	if err != nil {
		t.Fatalf("Bad expected literal %q: %v", want, err)
	}

	if !got.Equal(expected) {
		t.Errorf("Sum = %s, want exactly %s", got, want)
		return
	}

	t.Logf("✓ Exact: %s", got)
}

// AssertBrackets verifies the left and right sums bound the analytic
// integral for a monotonic integrand.
//
// Mathematical property: for monotone f on [a, b],
//
//	min(L_n, R_n) ≤ ∫f ≤ max(L_n, R_n)
//
// for every partition count n. Increasing f gives L_n below and R_n above;
// decreasing f swaps them.
func AssertBrackets(t *testing.T, f Func, iv Interval, analytic string) {
	t.Helper()

	exact, err := decimal.NewFromString(analytic)
	if err != nil {
		t.Fatalf("Bad analytic literal %q: %v", analytic, err)
	}

	left, err := Sum(f, Dimension{Interval: iv, Rule: Left})
	if err != nil {
		t.Fatalf("Left sum failed: %v", err)
	}
	right, err := Sum(f, Dimension{Interval: iv, Rule: Right})
	if err != nil {
		t.Fatalf("Right sum failed: %v", err)
	}

	lo, hi := left, right
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}

	if exact.Cmp(lo) < 0 || exact.Cmp(hi) > 0 {
		t.Errorf("Endpoint sums do not bracket the integral:\n"+
			"  left=%s right=%s analytic=%s\n"+
			"Integrand is likely not monotone on %s.",
			left, right, analytic, iv)
		return
	}

	t.Logf("✓ Bracketed: %s ≤ %s ≤ %s (n=%d)", lo, analytic, hi, iv.Partitions())
}

// AssertConverges verifies refinement drives the sum toward the analytic
// value: the absolute error never grows from one level to the next, and the
// finest level lands within cfg.Tolerance.
//
// Mathematical property:
//
//	|S_n - ∫f| → 0 as n → ∞
func AssertConverges(t *testing.T, f Func, lower, upper decimal.Decimal, rule Rule, analytic string, cfg AssertionConfig) {
	t.Helper()

	exact, err := decimal.NewFromString(analytic)
	if err != nil {
		t.Fatalf("Bad analytic literal %q: %v", analytic, err)
	}

	var prevErr decimal.Decimal
	for level, n := range cfg.Levels {
		iv, err := NewInterval(lower, upper, n)
		if err != nil {
			t.Fatalf("Level n=%d: %v", n, err)
		}

		got, err := Sum(f, Dimension{Interval: iv, Rule: rule})
		if err != nil {
			t.Fatalf("Level n=%d: %v", n, err)
		}

		absErr := got.Sub(exact).Abs()
		if level > 0 && absErr.Cmp(prevErr) > 0 {
			t.Errorf("Error grew under refinement at n=%d: %s > %s (rule: %s)",
				n, absErr, prevErr, rule.Name)
		}
		prevErr = absErr

		t.Logf("  n=%-6d sum=%-22s |error|=%s", n, got, absErr)
	}

	if prevErr.Cmp(cfg.Tolerance) > 0 {
		t.Errorf("Did not converge: |error| = %s at n=%d (tolerance: %s)",
			prevErr, cfg.Levels[len(cfg.Levels)-1], cfg.Tolerance)
		return
	}

	t.Logf("✓ Converges to %s under the %s rule", analytic, rule.Name)
}
