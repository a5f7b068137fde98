package riemann

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

var (
	square = Func1("x^2", func(x decimal.Decimal) decimal.Decimal {
		return x.Mul(x)
	})

	addSquares = Func2("x^2+y^2", func(x, y decimal.Decimal) decimal.Decimal {
		return x.Mul(x).Add(y.Mul(y))
	})
)

func dim(lower, upper string, partitions int, rule Rule) Dimension {
	return Dimension{Interval: MustInterval(d(lower), d(upper), partitions), Rule: rule}
}

func TestSum_LeftRuleTextbookCase(t *testing.T) {
	// Σ (i/10)² · 0.1 for i = 0..9 — the left-Riemann closed form.
	total, err := Sum(square, dim("0", "1", 10, Left))
	if err != nil {
		t.Fatal(err)
	}
	AssertExact(t, total, "0.285")
}

func TestSum_TwoDimensions(t *testing.T) {
	dims, err := Dims([]Interval{
		MustInterval(d("0"), d("1"), 10),
		MustInterval(d("0"), d("1"), 10),
	}, Left)
	if err != nil {
		t.Fatal(err)
	}

	total, err := Sum(addSquares, dims...)
	if err != nil {
		t.Fatal(err)
	}
	AssertExact(t, total, "0.57")
}

func TestSum_OneDimensionExactValues(t *testing.T) {
	identity := Func1("x", func(x decimal.Decimal) decimal.Decimal { return x })
	cube := Func1("x^3", func(x decimal.Decimal) decimal.Decimal { return x.Mul(x).Mul(x) })
	quartic := Func1("x^4+x^2-4x+3", func(x decimal.Decimal) decimal.Decimal {
		x2 := x.Mul(x)
		return x2.Mul(x2).Add(x2).Sub(x.Mul(decimal.NewFromInt(4))).Add(decimal.NewFromInt(3))
	})

	cases := []struct {
		f    Func
		dim  Dimension
		want string
	}{
		{identity, dim("0", "1", 1, Left), "0"},
		{identity, dim("0", "1", 1, Middle), "0.5"},
		{identity, dim("0", "1", 1, Right), "1"},

		{square, dim("0", "1", 1, Left), "0"},
		{square, dim("0", "1", 1, Middle), "0.25"},
		{square, dim("0", "1", 1, Right), "1"},
		{square, dim("0", "1", 2, Left), "0.125"},
		{square, dim("0", "1", 2, Middle), "0.3125"},
		{square, dim("0", "1", 2, Right), "0.625"},
		{square, dim("0", "2", 2, Left), "1"},
		{square, dim("0", "2", 2, Middle), "2.5"},
		{square, dim("0", "2", 2, Right), "5"},
		{square, dim("1", "6", 10, Left), "63.125"},
		{square, dim("1", "6", 10, Middle), "71.5625"},
		{square, dim("1", "6", 10, Right), "80.625"},
		{square, dim("-10", "10", 50, Left), "667.2"},
		{square, dim("-10", "10", 50, Middle), "666.4"},
		{square, dim("-10", "10", 50, Right), "667.2"},

		{cube, dim("0", "1", 1, Middle), "0.125"},

		{quartic, dim("-5", "5", 25, Left), "1384.9248"},
		{quartic, dim("-5", "5", 25, Middle), "1356.5408"},
		{quartic, dim("-5", "5", 25, Right), "1368.9248"},
	}

	for _, c := range cases {
		total, err := Sum(c.f, c.dim)
		if err != nil {
			t.Fatalf("%s over %s: %v", c.f.Name, c.dim.Interval, err)
		}
		if !total.Equal(d(c.want)) {
			t.Errorf("%s over %s (%s) = %s, want exactly %s",
				c.f.Name, c.dim.Interval, c.dim.Rule.Name, total, c.want)
		}
	}

	t.Logf("✓ %d closed-form sums reproduced exactly", len(cases))
}

func TestSum_ConstantFunctionIsMeasure(t *testing.T) {
	// f ≡ c integrates to exactly c·(b-a) under every rule and any
	// partition count: the sampling point never matters.
	c := d("7.25")
	constant := Func1("c", func(x decimal.Decimal) decimal.Decimal { return c })

	for _, rule := range []Rule{Left, Middle, Right} {
		for _, n := range []int{1, 2, 4, 10, 125} {
			total, err := Sum(constant, dim("-2", "3", n, rule))
			if err != nil {
				t.Fatal(err)
			}
			if !total.Equal(d("36.25")) { // 7.25 · 5
				t.Errorf("rule=%s n=%d: got %s, want 36.25", rule.Name, n, total)
			}
		}
	}

	t.Logf("✓ Constant function: every rule returns c·(b-a) exactly")
}

func TestSum_MonotoneBounds(t *testing.T) {
	// For increasing f, the left sum underestimates and the right sum
	// overestimates; refining tightens the bracket from both sides.
	iv := MustInterval(d("0"), d("1"), 10)
	AssertBrackets(t, square, iv, "0.3333333333333333")

	coarse, err := Sum(square, dim("0", "1", 10, Left))
	if err != nil {
		t.Fatal(err)
	}
	fine, err := Sum(square, dim("0", "1", 100, Left))
	if err != nil {
		t.Fatal(err)
	}
	if coarse.Cmp(fine) >= 0 {
		t.Errorf("Left sum did not increase under refinement: %s → %s", coarse, fine)
	}

	AssertConverges(t, square, d("0"), d("1"), Middle, "0.3333333333333333",
		DefaultAssertionConfig())
}

func TestSum_EmptyDimensions(t *testing.T) {
	_, err := Sum(square)
	if !errors.Is(err, ErrEmptyDimensions) {
		t.Errorf("got %v, want ErrEmptyDimensions", err)
	}
}

func TestSum_ArityMismatch(t *testing.T) {
	// One-variable function, two dimensions: must fail before any
	// evaluation, never produce a silently wrong answer.
	_, err := Sum(square, dim("0", "1", 10, Left), dim("0", "1", 10, Left))
	if !errors.Is(err, ErrArityMismatch) {
		t.Errorf("1-ary f, 2 dims: got %v, want ErrArityMismatch", err)
	}

	_, err = Sum(addSquares, dim("0", "1", 10, Left))
	if !errors.Is(err, ErrArityMismatch) {
		t.Errorf("2-ary f, 1 dim: got %v, want ErrArityMismatch", err)
	}
}

func TestSum_EvalErrorCarriesPoint(t *testing.T) {
	domainErr := fmt.Errorf("negative argument")
	partial := FuncN("partial", 1, func(x []decimal.Decimal) (decimal.Decimal, error) {
		if x[0].IsNegative() {
			return decimal.Decimal{}, domainErr
		}
		return x[0], nil
	})

	_, err := Sum(partial, dim("-1", "1", 4, Left))
	if err == nil {
		t.Fatal("Expected evaluation failure")
	}

	var evalErr *EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("got %T, want *EvalError", err)
	}
	if !errors.Is(err, domainErr) {
		t.Errorf("EvalError does not unwrap to the original failure")
	}
	if len(evalErr.Point) != 1 || !evalErr.Point[0].Equal(d("-1")) {
		t.Errorf("Offending point = %v, want (-1)", evalErr.Point)
	}

	t.Logf("✓ Failure aborts the sum and reports the sample point: %v", err)
}

func TestSum_ArgumentsFollowDimensionOrder(t *testing.T) {
	// f(x, y) = x - y over asymmetric axes: a swapped argument order
	// would flip the sign.
	diff := Func2("x-y", func(x, y decimal.Decimal) decimal.Decimal {
		return x.Sub(y)
	})

	total, err := Sum(diff, dim("10", "11", 1, Left), dim("0", "1", 1, Left))
	if err != nil {
		t.Fatal(err)
	}
	AssertExact(t, total, "10") // (10 - 0) · 1 · 1
}

func TestFuncAdapters(t *testing.T) {
	f3 := Func3("x+y+z", func(x, y, z decimal.Decimal) decimal.Decimal {
		return x.Add(y).Add(z)
	})
	if f3.NArgs != 3 {
		t.Errorf("Func3 arity = %d, want 3", f3.NArgs)
	}

	total, err := Sum(f3,
		dim("0", "1", 1, Right),
		dim("0", "1", 1, Right),
		dim("0", "1", 1, Right),
	)
	if err != nil {
		t.Fatal(err)
	}
	AssertExact(t, total, "3")
}
