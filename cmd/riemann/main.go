// Command riemann computes n-dimensional Riemann sums of separable
// polynomials from the command line.
//
// Each --axis flag adds one dimension as lower:upper:partitions, and each
// --poly flag gives that axis a coefficient list c0,c1,c2,... (constant term
// first). The integrand is the sum of the per-axis polynomials, so
//
//	riemann --axis 0:1:10 --poly 0,0,1 --axis 0:1:10 --poly 0,0,1
//
// integrates f(x, y) = x² + y² over the unit square.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexshd/riemann"
)

type options struct {
	axes      []string
	polys     []string
	rules     []string
	trapezoid bool
	workers   int
	verbose   bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "riemann --axis lower:upper:partitions --poly c0,c1,... [flags]",
		Short: "Compute n-dimensional Riemann sums with exact decimal arithmetic",
		Example: `  # Left-rule sum of x² over [0,1] with 10 partitions (= 0.285)
  riemann --axis 0:1:10 --poly 0,0,1

  # Midpoint rule on x, right rule on y
  riemann --axis 0:1:100 --poly 0,0,1 --axis 0:2:50 --poly 0,1 --rule middle --rule right

  # Trapezoidal rule of x² over [0,5] (= 41.875)
  riemann --axis 0:5:10 --poly 0,0,1 --trapezoid`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.verbose)
			return run(cmd, opts)
		},
	}

	opts.addFlags(cmd.Flags())
	return cmd
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringArrayVar(&o.axes, "axis", nil, "axis as lower:upper:partitions (repeat per dimension)")
	fs.StringArrayVar(&o.polys, "poly", nil, "polynomial coefficients c0,c1,... for the matching axis")
	fs.StringArrayVar(&o.rules, "rule", []string{"left"}, "sampling rule: left, middle, or right (one, or one per axis)")
	fs.BoolVar(&o.trapezoid, "trapezoid", false, "use the trapezoidal rule (ignores --rule)")
	fs.IntVar(&o.workers, "workers", 1, "parallel workers (1 = serial)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

func run(cmd *cobra.Command, opts *options) error {
	if len(opts.axes) == 0 {
		return fmt.Errorf("at least one --axis is required")
	}
	if len(opts.polys) != len(opts.axes) {
		return fmt.Errorf("got %d --poly flags for %d axes", len(opts.polys), len(opts.axes))
	}

	intervals := make([]riemann.Interval, len(opts.axes))
	for i, spec := range opts.axes {
		iv, err := parseAxis(spec)
		if err != nil {
			return fmt.Errorf("--axis %q: %w", spec, err)
		}
		intervals[i] = iv
		slog.Debug("axis", "index", i, "interval", iv)
	}

	f, err := separablePolynomial(opts.polys)
	if err != nil {
		return err
	}

	start := time.Now()
	var total decimal.Decimal
	if opts.trapezoid {
		total, err = riemann.Trapezoid(f, intervals...)
	} else {
		var rules []riemann.Rule
		rules, err = parseRules(opts.rules)
		if err != nil {
			return err
		}
		var dims []riemann.Dimension
		dims, err = riemann.Dims(intervals, rules...)
		if err != nil {
			return err
		}
		total, err = riemann.SumParallel(cmd.Context(), f, opts.workers, dims...)
	}
	if err != nil {
		return err
	}

	cells := int64(1)
	for _, iv := range intervals {
		cells *= int64(iv.Partitions())
	}
	slog.Info("computed",
		"integrand", f.Name,
		"dimensions", len(intervals),
		"cells", cells,
		"elapsed", time.Since(start))
	fmt.Fprintln(cmd.OutOrStdout(), total)
	return nil
}

// parseAxis parses lower:upper:partitions into an interval.
func parseAxis(spec string) (riemann.Interval, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return riemann.Interval{}, fmt.Errorf("want lower:upper:partitions")
	}

	lower, err := decimal.NewFromString(parts[0])
	if err != nil {
		return riemann.Interval{}, fmt.Errorf("lower bound: %w", err)
	}
	upper, err := decimal.NewFromString(parts[1])
	if err != nil {
		return riemann.Interval{}, fmt.Errorf("upper bound: %w", err)
	}
	partitions, err := strconv.Atoi(parts[2])
	if err != nil {
		return riemann.Interval{}, fmt.Errorf("partition count: %w", err)
	}

	return riemann.NewInterval(lower, upper, partitions)
}

func parseRules(names []string) ([]riemann.Rule, error) {
	rules := make([]riemann.Rule, len(names))
	for i, name := range names {
		rule, ok := riemann.RuleByName(name)
		if !ok {
			return nil, fmt.Errorf("--rule %q: unknown rule (want left, middle, or right)", name)
		}
		rules[i] = rule
	}
	return rules, nil
}

// separablePolynomial builds f(x_1, ..., x_n) = Σ p_k(x_k) from one
// coefficient list per axis, constant term first.
func separablePolynomial(specs []string) (riemann.Func, error) {
	coeffs := make([][]decimal.Decimal, len(specs))
	names := make([]string, len(specs))

	for k, spec := range specs {
		for _, field := range strings.Split(spec, ",") {
			c, err := decimal.NewFromString(strings.TrimSpace(field))
			if err != nil {
				return riemann.Func{}, fmt.Errorf("--poly %q: %w", spec, err)
			}
			coeffs[k] = append(coeffs[k], c)
		}
		names[k] = polyName(coeffs[k], k)
	}

	return riemann.FuncN(strings.Join(names, " + "), len(specs),
		func(x []decimal.Decimal) (decimal.Decimal, error) {
			var total decimal.Decimal
			for k, p := range coeffs {
				total = total.Add(horner(p, x[k]))
			}
			return total, nil
		}), nil
}

// horner evaluates a polynomial with constant term first.
func horner(coeffs []decimal.Decimal, x decimal.Decimal) decimal.Decimal {
	var v decimal.Decimal
	for i := len(coeffs) - 1; i >= 0; i-- {
		v = v.Mul(x).Add(coeffs[i])
	}
	return v
}

func polyName(coeffs []decimal.Decimal, axis int) string {
	variable := fmt.Sprintf("x%d", axis+1)
	terms := make([]string, 0, len(coeffs))
	for degree, c := range coeffs {
		if c.IsZero() {
			continue
		}
		switch degree {
		case 0:
			terms = append(terms, c.String())
		case 1:
			terms = append(terms, fmt.Sprintf("%s·%s", c, variable))
		default:
			terms = append(terms, fmt.Sprintf("%s·%s^%d", c, variable, degree))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, "+")
}
