package summary

import (
	"fmt"
	"math"
	"strconv"
)

// mean returns the arithmetic mean of vals, or NaN when empty.
func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stddev returns the sample standard deviation of vals, or NaN when
// fewer than two values are present.
func stddev(vals []float64) float64 {
	if len(vals) < 2 {
		return math.NaN()
	}
	m := mean(vals)
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

// formatFloat renders a statistic with the configured number of
// decimal digits; NaN renders as the missing marker.
func (c *Compiler) formatFloat(v float64) string {
	if math.IsNaN(v) {
		return c.opts.Missing
	}
	return strconv.FormatFloat(v, 'f', c.opts.Digits, 64)
}

// meanSD renders "mean (sd)" for a numeric sample.
func (c *Compiler) meanSD(vals []float64) string {
	if len(vals) == 0 {
		return c.opts.Missing
	}
	return fmt.Sprintf("%s (%s)", c.formatFloat(mean(vals)), c.formatFloat(stddev(vals)))
}

// countPct renders "count (pct%)" for a category count within a group.
func (c *Compiler) countPct(count, total int) string {
	if total == 0 {
		return c.opts.Missing
	}
	pct := 100 * float64(count) / float64(total)
	return fmt.Sprintf("%d (%s%%)", count, strconv.FormatFloat(pct, 'f', 1, 64))
}
