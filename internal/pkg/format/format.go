// Package format holds the pure display-shaping helpers consumed by
// the presentation layer: metric abbreviation, durations, growth
// percentages, and the company slug scheme used in dashboard routes.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const NotAvailable = "N/A"

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives the URL-safe identifier from a brand name:
// lowercased, whitespace runs collapsed to single hyphens, every other
// non-alphanumeric character stripped. "A&W! Root Beer" -> "aw-root-beer".
func Slugify(brandName string) string {
	s := strings.ToLower(strings.TrimSpace(brandName))
	s = whitespaceRe.ReplaceAllString(s, "-")
	return nonSlugRe.ReplaceAllString(s, "")
}

// Abbreviate renders a metric in compact form: 1234 -> "1.2K",
// 1200000 -> "1.2M", 2500000000 -> "2.5B". Values under a thousand
// keep their integer form.
func Abbreviate(v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	switch {
	case v >= 1e9:
		return neg + trimZero(v/1e9) + "B"
	case v >= 1e6:
		return neg + trimZero(v/1e6) + "M"
	case v >= 1e3:
		return neg + trimZero(v/1e3) + "K"
	default:
		return neg + trimZero(v)
	}
}

// AbbreviateMetric is the nil-tolerant variant used for fields the
// backend may omit.
func AbbreviateMetric(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return Abbreviate(*v)
}

// Currency prefixes an abbreviated amount with a dollar sign.
func Currency(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return "$" + Abbreviate(*v)
}

// Duration renders a second count as "3m 24s" (or "1h 2m" above an
// hour, "45s" below a minute).
func Duration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		return NotAvailable
	}
	total := int(math.Round(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// Growth computes the percentage change between the first and last
// element of a series. The second return is false when the series is
// too short or starts at zero.
func Growth(series []float64) (float64, bool) {
	if len(series) < 2 {
		return 0, false
	}
	first, last := series[0], series[len(series)-1]
	if first == 0 {
		return 0, false
	}
	return (last - first) / first * 100, true
}

// GrowthLabel renders Growth with a sign and percent suffix, or "N/A".
func GrowthLabel(series []float64) string {
	pct, ok := Growth(series)
	if !ok {
		return NotAvailable
	}
	sign := ""
	if pct > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, pct)
}

func trimZero(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
