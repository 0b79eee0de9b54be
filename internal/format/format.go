// Package format turns numbers and times into display strings.
package format

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Percent renders a signed percentage with two decimals and thousands
// separators, e.g. "+1,234.50%". Zero renders without a sign.
func Percent(v decimal.Decimal) string {
	abs := v.Abs().Round(2)
	_, frac, _ := strings.Cut(abs.StringFixed(2), ".")

	var sign string
	switch {
	case v.Round(2).IsZero():
		sign = ""
	case v.IsNegative():
		sign = "-"
	default:
		sign = "+"
	}

	return sign + humanize.BigComma(abs.BigInt()) + "." + frac + "%"
}

// Ago renders t relative to now ("3 minutes ago"). The zero time renders
// as an empty string.
func Ago(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
