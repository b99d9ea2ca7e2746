// Package format renders dollar amounts for display. All functions are pure
// and tolerate missing values: a nil amount renders as a placeholder dash
// rather than NaN or a panic.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Placeholder is rendered for missing or non-numeric amounts.
const Placeholder = "—"

// Currency renders a full fixed two-decimal dollar string, e.g. "$1,234.56".
// Negative amounts render as "-$1,234.56".
func Currency(amount *float64) string {
	if amount == nil || math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return Placeholder
	}
	v := *amount
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%s", sign, group(fmt.Sprintf("%.2f", v)))
}

// Compact renders an abbreviated dollar string: amounts at or above one
// million use an "M" suffix, at or above one thousand a "k" suffix, and
// smaller amounts render with no decimals.
func Compact(amount *float64) string {
	if amount == nil || math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return Placeholder
	}
	v := *amount
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%s$%.1fM", sign, v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%s$%.1fk", sign, v/1_000)
	default:
		return fmt.Sprintf("%s$%.0f", sign, v)
	}
}

// Percent renders a signed percentage with two decimals, e.g. "+33.33%".
func Percent(amount *float64) string {
	if amount == nil || math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return Placeholder
	}
	return fmt.Sprintf("%+.2f%%", *amount)
}

// group inserts thousands separators into the integer part of a fixed
// two-decimal numeric string.
func group(s string) string {
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]
	if len(intPart) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(frac)
	return b.String()
}
