// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with the configured currency symbol and
// Indian digit grouping, no fraction digits. e.g. 125000 -> "₹1,25,000".
func FormatMoney(symbol string, amount float64) string {
	n := int64(math.Round(amount))
	if n < 0 {
		return "-" + symbol + groupIndian(-n)
	}
	return symbol + groupIndian(n)
}

// FormatSignedMoney is FormatMoney with an explicit leading sign, used for
// transaction amounts where direction matters.
func FormatSignedMoney(symbol string, amount float64) string {
	if amount >= 0 {
		return "+" + FormatMoney(symbol, amount)
	}
	return FormatMoney(symbol, amount)
}

// groupIndian inserts separators in the Indian numbering style: the last
// three digits form one group, everything before groups in pairs.
// e.g. 1234567 -> "12,34,567".
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)

	return strings.Join(parts, ",") + "," + tail
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDelta formats a period-over-period percentage change with sign.
// e.g. 12.5 -> "+12.5%", -8.1 -> "-8.1%".
func FormatDelta(pct float64) string {
	return fmt.Sprintf("%+.1f%%", pct)
}

// FormatCount adds comma separators to an integer count.
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// Truncate shortens s to max runes with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
