// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatWon formats an amount in 만원 with comma separators.
// e.g., 1234.0 -> "1,234만"
func FormatWon(v float64) string {
	return FormatNumber(int64(math.Round(v))) + "만"
}

// FormatEok formats an amount in 만원 using the 억 notation for amounts of
// one hundred million KRW and up.
// e.g., 70000 -> "7억", 41863 -> "4억 1,863만", 186 -> "186만"
func FormatEok(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}

	var s string
	switch {
	case n >= 10_000 && n%10_000 == 0:
		s = fmt.Sprintf("%d억", n/10_000)
	case n >= 10_000:
		s = fmt.Sprintf("%d억 %s만", n/10_000, FormatNumber(n%10_000))
	default:
		s = FormatNumber(n) + "만"
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatKRW formats an amount given in 만원 as full KRW digits.
// e.g., 186.382 -> "1,863,820"
func FormatKRW(v float64) string {
	return FormatNumber(int64(math.Round(v * 10_000)))
}

// FormatSignedWon formats a net amount with an explicit sign.
// e.g., 42.0 -> "+42만", -17.0 -> "-17만"
func FormatSignedWon(v float64) string {
	if v >= 0 {
		return "+" + FormatWon(v)
	}
	return "-" + FormatWon(-v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
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

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats a rate already expressed in percent.
// e.g., 3.8 -> "3.8%"
func FormatRate(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatMonth renders a calendar month as "2025-03".
func FormatMonth(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}
