// Package invoicenum implements the invoice numbering scheme
// <year>-<4-digit zero-padded sequence>, with the sequence restarting each
// calendar year.
package invoicenum

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders an invoice number, e.g. Format(2024, 1) == "2024-0001".
func Format(year, seq int) string {
	return fmt.Sprintf("%04d-%04d", year, seq)
}

// Prefix returns the numbering prefix for a year, e.g. "2024-".
func Prefix(year int) string {
	return fmt.Sprintf("%04d-", year)
}

// Sequence extracts the numeric suffix of an invoice number. It returns 0
// when the number does not carry a parseable 4-digit suffix.
func Sequence(number string) int {
	if len(number) < 4 {
		return 0
	}
	n, err := strconv.Atoi(number[len(number)-4:])
	if err != nil {
		return 0
	}
	return n
}

// MaxSequence returns the largest sequence among the numbers belonging to
// year. Numbers from other years are ignored. An empty set yields 0, so the
// first allocated number for a year is always <year>-0001.
func MaxSequence(numbers []string, year int) int {
	prefix := Prefix(year)
	max := 0
	for _, n := range numbers {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		if seq := Sequence(n); seq > max {
			max = seq
		}
	}
	return max
}
