// Package rut validates and formats Chilean RUT identifiers using the
// Módulo 11 checksum.
package rut

import "strings"

// Clean strips everything but digits and the check character K, uppercased.
func Clean(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'k' || r == 'K':
			b.WriteRune('K')
		}
	}
	return b.String()
}

// ComputeCheckDigit returns the Módulo 11 check character for a RUT body made
// of digits only. Each digit, walked right to left, is multiplied by the
// cycling weight sequence 2,3,4,5,6,7 and summed; 11-(sum mod 11) maps to
// "0" for 11 and "K" for 10.
func ComputeCheckDigit(body string) string {
	sum := 0
	multiplier := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * multiplier
		multiplier++
		if multiplier > 7 {
			multiplier = 2
		}
	}

	switch dv := 11 - sum%11; dv {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + dv))
	}
}

// Validate reports whether value is a well-formed RUT whose trailing check
// character matches the Módulo 11 checksum of its body. Dots and hyphens are
// ignored; the check character is case-insensitive.
func Validate(value string) bool {
	cleaned := Clean(value)
	if len(cleaned) < 2 {
		return false
	}

	body := cleaned[:len(cleaned)-1]
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return false
		}
	}

	return ComputeCheckDigit(body) == cleaned[len(cleaned)-1:]
}

// Format renders a RUT as XX.XXX.XXX-X: thousands separators over the body
// and a hyphen before the check character. Input longer than nine characters
// plus the check digit is truncated, matching what the intake form accepts.
func Format(value string) string {
	cleaned := Clean(value)
	if len(cleaned) > 10 {
		cleaned = cleaned[:10]
	}
	if len(cleaned) < 2 {
		return cleaned
	}

	dv := cleaned[len(cleaned)-1:]
	body := cleaned[:len(cleaned)-1]

	var parts []string
	for len(body) > 3 {
		parts = append([]string{body[len(body)-3:]}, parts...)
		body = body[:len(body)-3]
	}
	if body != "" {
		parts = append([]string{body}, parts...)
	}

	return strings.Join(parts, ".") + "-" + dv
}
