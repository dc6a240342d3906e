// Package formatters holds the live input masks of the card form.
// Every function accepts partial input and is idempotent on its own output.
package formatters

import "strings"

const (
	cardNumberDigits = 16
	expirationDigits = 4
	cpfDigits        = 11
	cvvDigits        = 4
)

// Digits drops every character that is not an ASCII digit.
func Digits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber groups the first 16 digits in blocks of four: "4111 1111 1111 1111".
func FormatCardNumber(value string) string {
	digits := limit(Digits(value), cardNumberDigits)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpirationDate renders up to four digits as MM/YY.
func FormatExpirationDate(value string) string {
	digits := limit(Digits(value), expirationDigits)
	if len(digits) > 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// FormatCPF renders up to eleven digits as xxx.xxx.xxx-xx.
func FormatCPF(value string) string {
	d := limit(Digits(value), cpfDigits)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

func limit(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// FormatCVV keeps at most four digits.
func FormatCVV(value string) string {
	return limit(Digits(value), cvvDigits)
}
