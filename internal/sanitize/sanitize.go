// Package sanitize normalises and validates untrusted form input before it
// reaches the services. Every function is pure and total.
package sanitize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxURLLength caps every accepted URL.
const MaxURLLength = 2000

// Price bounds accepted for menu items.
const (
	MinPrice = 0
	MaxPrice = 9999.99
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pricePattern = regexp.MustCompile(`^\d+([.,]\d+)?$`)
)

// String drops invalid UTF-8 and NUL bytes, which PostgreSQL rejects, trims
// surrounding whitespace and truncates the result to maxLength runes.
func String(input string, maxLength int) string {
	s := strings.ToValidUTF8(input, "")
	s = strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
	if s == "" || maxLength <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLength])
}

// URL returns the trimmed input when it is an absolute http(s) URL or a
// site-relative path, and an empty string otherwise.
func URL(input string) string {
	s := strings.TrimSpace(input)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") && !strings.HasPrefix(s, "/") {
		return ""
	}
	return String(s, MaxURLLength)
}

// ValidateEmail reports whether input looks like an email address.
func ValidateEmail(input string) bool {
	return emailPattern.MatchString(input)
}

// Email sanitises and lower-cases an email address.
func Email(input string, maxLength int) string {
	return strings.ToLower(String(input, maxLength))
}

// ValidatePrice reports whether input parses to a price within bounds.
func ValidatePrice(input string) bool {
	_, ok := ParsePrice(input)
	return ok
}

// ParsePrice parses a plain decimal price ("12.50" or "12,50") and rounds
// it to two decimals. Signs, exponents and hex forms are rejected.
func ParsePrice(input string) (float64, bool) {
	s := strings.TrimSpace(input)
	if !pricePattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || v < MinPrice || v > MaxPrice {
		return 0, false
	}
	return math.Round(v*100) / 100, true
}

// Phone sanitises input and keeps only digits and the plus sign.
func Phone(input string, maxLength int) string {
	s := String(input, maxLength)
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, s)
}
