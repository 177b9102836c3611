package cli

import (
	"strconv"
	"strings"
)

// ParseNatural parses a non-negative integer written as digits, optionally
// followed by a dot and only zeros ("3", "3.", "3.00", ".0").
func ParseNatural(s string) (int, bool) {
	if s == "" || s == "." {
		return 0, false
	}

	whole, frac, _ := strings.Cut(s, ".")
	if !allDigits(whole) || strings.Trim(frac, "0") != "" {
		return 0, false
	}
	if whole == "" {
		return 0, true
	}

	n, err := strconv.Atoi(whole)
	if err != nil {
		return 0, false
	}
	return n, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
