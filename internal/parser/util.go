package parser

import "strings"

// cleanAmount strips currency symbols, thousands separators and
// whitespace from an amount string. A lone "-" is a column
// placeholder, not a number, and cleans to the empty string.
func cleanAmount(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return ""
	}
	for _, sym := range []string{"£", "$", "€", "₹", ",", " ", " "} {
		s = strings.ReplaceAll(s, sym, "")
	}
	return s
}
