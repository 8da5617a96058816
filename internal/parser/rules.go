package parser

import "regexp"

// LayoutRule is a named extraction specification for one statement
// format variant. Rules are defined statically, compiled at init (a
// malformed pattern is a programming error and panics), and tried in
// registry order against the raw text.
type LayoutRule struct {
	// Name identifies the rule in diagnostics.
	Name string
	// Pattern matches one transaction line. Named groups carry the
	// field roles: date, desc, and either amount (single signed
	// column) or debit/credit (separate columns), plus an optional
	// balance group which is captured but unused.
	Pattern *regexp.Regexp
	// DateFormat is the Go time layout the date group parses against.
	DateFormat string
	// DebitByDefault treats a bare unsigned amount as money out.
	// Layouts whose single amount column carries payments use this;
	// layouts with explicitly signed amounts keep the sign as-is.
	DebitByDefault bool
}

// DefaultRules returns the built-in layout rules in priority order.
// Column layouts come before single-amount layouts: the generic rules
// would otherwise swallow a balance column as the amount. Adding a
// bank format means appending a rule here, not branching existing
// logic.
func DefaultRules() []LayoutRule {
	return []LayoutRule{
		{
			// "15/01/2024 CARD PAYMENT TESCO 25.99 - 1,234.56":
			// separate debit and credit columns ("-" marks the empty
			// one) followed by a running balance.
			Name: "debit-credit-columns",
			Pattern: regexp.MustCompile(
				`(?m)^\s*(?P<date>\d{1,2}/\d{1,2}/\d{4})\s+(?P<desc>\S.*?)\s+(?P<debit>[\d,]+\.\d{2}|-)\s+(?P<credit>[\d,]+\.\d{2}|-)\s+(?P<balance>[\d,]+\.\d{2})\s*$`),
			DateFormat: "2/1/2006",
		},
		{
			// "15/01/2024 SWIGGY ORDER -450.00": day-first slash
			// dates with an explicitly signed amount column.
			Name: "slash-date-signed",
			Pattern: regexp.MustCompile(
				`(?m)^\s*(?P<date>\d{1,2}/\d{1,2}/\d{4})\s+(?P<desc>\S.*?)\s+(?P<amount>-?[\d,]+\.\d{2})\s*$`),
			DateFormat: "2/1/2006",
		},
		{
			// "01-Jan-2024 Salary Credit 50000.00": textual month
			// with dashes, signed amount.
			Name: "dash-date-signed",
			Pattern: regexp.MustCompile(
				`(?m)^\s*(?P<date>\d{1,2}-[A-Za-z]{3}-\d{4})\s+(?P<desc>\S.*?)\s+(?P<amount>-?[\d,]+\.\d{2})\s*$`),
			DateFormat: "2-Jan-2006",
		},
		{
			// "15 Jan 2024 DIRECT DEBIT SKY UK 45.00": textual month
			// with spaces. The single amount column on these layouts
			// carries payments, so bare amounts are debits.
			Name: "space-date-debits",
			Pattern: regexp.MustCompile(
				`(?m)^\s*(?P<date>\d{1,2} [A-Za-z]{3} \d{4})\s+(?P<desc>\S.*?)\s+(?P<amount>-?[\d,]+\.\d{2})\s*$`),
			DateFormat:     "2 Jan 2006",
			DebitByDefault: true,
		},
	}
}

// groupIndex returns the submatch index of a named group, or -1.
func groupIndex(re *regexp.Regexp, name string) int {
	for i, n := range re.SubexpNames() {
		if n == name {
			return i
		}
	}
	return -1
}
