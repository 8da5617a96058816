package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single normalized ledger entry.
// Amounts follow one sign convention everywhere: negative is money out
// (debit), positive is money in (credit).
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
}

// IsDebit reports whether the transaction is money out.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// Month returns the calendar month of the transaction as "YYYY-MM".
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// Ledger is an ordered sequence of transactions. Duplicates are valid
// (repeated subscription charges look identical), and no date ordering
// is guaranteed; stages that need one must sort themselves.
type Ledger []Transaction

// Clone returns a copy of the ledger. Stages that annotate transactions
// work on a clone so the caller's ledger is never mutated.
func (l Ledger) Clone() Ledger {
	if l == nil {
		return nil
	}
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

// Statement is the result of loading one input document: the extracted
// ledger plus parse diagnostics.
type Statement struct {
	Ledger Ledger `json:"transactions"`
	// Rule names the layout rule that matched text input. Empty for
	// table input and for text that matched no rule.
	Rule string `json:"rule,omitempty"`
	// DroppedRows counts rows discarded for unparseable dates or
	// amounts. One bad row never discards a whole statement.
	DroppedRows int `json:"droppedRows"`
}
