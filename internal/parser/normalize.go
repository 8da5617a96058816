package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/finance-insights/internal/models"
)

// Normalize converts matched raw rows into transactions. Row-level
// failures (unparseable date or amount, empty description) drop the
// row and increment the returned count; one bad row never aborts the
// statement.
func Normalize(rows []RawRow, rule *LayoutRule) (models.Ledger, int) {
	var ledger models.Ledger
	dropped := 0
	for _, row := range rows {
		txn, err := normalizeRow(row, rule)
		if err != nil {
			dropped++
			continue
		}
		ledger = append(ledger, txn)
	}
	return ledger, dropped
}

func normalizeRow(row RawRow, rule *LayoutRule) (models.Transaction, error) {
	date, err := time.Parse(rule.DateFormat, strings.TrimSpace(row.Date))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("parsing date %q: %w", row.Date, err)
	}

	desc := strings.TrimSpace(row.Description)
	if desc == "" {
		return models.Transaction{}, fmt.Errorf("empty description")
	}

	amount, err := resolveAmount(row, rule)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
	}, nil
}

// resolveAmount turns the captured amount fields into one signed
// decimal. For column layouts, a credit is kept positive and a debit
// negated; a row carrying both is malformed input and the credit wins.
// For single-column layouts an explicit sign is kept as-is, and a bare
// amount is negated only when the rule declares the column debit.
func resolveAmount(row RawRow, rule *LayoutRule) (decimal.Decimal, error) {
	credit := cleanAmount(row.Credit)
	debit := cleanAmount(row.Debit)

	switch {
	case credit != "":
		return decimal.NewFromString(credit)
	case debit != "":
		amt, err := decimal.NewFromString(debit)
		if err != nil {
			return decimal.Zero, err
		}
		return amt.Neg(), nil
	}

	raw := cleanAmount(row.Amount)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("no amount captured")
	}
	amt, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if rule.DebitByDefault && !strings.HasPrefix(raw, "-") {
		amt = amt.Neg()
	}
	return amt, nil
}
