// Package insights derives analytical views from a categorized
// ledger. Every computation is read-only and tolerates an empty
// ledger by returning an empty result.
package insights

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"github.com/insightdelivered/finance-insights/internal/models"
)

// Defaults for the analytical views.
const (
	DefaultTopN           = 5
	DefaultMinOccurrences = 3
	DefaultZThreshold     = 2.5
)

// MonthlySummary is a table of amount sums keyed by calendar month,
// with one column per observed category. Unobserved (month, category)
// pairs are implicitly zero.
type MonthlySummary struct {
	Months     []string `json:"months"`     // sorted "YYYY-MM"
	Categories []string `json:"categories"` // sorted observed categories
	// Totals maps month -> category -> summed amount.
	Totals map[string]map[string]decimal.Decimal `json:"totals"`
}

// Total returns the sum for a (month, category) pair, zero when the
// pair was never observed.
func (s MonthlySummary) Total(month, category string) decimal.Decimal {
	if byCat, ok := s.Totals[month]; ok {
		if v, ok := byCat[category]; ok {
			return v
		}
	}
	return decimal.Zero
}

// Monthly groups the ledger by calendar month and category and sums
// amounts.
func Monthly(ledger models.Ledger) MonthlySummary {
	summary := MonthlySummary{Totals: make(map[string]map[string]decimal.Decimal)}
	catSet := make(map[string]bool)

	for _, txn := range ledger {
		month := txn.Month()
		byCat := summary.Totals[month]
		if byCat == nil {
			byCat = make(map[string]decimal.Decimal)
			summary.Totals[month] = byCat
			summary.Months = append(summary.Months, month)
		}
		byCat[txn.Category] = byCat[txn.Category].Add(txn.Amount)
		if !catSet[txn.Category] {
			catSet[txn.Category] = true
			summary.Categories = append(summary.Categories, txn.Category)
		}
	}

	sort.Strings(summary.Months)
	sort.Strings(summary.Categories)
	return summary
}

// TopExpenses returns the n largest debits by absolute amount,
// descending. Ties keep the original ledger order (stable sort), and
// credits are never included.
func TopExpenses(ledger models.Ledger, n int) models.Ledger {
	if n <= 0 {
		return nil
	}
	var expenses models.Ledger
	for _, txn := range ledger {
		if txn.IsDebit() {
			expenses = append(expenses, txn)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount.Abs().GreaterThan(expenses[j].Amount.Abs())
	})
	if len(expenses) > n {
		expenses = expenses[:n]
	}
	return expenses
}

// RecurringGroup is a set of transactions sharing one exact
// description, sorted by date ascending.
type RecurringGroup struct {
	Description  string        `json:"description"`
	Transactions models.Ledger `json:"transactions"`
}

// Recurring returns description groups seen at least minOccurrences
// times. Groups are ordered by description; transactions inside each
// group are ordered by date.
func Recurring(ledger models.Ledger, minOccurrences int) []RecurringGroup {
	if minOccurrences < 1 {
		minOccurrences = 1
	}
	byDesc := make(map[string]models.Ledger)
	for _, txn := range ledger {
		byDesc[txn.Description] = append(byDesc[txn.Description], txn)
	}

	var groups []RecurringGroup
	for desc, txns := range byDesc {
		if len(txns) < minOccurrences {
			continue
		}
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Date.Before(txns[j].Date)
		})
		groups = append(groups, RecurringGroup{Description: desc, Transactions: txns})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Description < groups[j].Description
	})
	return groups
}

// Anomaly is a transaction whose amount deviates from the ledger mean
// by more than the z-score threshold.
type Anomaly struct {
	models.Transaction
	ZScore float64 `json:"zScore"`
}

// Anomalies flags transactions with |z-score| above threshold. With
// fewer than two transactions, or when every amount is identical, the
// standard deviation is undefined or zero and nothing is flagged.
func Anomalies(ledger models.Ledger, threshold float64) []Anomaly {
	if len(ledger) < 2 {
		return nil
	}

	amounts := make([]float64, len(ledger))
	for i, txn := range ledger {
		amounts[i] = txn.Amount.InexactFloat64()
	}

	mean, err := stats.Mean(amounts)
	if err != nil {
		return nil
	}
	stddev, err := stats.StandardDeviationSample(amounts)
	if err != nil || stddev == 0 {
		return nil
	}

	var flagged []Anomaly
	for i, txn := range ledger {
		z := (amounts[i] - mean) / stddev
		if z > threshold || z < -threshold {
			flagged = append(flagged, Anomaly{Transaction: txn, ZScore: z})
		}
	}
	return flagged
}
