package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/finance-insights/internal/insights"
	"github.com/insightdelivered/finance-insights/internal/models"
)

// ledgerHeader is the column layout of an exported ledger. No index
// column; amounts use the two-decimal convention.
var ledgerHeader = []string{"Date", "Description", "Amount", "Category"}

const dateLayout = "2006-01-02"

// WriteLedger writes a categorized ledger in CSV format.
func WriteLedger(out io.Writer, ledger models.Ledger) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write(ledgerHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, txn := range ledger {
		row := []string{
			txn.Date.Format(dateLayout),
			txn.Description,
			txn.Amount.StringFixed(2),
			txn.Category,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteLedgerFile writes the ledger CSV to a file at path.
func WriteLedgerFile(path string, ledger models.Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()
	return WriteLedger(f, ledger)
}

// WriteMonthlySummary writes a month-by-category table: one row per
// month, one column per observed category, zeros for unobserved pairs.
func WriteMonthlySummary(out io.Writer, summary insights.MonthlySummary) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := append([]string{"Month"}, summary.Categories...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	for _, month := range summary.Months {
		row := make([]string, 0, len(header))
		row = append(row, month)
		for _, cat := range summary.Categories {
			row = append(row, summary.Total(month, cat).StringFixed(2))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
