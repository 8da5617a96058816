package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/finance-insights/internal/models"
)

// table holds a parsed delimited file: the header-derived column
// indexes and the data rows.
type table struct {
	dateCol     int
	descCol     int
	amountCol   int
	categoryCol int
	rows        [][]string
}

// csvDateFormats are tried in order when parsing table dates.
var csvDateFormats = []string{
	"2006-01-02",
	"2/1/2006",
	"2-Jan-2006",
	"2 Jan 2006",
	time.RFC3339,
}

func readTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	t := &table{dateCol: -1, descCol: -1, amountCol: -1, categoryCol: -1}
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			t.dateCol = i
		case "description":
			t.descCol = i
		case "amount":
			t.amountCol = i
		case "category":
			t.categoryCol = i
		}
	}
	t.rows = records[1:]
	return t, nil
}

func (t *table) hasRequiredColumns() bool {
	return t.descCol >= 0 && t.amountCol >= 0
}

func (t *table) transaction(rec []string) (models.Transaction, error) {
	if t.descCol >= len(rec) || t.amountCol >= len(rec) {
		return models.Transaction{}, fmt.Errorf("short row")
	}

	desc := strings.TrimSpace(rec[t.descCol])
	if desc == "" {
		return models.Transaction{}, fmt.Errorf("empty description")
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rec[t.amountCol]), ",", ""))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("parsing amount: %w", err)
	}

	txn := models.Transaction{Description: desc, Amount: amount}

	if t.dateCol >= 0 && t.dateCol < len(rec) {
		date, err := parseTableDate(rec[t.dateCol])
		if err != nil {
			return models.Transaction{}, err
		}
		txn.Date = date
	}

	if t.categoryCol >= 0 && t.categoryCol < len(rec) {
		txn.Category = strings.TrimSpace(rec[t.categoryCol])
	}
	return txn, nil
}

func parseTableDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range csvDateFormats {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
