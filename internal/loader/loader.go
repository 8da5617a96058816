// Package loader turns statement files into a uniform ledger. Tables
// are parsed directly; PDFs go through text extraction and the layout
// rule matcher. Structurally broken tables (missing required columns)
// yield an empty ledger rather than an error so presentation layers
// see one uniform empty state; genuinely unsupported input kinds fail.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/finance-insights/internal/extractor"
	"github.com/insightdelivered/finance-insights/internal/models"
	"github.com/insightdelivered/finance-insights/internal/parser"
)

// Load reads a statement file and returns the extracted ledger with
// parse diagnostics. Supported inputs are .csv tables and .pdf
// documents; anything else returns models.ErrUnsupportedFormat.
func Load(path string) (*models.Statement, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return LoadCSV(f)
	case ".pdf":
		pages, err := extractor.Pages(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrUnsupportedFormat, err)
		}
		return FromPages(pages), nil
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedFormat, path)
	}
}

// FromPages runs extracted page text through the layout rules. Pages
// are joined with newlines; text matching no rule yields an empty
// statement, never an error.
func FromPages(pages []string) *models.Statement {
	text := strings.Join(pages, "\n")
	return FromText(text)
}

// FromText matches raw statement text against the default layout
// rules and normalizes the result.
func FromText(text string) *models.Statement {
	rows, rule := parser.Match(text, parser.DefaultRules())
	if rule == nil {
		return &models.Statement{}
	}
	ledger, dropped := parser.Normalize(rows, rule)
	return &models.Statement{
		Ledger:      ledger,
		Rule:        rule.Name,
		DroppedRows: dropped,
	}
}

// LoadCSV parses a delimited table with a header row. Description and
// Amount columns are required; if either is absent the statement is
// empty (an explicit degenerate outcome, not an error). A Category
// column, when present, is carried through.
func LoadCSV(r io.Reader) (*models.Statement, error) {
	table, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if table == nil || !table.hasRequiredColumns() {
		return &models.Statement{}, nil
	}

	stmt := &models.Statement{}
	for _, rec := range table.rows {
		txn, err := table.transaction(rec)
		if err != nil {
			stmt.DroppedRows++
			continue
		}
		stmt.Ledger = append(stmt.Ledger, txn)
	}
	return stmt, nil
}
