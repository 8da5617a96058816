package loader

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/finance-insights/internal/models"
)

func TestLoadCSV_WellFormed(t *testing.T) {
	csv := `Date,Description,Amount
2024-01-01,Swiggy Order,-450.00
2024-01-03,Salary Credit,50000.00
2024-01-04,Swiggy Order,-475.00`

	stmt, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Ledger, 3)
	assert.Equal(t, 0, stmt.DroppedRows)

	assert.Equal(t, "Swiggy Order", stmt.Ledger[0].Description)
	assert.Equal(t, "-450", stmt.Ledger[0].Amount.String())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), stmt.Ledger[0].Date)
	assert.Equal(t, "50000", stmt.Ledger[1].Amount.String())
}

func TestLoadCSV_MissingAmountColumn(t *testing.T) {
	csv := `Date,Description
2024-01-01,Swiggy Order`

	stmt, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err, "missing columns must not be an error")
	assert.Empty(t, stmt.Ledger)
}

func TestLoadCSV_MissingDescriptionColumn(t *testing.T) {
	csv := `Date,Amount
2024-01-01,-450.00`

	stmt, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, stmt.Ledger)
}

func TestLoadCSV_CategoryCarriedThrough(t *testing.T) {
	csv := `Date,Description,Amount,Category
2024-01-01,Swiggy Order,-450.00,Food`

	stmt, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Ledger, 1)
	assert.Equal(t, "Food", stmt.Ledger[0].Category)
}

func TestLoadCSV_DropsBadRows(t *testing.T) {
	csv := `Date,Description,Amount
2024-01-01,Fine Row,-450.00
not-a-date,Bad Date,-1.00
2024-01-02,Bad Amount,wat
2024-01-03,,12.00`

	stmt, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, stmt.Ledger, 1)
	assert.Equal(t, 3, stmt.DroppedRows)
}

func TestLoadCSV_AlternateDateFormats(t *testing.T) {
	csv := `Date,Description,Amount
15/01/2024,Slash Date,-1.00
01-Jan-2024,Dash Date,-2.00`

	stmt, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Ledger, 2)
	assert.Equal(t, time.January, stmt.Ledger[0].Date.Month())
	assert.Equal(t, 15, stmt.Ledger[0].Date.Day())
	assert.Equal(t, 1, stmt.Ledger[1].Date.Day())
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("statement.xlsx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUnsupportedFormat))
}

func TestFromText_NoMatchingRule(t *testing.T) {
	stmt := FromText("nothing here resembles a transaction")
	assert.Empty(t, stmt.Ledger)
	assert.Empty(t, stmt.Rule)
}

func TestFromPages_JoinsPages(t *testing.T) {
	pages := []string{
		"Statement page one\n15/01/2024 SWIGGY ORDER -450.00",
		"16/01/2024 UBER RIDE -120.00",
	}

	stmt := FromPages(pages)
	require.Len(t, stmt.Ledger, 2)
	assert.Equal(t, "slash-date-signed", stmt.Rule)
	assert.Equal(t, "SWIGGY ORDER", stmt.Ledger[0].Description)
	assert.Equal(t, "UBER RIDE", stmt.Ledger[1].Description)
}
