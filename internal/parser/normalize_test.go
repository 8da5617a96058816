package parser

import (
	"testing"
	"time"
)

func findRule(t *testing.T, name string) *LayoutRule {
	t.Helper()
	rules := DefaultRules()
	for i := range rules {
		if rules[i].Name == name {
			return &rules[i]
		}
	}
	t.Fatalf("no rule named %q", name)
	return nil
}

func TestNormalize_SignedAmounts(t *testing.T) {
	rule := findRule(t, "slash-date-signed")
	rows := []RawRow{
		{Date: "15/01/2024", Description: "SWIGGY ORDER", Amount: "-450.00"},
		{Date: "17/01/2024", Description: "SALARY CREDIT", Amount: "50,000.00"},
	}

	ledger, dropped := Normalize(rows, rule)
	if dropped != 0 {
		t.Errorf("dropped: got %d, want 0", dropped)
	}
	if len(ledger) != 2 {
		t.Fatalf("ledger: got %d rows, want 2", len(ledger))
	}

	if got := ledger[0].Amount.String(); got != "-450" {
		t.Errorf("ledger[0].Amount: got %s", got)
	}
	if !ledger[0].IsDebit() {
		t.Error("ledger[0] should be a debit")
	}
	if got := ledger[1].Amount.String(); got != "50000" {
		t.Errorf("ledger[1].Amount: got %s", got)
	}
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !ledger[0].Date.Equal(want) {
		t.Errorf("ledger[0].Date: got %v, want %v", ledger[0].Date, want)
	}
}

func TestNormalize_DebitCreditConvention(t *testing.T) {
	rule := findRule(t, "debit-credit-columns")
	tests := []struct {
		name string
		row  RawRow
		want string
	}{
		{"debit negated", RawRow{Date: "15/01/2024", Description: "TESCO", Debit: "25.99", Credit: "-"}, "-25.99"},
		{"credit positive", RawRow{Date: "16/01/2024", Description: "SALARY", Debit: "-", Credit: "2,500.00"}, "2500"},
		{"both present prefers credit", RawRow{Date: "17/01/2024", Description: "WEIRD", Debit: "10.00", Credit: "20.00"}, "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, dropped := Normalize([]RawRow{tt.row}, rule)
			if dropped != 0 {
				t.Fatalf("dropped: got %d, want 0", dropped)
			}
			if got := ledger[0].Amount.String(); got != tt.want {
				t.Errorf("amount: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNormalize_DebitByDefault(t *testing.T) {
	rule := findRule(t, "space-date-debits")
	rows := []RawRow{
		{Date: "15 Jan 2024", Description: "DIRECT DEBIT SKY UK", Amount: "45.00"},
		{Date: "16 Jan 2024", Description: "REFUND", Amount: "-12.00"},
	}

	ledger, _ := Normalize(rows, rule)
	if got := ledger[0].Amount.String(); got != "-45" {
		t.Errorf("bare amount should be negated: got %s", got)
	}
	// An explicit sign is kept as-is even on debit-by-default layouts.
	if got := ledger[1].Amount.String(); got != "-12" {
		t.Errorf("signed amount: got %s", got)
	}
}

func TestNormalize_DropsBadRows(t *testing.T) {
	rule := findRule(t, "slash-date-signed")
	rows := []RawRow{
		{Date: "31/02/2024", Description: "NO SUCH DAY", Amount: "-5.00"},
		{Date: "15/01/2024", Description: "OK", Amount: "-5.00"},
		{Date: "16/01/2024", Description: "BAD AMOUNT", Amount: "abc"},
	}

	ledger, dropped := Normalize(rows, rule)
	if dropped != 2 {
		t.Errorf("dropped: got %d, want 2", dropped)
	}
	if len(ledger) != 1 {
		t.Fatalf("ledger: got %d rows, want 1", len(ledger))
	}
	if ledger[0].Description != "OK" {
		t.Errorf("surviving row: got %q", ledger[0].Description)
	}
}

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,234.56", "1234.56"},
		{"-£1,234.56", "-1234.56"},
		{"€45.00", "45.00"},
		{"₹50,000.00", "50000.00"},
		{" 25.99 ", "25.99"},
		{"-", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := cleanAmount(tt.in); got != tt.want {
			t.Errorf("cleanAmount(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
