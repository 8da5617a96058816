package parser

import (
	"testing"
)

func TestMatch_SlashDateSigned(t *testing.T) {
	text := `Some Bank
Account Statement

15/01/2024 SWIGGY ORDER -450.00
17/01/2024 SALARY CREDIT 50000.00`

	rows, rule := Match(text, DefaultRules())
	if rule == nil {
		t.Fatal("expected a rule to match")
	}
	if rule.Name != "slash-date-signed" {
		t.Errorf("rule: got %q, want %q", rule.Name, "slash-date-signed")
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	if rows[0].Date != "15/01/2024" {
		t.Errorf("rows[0].Date: got %q", rows[0].Date)
	}
	if rows[0].Description != "SWIGGY ORDER" {
		t.Errorf("rows[0].Description: got %q", rows[0].Description)
	}
	if rows[0].Amount != "-450.00" {
		t.Errorf("rows[0].Amount: got %q", rows[0].Amount)
	}
	if rows[1].Amount != "50000.00" {
		t.Errorf("rows[1].Amount: got %q", rows[1].Amount)
	}
}

func TestMatch_DebitCreditColumns(t *testing.T) {
	text := `Date Description Paid out Paid in Balance
15/01/2024 CARD PAYMENT TESCO 25.99 - 1,234.56
17/01/2024 BANK CREDIT SALARY - 2,500.00 3,734.56`

	rows, rule := Match(text, DefaultRules())
	if rule == nil {
		t.Fatal("expected a rule to match")
	}
	if rule.Name != "debit-credit-columns" {
		t.Errorf("rule: got %q, want %q", rule.Name, "debit-credit-columns")
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	if rows[0].Debit != "25.99" || rows[0].Credit != "-" {
		t.Errorf("rows[0]: debit %q credit %q", rows[0].Debit, rows[0].Credit)
	}
	if rows[1].Debit != "-" || rows[1].Credit != "2,500.00" {
		t.Errorf("rows[1]: debit %q credit %q", rows[1].Debit, rows[1].Credit)
	}
}

func TestMatch_DashAndSpaceDates(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantRule string
	}{
		{
			name:     "dash textual month",
			text:     "01-Jan-2024 Swiggy Order -450.00",
			wantRule: "dash-date-signed",
		},
		{
			name:     "space textual month",
			text:     "15 Jan 2024 DIRECT DEBIT SKY UK 45.00",
			wantRule: "space-date-debits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, rule := Match(tt.text, DefaultRules())
			if rule == nil {
				t.Fatal("expected a rule to match")
			}
			if rule.Name != tt.wantRule {
				t.Errorf("rule: got %q, want %q", rule.Name, tt.wantRule)
			}
			if len(rows) != 1 {
				t.Errorf("rows: got %d, want 1", len(rows))
			}
		})
	}
}

func TestMatch_NoRuleMatches(t *testing.T) {
	rows, rule := Match("just some prose with no transactions at all", DefaultRules())
	if rule != nil {
		t.Errorf("rule: got %q, want nil", rule.Name)
	}
	if len(rows) != 0 {
		t.Errorf("rows: got %d, want 0", len(rows))
	}
}

func TestMatch_FirstRuleWins(t *testing.T) {
	// Column layout lines also resemble the generic signed layout; the
	// column rule must win because it is registered first.
	text := "15/01/2024 CARD PAYMENT TESCO 25.99 - 1,234.56"
	_, rule := Match(text, DefaultRules())
	if rule == nil || rule.Name != "debit-credit-columns" {
		t.Fatalf("expected debit-credit-columns to win, got %v", rule)
	}
}
