package parser

// RawRow holds the captured fields of one matched statement line,
// before normalization. Empty strings mark absent optional captures.
type RawRow struct {
	Date        string
	Description string
	Debit       string
	Credit      string
	Amount      string
}

// Match applies each rule to the text in order and returns the rows
// captured by the first rule that matches at least one line, along
// with that rule. Text matching no rule yields no rows and a nil
// rule: "no transactions found" is a result, not an error.
func Match(text string, rules []LayoutRule) ([]RawRow, *LayoutRule) {
	for i := range rules {
		rule := &rules[i]
		rows := applyRule(text, rule)
		if len(rows) > 0 {
			return rows, rule
		}
	}
	return nil, nil
}

func applyRule(text string, rule *LayoutRule) []RawRow {
	matches := rule.Pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	dateIdx := groupIndex(rule.Pattern, "date")
	descIdx := groupIndex(rule.Pattern, "desc")
	debitIdx := groupIndex(rule.Pattern, "debit")
	creditIdx := groupIndex(rule.Pattern, "credit")
	amountIdx := groupIndex(rule.Pattern, "amount")

	rows := make([]RawRow, 0, len(matches))
	for _, m := range matches {
		row := RawRow{
			Date:        group(m, dateIdx),
			Description: group(m, descIdx),
			Debit:       group(m, debitIdx),
			Credit:      group(m, creditIdx),
			Amount:      group(m, amountIdx),
		}
		rows = append(rows, row)
	}
	return rows
}

func group(m []string, idx int) string {
	if idx < 0 || idx >= len(m) {
		return ""
	}
	return m[idx]
}
