// Package categorize assigns spending categories to ledger entries,
// either from an ordered keyword rule table or from a trained text
// classifier. The two strategies are never mixed within a run: the
// whole ledger is categorized in rule mode or in model mode so results
// stay reproducible and explainable.
package categorize

import (
	"strings"

	"github.com/insightdelivered/finance-insights/internal/models"
)

// CategoryRule maps one category to its matching keywords. Rules are
// consulted in declaration order and the first keyword hit wins.
type CategoryRule struct {
	Category string
	Keywords []string
}

// DefaultRules returns the built-in keyword table. Order matters:
// earlier categories take priority when descriptions match several.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{Category: models.CategoryFood, Keywords: []string{"swiggy", "zomato", "restaurant", "cafe"}},
		{Category: models.CategoryTransport, Keywords: []string{"uber", "ola", "fuel", "metro"}},
		{Category: models.CategoryGroceries, Keywords: []string{"bigbasket", "grofers", "supermarket"}},
		{Category: models.CategorySalary, Keywords: []string{"salary", "credited", "payroll"}},
		{Category: models.CategoryRent, Keywords: []string{"rent", "lease"}},
		{Category: models.CategoryUtilities, Keywords: []string{"electricity", "water", "bill", "internet"}},
		{Category: models.CategoryEntertainment, Keywords: []string{"netflix", "prime", "hotstar", "bookmyshow"}},
	}
}

// matchRules returns the first category whose keywords appear in the
// description (case-insensitive substring match), or the fallback
// label when nothing matches.
func matchRules(rules []CategoryRule, description string) string {
	desc := strings.ToLower(description)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(desc, kw) {
				return rule.Category
			}
		}
	}
	return models.CategoryOthers
}
