package categorize

import "github.com/insightdelivered/finance-insights/internal/models"

// Mode names the active categorization strategy.
type Mode string

const (
	ModeRule  Mode = "rule"
	ModeModel Mode = "model"
)

// Categorizer assigns categories to whole ledgers. The model is passed
// in explicitly (nil means rule mode) rather than probed from disk at
// call time, so the mode of a run is visible and testable.
type Categorizer struct {
	rules []CategoryRule
	model *Classifier
}

// New builds a categorizer. A nil rules slice uses the default table;
// a nil model selects rule mode.
func New(rules []CategoryRule, model *Classifier) *Categorizer {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Categorizer{rules: rules, model: model}
}

// Mode reports which strategy Categorize will use.
func (c *Categorizer) Mode() Mode {
	if c.model != nil {
		return ModeModel
	}
	return ModeRule
}

// Categorize returns a new ledger in which every transaction carries a
// category. The input ledger is not mutated. When a trained model is
// present it decides every row; otherwise the keyword table does.
// Re-running over an already categorized ledger reassigns the same
// labels.
func (c *Categorizer) Categorize(ledger models.Ledger) models.Ledger {
	out := ledger.Clone()
	for i := range out {
		if c.model != nil {
			out[i].Category = c.model.Predict(out[i].Description)
		} else {
			out[i].Category = matchRules(c.rules, out[i].Description)
		}
	}
	return out
}
