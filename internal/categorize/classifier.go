package categorize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jbrukh/bayesian"

	"github.com/insightdelivered/finance-insights/internal/models"
)

// Classifier wraps a naive-Bayes text model over transaction
// descriptions. It satisfies the train / persist / load / predict
// contract the pipeline needs; everything else about the model is
// opaque to callers.
type Classifier struct {
	cls *bayesian.Classifier
}

// Train fits a classifier on parallel description and label slices.
// It fails with models.ErrTrainingPrecondition when labels are absent
// or cover fewer than two distinct categories.
func Train(descriptions, labels []string) (*Classifier, error) {
	if len(descriptions) == 0 || len(descriptions) != len(labels) {
		return nil, fmt.Errorf("%w: %d descriptions, %d labels",
			models.ErrTrainingPrecondition, len(descriptions), len(labels))
	}

	classes := distinctClasses(labels)
	if len(classes) < 2 {
		return nil, fmt.Errorf("%w: need at least two distinct categories, got %d",
			models.ErrTrainingPrecondition, len(classes))
	}

	cls := bayesian.NewClassifier(classes...)
	for i, desc := range descriptions {
		if labels[i] == "" {
			return nil, fmt.Errorf("%w: row %d has no category", models.ErrTrainingPrecondition, i)
		}
		cls.Learn(tokenize(desc), bayesian.Class(labels[i]))
	}
	return &Classifier{cls: cls}, nil
}

// Save persists the model to path.
func (c *Classifier) Save(path string) error {
	if err := c.cls.WriteToFile(path); err != nil {
		return fmt.Errorf("persisting classifier to %s: %w", path, err)
	}
	return nil
}

// LoadClassifier reads a previously persisted model. A missing or
// corrupt artifact returns an error wrapping models.ErrModelUnavailable;
// callers treat that as the signal to fall back to rule mode.
func LoadClassifier(path string) (*Classifier, error) {
	cls, err := bayesian.NewClassifierFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrModelUnavailable, err)
	}
	return &Classifier{cls: cls}, nil
}

// Predict returns the most likely category for a description.
func (c *Classifier) Predict(description string) string {
	_, idx, _ := c.cls.LogScores(tokenize(description))
	return string(c.cls.Classes[idx])
}

func distinctClasses(labels []string) []bayesian.Class {
	seen := make(map[string]bool)
	var classes []bayesian.Class
	for _, l := range labels {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		classes = append(classes, bayesian.Class(l))
	}
	return classes
}

// tokenize lower-cases a description and splits it on anything that is
// not a letter or digit.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
