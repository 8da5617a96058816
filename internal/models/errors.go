package models

import "errors"

// ErrUnsupportedFormat is returned by the loader when the input is
// neither a recognized table nor extractable text. It is fatal to the
// load call; structurally broken but recognized inputs (e.g. a table
// missing required columns) instead yield an empty ledger.
var ErrUnsupportedFormat = errors.New("unsupported statement format")

// ErrModelUnavailable reports a missing or unreadable classifier
// artifact. Non-fatal: callers fall back to rule-based categorization.
var ErrModelUnavailable = errors.New("classifier model unavailable")

// ErrTrainingPrecondition reports that training was invoked without
// usable labels. Fatal to the training call only.
var ErrTrainingPrecondition = errors.New("training requires labeled transactions")
