// Package validate compares extracted fields against caller-supplied
// expectations. Validators log their verdict and never fail hard.
package validate

import (
	"github.com/rs/zerolog"

	"github.com/hyperifyio/pdfvalidate/internal/extract"
	"github.com/hyperifyio/pdfvalidate/internal/fuzzy"
)

// DefaultSimilarityThreshold is the minimum partial ratio for a company name
// to pass.
const DefaultSimilarityThreshold = 80

// Validator checks one extracted field against its expected value.
type Validator interface {
	Validate(extracted extract.Field, expected string) bool
}

var (
	_ Validator = CompanyNameValidator{}
	_ Validator = DateValidator{}
)

// CompanyNameValidator accepts names whose case-folded partial ratio against
// the expected name reaches Threshold.
type CompanyNameValidator struct {
	Threshold int
	Logger    zerolog.Logger
}

func NewCompanyNameValidator(threshold int, logger zerolog.Logger) CompanyNameValidator {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return CompanyNameValidator{Threshold: threshold, Logger: logger}
}

func (v CompanyNameValidator) Validate(extracted extract.Field, expected string) bool {
	if extracted.Found && extracted.Value != "" {
		score := fuzzy.PartialRatio(fuzzy.Fold(extracted.Value), fuzzy.Fold(expected))
		if score >= v.Threshold {
			v.Logger.Info().Int("score", score).Msg("company name validation passed")
			return true
		}
		v.Logger.Debug().Int("score", score).Int("threshold", v.Threshold).Msg("company name similarity below threshold")
	}
	v.Logger.Warn().
		Str("expected", expected).
		Str("found", extracted.String()).
		Msg("company name validation failed")
	return false
}

// DateValidator accepts only an exact match of ISO dates. An empty extracted
// date never passes.
type DateValidator struct {
	Logger zerolog.Logger
}

func NewDateValidator(logger zerolog.Logger) DateValidator {
	return DateValidator{Logger: logger}
}

func (v DateValidator) Validate(extracted extract.Field, expected string) bool {
	if extracted.Found && extracted.Value != "" && extracted.Value == expected {
		v.Logger.Info().Msg("date validation passed")
		return true
	}
	v.Logger.Warn().
		Str("expected", expected).
		Str("found", extracted.String()).
		Msg("date validation failed")
	return false
}
