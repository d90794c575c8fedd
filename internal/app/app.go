package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/pdfvalidate/internal/extract"
	"github.com/hyperifyio/pdfvalidate/internal/pdftext"
	"github.com/hyperifyio/pdfvalidate/internal/validate"
)

// App runs the extract-then-validate pipeline for one document.
type App struct {
	cfg    Config
	logger zerolog.Logger
	src    pdftext.Reader
}

// Report is the outcome of a run. Nothing in it is persisted.
type Report struct {
	Company      extract.Field
	Date         extract.Field
	CompanyValid bool
	DateValid    bool
}

// Passed reports whether every field validated.
func (r Report) Passed() bool {
	return r.CompanyValid && r.DateValid
}

func New(cfg Config, logger zerolog.Logger) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.SimilarityThreshold == 0 {
		cfg.SimilarityThreshold = validate.DefaultSimilarityThreshold
	}
	return &App{cfg: cfg, logger: logger, src: pdftext.PDFReader{}}, nil
}

// Run extracts the company name and date from the document's first page and
// validates both. A failed validation is logged and reflected in the Report;
// the returned error is reserved for a cancelled context or a bad keyword.
func (a *App) Run(ctx context.Context) (Report, error) {
	var rep Report
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	start := time.Now()
	log := a.logger.With().Str("pdf", a.cfg.PDFPath).Logger()

	if _, err := time.Parse(extract.ISODateLayout, a.cfg.ExpectedDate); err != nil {
		log.Warn().Str("expected", a.cfg.ExpectedDate).Msg("expected date is not in YYYY-MM-DD form")
	}

	// 1) Build extractors
	companyExtractor, err := extract.NewCompanyNameExtractor(a.cfg.CompanyKeyword, a.src, log)
	if err != nil {
		return rep, fmt.Errorf("build company extractor: %w", err)
	}
	dateExtractor := extract.NewDateExtractor(a.src, log)

	// 2) Extract
	rep.Company = companyExtractor.Extract(a.cfg.PDFPath)
	rep.Date = dateExtractor.Extract(a.cfg.PDFPath)
	log.Debug().
		Str("company", rep.Company.String()).
		Str("date", rep.Date.String()).
		Msg("extraction finished")

	// 3) Validate
	rep.CompanyValid = validate.NewCompanyNameValidator(a.cfg.SimilarityThreshold, log).
		Validate(rep.Company, a.cfg.ExpectedCompany)
	rep.DateValid = validate.NewDateValidator(log).
		Validate(rep.Date, a.cfg.ExpectedDate)

	// 4) Aggregate
	if rep.Passed() {
		log.Info().Dur("took", time.Since(start)).Msg("all validations passed successfully")
	} else {
		log.Error().
			Bool("company_valid", rep.CompanyValid).
			Bool("date_valid", rep.DateValid).
			Msg("validation failed")
	}
	return rep, nil
}
