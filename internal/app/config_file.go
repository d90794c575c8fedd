package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/pdfvalidate/internal/extract"
)

// FileConfig is the configuration file schema. Only company_keyword is
// required.
type FileConfig struct {
	CompanyKeyword string `yaml:"company_keyword" json:"company_keyword"`
	// SimilarityThreshold of 0 or unset means validate.DefaultSimilarityThreshold.
	SimilarityThreshold int `yaml:"similarity_threshold" json:"similarity_threshold"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig fills fields of cfg that are still unset from fc. Values
// given on the command line win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if strings.TrimSpace(cfg.CompanyKeyword) == "" && fc.CompanyKeyword != "" {
		cfg.CompanyKeyword = fc.CompanyKeyword
	}
	if cfg.SimilarityThreshold == 0 && fc.SimilarityThreshold > 0 {
		cfg.SimilarityThreshold = fc.SimilarityThreshold
	}
}

// ValidateConfig checks the settings a run cannot do without. Empty expected
// values are allowed; they simply fail validation.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.PDFPath) == "" {
		return errors.New("config: pdf path is required")
	}
	if strings.TrimSpace(cfg.CompanyKeyword) == "" {
		return errors.New("config: company_keyword is required")
	}
	if _, err := extract.CompilePattern(cfg.CompanyKeyword); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 100 {
		return errors.New("config: similarity_threshold must be within 0..100 (0 selects the default)")
	}
	return nil
}
