package app

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads dotenv files into the process environment. Variables
// already set are kept. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnvToConfig populates unset extraction settings of cfg from
// environment variables. Call it after ApplyFileConfig: flags and the config
// file take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.CompanyKeyword == "" {
		cfg.CompanyKeyword = os.Getenv("PDFVALIDATE_COMPANY_KEYWORD")
	}
	if cfg.SimilarityThreshold == 0 {
		if v := strings.TrimSpace(os.Getenv("PDFVALIDATE_SIMILARITY_THRESHOLD")); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				cfg.SimilarityThreshold = n
			}
		}
	}
}

// ApplyEnvToLogging populates unset logging settings of cfg from environment
// variables. It runs before the config file is read.
func ApplyEnvToLogging(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.LogFile == "" {
		cfg.LogFile = os.Getenv("PDFVALIDATE_LOG_FILE")
	}
	if !cfg.Verbose {
		switch strings.ToLower(strings.TrimSpace(os.Getenv("PDFVALIDATE_VERBOSE"))) {
		case "1", "true", "yes", "on":
			cfg.Verbose = true
		}
	}
}
