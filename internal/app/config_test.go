package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadConfigFile_YAML(t *testing.T) {
	p := writeFile(t, "config.yaml", "company_keyword: \"Acme|Zenith\"\nsimilarity_threshold: 85\n")
	fc, err := LoadConfigFile(p)
	require.NoError(t, err)
	assert.Equal(t, "Acme|Zenith", fc.CompanyKeyword)
	assert.Equal(t, 85, fc.SimilarityThreshold)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	p := writeFile(t, "config.json", `{"company_keyword": "Acme"}`)
	fc, err := LoadConfigFile(p)
	require.NoError(t, err)
	assert.Equal(t, "Acme", fc.CompanyKeyword)
}

func TestLoadConfigFile_UnknownExtensionFallsBack(t *testing.T) {
	p := writeFile(t, "config.conf", "company_keyword: Acme\n")
	fc, err := LoadConfigFile(p)
	require.NoError(t, err)
	assert.Equal(t, "Acme", fc.CompanyKeyword)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	p := writeFile(t, "bad.yaml", "company_keyword: [unterminated\n")
	_, err = LoadConfigFile(p)
	assert.ErrorContains(t, err, "parse yaml")
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{CompanyKeyword: "Zenith"}
	ApplyFileConfig(&cfg, FileConfig{CompanyKeyword: "Acme", SimilarityThreshold: 90})
	assert.Equal(t, "Zenith", cfg.CompanyKeyword)
	assert.Equal(t, 90, cfg.SimilarityThreshold)

	ApplyFileConfig(nil, FileConfig{})
}

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("PDFVALIDATE_LOG_FILE", "/tmp/run.log")
	t.Setenv("PDFVALIDATE_COMPANY_KEYWORD", "Acme")
	t.Setenv("PDFVALIDATE_SIMILARITY_THRESHOLD", "70")
	t.Setenv("PDFVALIDATE_VERBOSE", "true")

	cfg := Config{CompanyKeyword: "FromFile"}
	ApplyEnvToConfig(&cfg)
	assert.Equal(t, "FromFile", cfg.CompanyKeyword)
	assert.Equal(t, 70, cfg.SimilarityThreshold)
	assert.Empty(t, cfg.LogFile)

	ApplyEnvToLogging(&cfg)
	assert.Equal(t, "/tmp/run.log", cfg.LogFile)
	assert.True(t, cfg.Verbose)

	empty := Config{}
	ApplyEnvToConfig(&empty)
	assert.Equal(t, "Acme", empty.CompanyKeyword)
}

func TestLoadEnvFiles(t *testing.T) {
	t.Setenv("PDFVALIDATE_COMPANY_KEYWORD", "")
	os.Unsetenv("PDFVALIDATE_COMPANY_KEYWORD")
	p := writeFile(t, ".env", "PDFVALIDATE_COMPANY_KEYWORD=\"Acme\"\n# comment\n")

	require.NoError(t, LoadEnvFiles("", filepath.Join(t.TempDir(), "missing.env"), p))
	assert.Equal(t, "Acme", os.Getenv("PDFVALIDATE_COMPANY_KEYWORD"))
}

func TestValidateConfig(t *testing.T) {
	valid := Config{
		PDFPath:         "invoice.pdf",
		ExpectedCompany: "Acme Corporation",
		ExpectedDate:    "2024-03-03",
		CompanyKeyword:  "Acme",
	}
	require.NoError(t, ValidateConfig(valid))

	empty := valid
	empty.ExpectedCompany = ""
	empty.ExpectedDate = ""
	require.NoError(t, ValidateConfig(empty))

	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"no pdf", func(c *Config) { c.PDFPath = "" }, "pdf path"},
		{"no keyword", func(c *Config) { c.CompanyKeyword = "" }, "company_keyword is required"},
		{"bad keyword", func(c *Config) { c.CompanyKeyword = "Acme(" }, "compile company keyword"},
		{"bad threshold", func(c *Config) { c.SimilarityThreshold = 101 }, "similarity_threshold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorContains(t, ValidateConfig(cfg), tt.msg)
		})
	}
}
