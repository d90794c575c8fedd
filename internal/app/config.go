package app

// DefaultLogFile is where run logs are appended when no path is configured.
const DefaultLogFile = "validation_pipeline.log"

// Config holds runtime configuration for one validation run.
type Config struct {
	// Document and expectations
	PDFPath         string
	ExpectedCompany string
	ExpectedDate    string // YYYY-MM-DD

	// Extraction / validation
	CompanyKeyword string
	// SimilarityThreshold is the minimum partial ratio; 0 selects the default.
	SimilarityThreshold int

	// Behavior
	ConfigPath string
	LogFile    string
	Verbose    bool
}
