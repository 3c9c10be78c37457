package config

// Application constants for the report integration toolkit.
const (
	AppName    = "OncoReports"
	AppVersion = "1.2.0"

	// Directory layout relative to the executable:
	// data/
	//   inbox/     bulk pathology PDFs as exported by the lab system
	//   reports/   per-specimen PDFs produced by reportsplit
	//   tables/    per-table CSVs produced by tableextract
	//   combined/  merged assay CSVs produced by integrator
	// logs/        application logs
	DefaultDataDir     = "data"
	DefaultInboxDir    = "data/inbox"
	DefaultReportsDir  = "data/reports"
	DefaultTablesDir   = "data/tables"
	DefaultCombinedDir = "data/combined"
	DefaultLogsDir     = "logs"

	// Well-known output files.
	DNACombinedFile      = "dna_combined.csv"
	RNACombinedFile      = "rna_combined.csv"
	CMACombinedFile      = "cma_combined.csv"
	CMAFixedCombinedFile = "cma_fixed_combined.csv"
	NoTablesFile         = "pdfs_with_no_tables.csv"

	// ConfigFileName is the optional YAML config next to the executable.
	ConfigFileName = "config.yaml"

	// EnvPrefix namespaces envconfig variables (ONCO_LOGGING_LEVEL, ...).
	EnvPrefix = "ONCO"
)
