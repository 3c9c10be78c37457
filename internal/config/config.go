package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete toolkit configuration. Values load from
// environment variables first (ONCO_ prefix), then an optional
// config.yaml next to the executable fills whatever the environment left
// at its zero value.
type Config struct {
	Logging     LoggingConfig     `yaml:"logging" envconfig:"LOGGING"`
	Integration IntegrationConfig `yaml:"integration" envconfig:"INTEGRATION"`
	Split       SplitConfig       `yaml:"split" envconfig:"SPLIT"`
	Tables      TablesConfig      `yaml:"tables" envconfig:"TABLES"`
}

// LoggingConfig controls slog initialization.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// IntegrationConfig controls the merge runs.
type IntegrationConfig struct {
	// IncludeWorkbooks also accepts .xlsx exports during directory scans.
	IncludeWorkbooks bool `yaml:"include_workbooks" envconfig:"INCLUDE_WORKBOOKS" default:"true"`
}

// SplitConfig controls how bulk PDFs are cut into per-specimen reports.
type SplitConfig struct {
	SpecimenPattern string `yaml:"specimen_pattern" envconfig:"SPECIMEN_PATTERN" default:"S\\d{2}-\\d+" validate:"required"`
	StartPattern    string `yaml:"start_pattern" envconfig:"START_PATTERN" default:"OncoKids" validate:"required"`
	EndPattern      string `yaml:"end_pattern" envconfig:"END_PATTERN" default:"End of Report" validate:"required"`
	MaxPageDistance int    `yaml:"max_page_distance" envconfig:"MAX_PAGE_DISTANCE" default:"10" validate:"min=1,max=500"`
}

// TablesConfig controls the table-extraction engine.
type TablesConfig struct {
	Mode        string `yaml:"mode" envconfig:"MODE" default:"stream" validate:"oneof=stream"`
	Sensitivity int    `yaml:"sensitivity" envconfig:"SENSITIVITY" default:"2" validate:"min=1,max=20"`
}

// Load builds the configuration from environment variables and the
// optional YAML file.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	paths, err := GetPaths()
	if err == nil {
		configFile := paths.GetConfigPath()
		if _, statErr := os.Stat(configFile); statErr == nil {
			fileCfg, loadErr := loadFromFile(configFile)
			if loadErr != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", loadErr)
			}
			cfg = mergeConfigs(*fileCfg, cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks every field against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// loadFromFile reads a YAML config file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence;
// only zero-valued env fields fall back to the file).
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Split.SpecimenPattern == "" {
		envConfig.Split.SpecimenPattern = fileConfig.Split.SpecimenPattern
	}
	if envConfig.Split.StartPattern == "" {
		envConfig.Split.StartPattern = fileConfig.Split.StartPattern
	}
	if envConfig.Split.EndPattern == "" {
		envConfig.Split.EndPattern = fileConfig.Split.EndPattern
	}
	if envConfig.Split.MaxPageDistance == 0 {
		envConfig.Split.MaxPageDistance = fileConfig.Split.MaxPageDistance
	}
	if envConfig.Tables.Mode == "" {
		envConfig.Tables.Mode = fileConfig.Tables.Mode
	}
	if envConfig.Tables.Sensitivity == 0 {
		envConfig.Tables.Sensitivity = fileConfig.Tables.Sensitivity
	}
	return envConfig
}

// Default returns a configuration with every default applied, for use
// when Load fails and a CLI still needs to come up.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/app.log",
		},
		Integration: IntegrationConfig{IncludeWorkbooks: true},
		Split: SplitConfig{
			SpecimenPattern: `S\d{2}-\d+`,
			StartPattern:    "OncoKids",
			EndPattern:      "End of Report",
			MaxPageDistance: 10,
		},
		Tables: TablesConfig{Mode: "stream", Sensitivity: 2},
	}
}
