package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"dpwhcli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Export   ExportConfig   `yaml:"export" envconfig:"EXPORT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// PipelineConfig controls input location, filters and scoring parameters
type PipelineConfig struct {
	InputFile               string  `yaml:"input_file" envconfig:"INPUT_FILE" validate:"required"`
	OutputDir               string  `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	MinYear                 int     `yaml:"min_year" envconfig:"MIN_YEAR" validate:"gte=1900"`
	MaxYear                 int     `yaml:"max_year" envconfig:"MAX_YEAR" validate:"gtefield=MinYear"`
	MinContractorProjects   int     `yaml:"min_contractor_projects" envconfig:"MIN_CONTRACTOR_PROJECTS" validate:"gte=1"`
	TopContractors          int     `yaml:"top_contractors" envconfig:"TOP_CONTRACTORS" validate:"gte=1"`
	HighDelayDays           int     `yaml:"high_delay_days" envconfig:"HIGH_DELAY_DAYS" validate:"gte=0"`
	ReliabilityDelayHorizon float64 `yaml:"reliability_delay_horizon" envconfig:"RELIABILITY_DELAY_HORIZON" validate:"gt=0"`
	PreviewRows             int     `yaml:"preview_rows" envconfig:"PREVIEW_ROWS" validate:"gte=1,lte=20"`
	WriteCleaned            bool    `yaml:"write_cleaned" envconfig:"WRITE_CLEANED"`
}

// ExportConfig toggles the supplemental artifacts written next to the CSV reports
type ExportConfig struct {
	Workbook bool `yaml:"workbook" envconfig:"WORKBOOK"`
	Chart    bool `yaml:"chart" envconfig:"CHART"`
	Metrics  bool `yaml:"metrics" envconfig:"METRICS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"omitempty,oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load builds the configuration from defaults, an optional YAML file, an optional
// .env file and DPWH_* environment variables, in increasing order of precedence.
// An empty configFile searches the usual locations.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, errors.NewConfigError("failed to load config from file", err).WithContext("path", configFile)
		}
	}

	// .env never overrides variables already present in the environment
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.NewConfigError("failed to load .env file", err).WithContext("path", ".env")
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.NewConfigError("config validation failed", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML values onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration and normalizes logging settings
func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "file"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFile
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			InputFile:               DefaultInputFile,
			OutputDir:               DefaultOutputDir,
			MinYear:                 DefaultMinYear,
			MaxYear:                 DefaultMaxYear,
			MinContractorProjects:   DefaultMinContractorProjects,
			TopContractors:          DefaultTopContractors,
			HighDelayDays:           DefaultHighDelayDays,
			ReliabilityDelayHorizon: DefaultReliabilityDelayHorizon,
			PreviewRows:             DefaultPreviewRows,
			WriteCleaned:            true,
		},
		Export: ExportConfig{
			Workbook: true,
			Chart:    true,
			Metrics:  true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: DefaultLogFile,
		},
	}
}
