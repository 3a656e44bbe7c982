// Package config loads pdubs settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/babcal/core/julian"
	"github.com/FocuswithJustin/babcal/core/table"
	"github.com/FocuswithJustin/babcal/internal/logging"
	"github.com/FocuswithJustin/babcal/internal/output"
)

// Config holds all pdubs settings.
type Config struct {
	// NewMoons is the path of the new-moon reference table.
	NewMoons string `yaml:"new_moons"`

	Initial InitialConfig `yaml:"initial"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// InitialConfig is the state before the first table line.
type InitialConfig struct {
	Era     julian.Era `yaml:"era"`
	Year    int        `yaml:"year"`
	LastJDN int        `yaml:"last_jdn"`
}

// OutputConfig selects where records go.
type OutputConfig struct {
	Format   string `yaml:"format"`   // tsv, jsonl, sqlite
	Path     string `yaml:"path"`     // "-" or empty for stdout
	Database string `yaml:"database"` // sqlite format only
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the settings for the published table.
func DefaultConfig() *Config {
	st := table.DefaultState()
	return &Config{
		NewMoons: "new_moons.txt",
		Initial: InitialConfig{
			Era:     st.Era,
			Year:    st.Year,
			LastJDN: st.LastJDN,
		},
		Output: OutputConfig{
			Format: string(output.FormatTSV),
			Path:   "-",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file. A missing file, or an empty
// path, yields the defaults. Environment overrides apply in every case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("PDUBS_NEW_MOONS"); path != "" {
		c.NewMoons = path
	}
	if level := os.Getenv("PDUBS_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("PDUBS_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
	if format := os.Getenv("PDUBS_FORMAT"); format != "" {
		c.Output.Format = format
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.NewMoons == "" {
		return fmt.Errorf("new-moon table not configured (set new_moons or PDUBS_NEW_MOONS)")
	}
	if c.Initial.Year < 1 {
		return fmt.Errorf("invalid initial year: %d (years are counted from 1 in each era)", c.Initial.Year)
	}
	if c.Initial.Era != julian.BCE && c.Initial.Era != julian.CE {
		return fmt.Errorf("invalid initial era: %d", c.Initial.Era)
	}

	format, err := output.ParseFormat(c.Output.Format)
	if err != nil {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, output.Formats)
	}
	if format == output.FormatSQLite && c.Output.Database == "" {
		return fmt.Errorf("output format sqlite requires output.database")
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return err
	}

	return nil
}

// State returns the configured initial parser state.
func (c *Config) State() table.State {
	return table.State{Era: c.Initial.Era, Year: c.Initial.Year, LastJDN: c.Initial.LastJDN}
}
