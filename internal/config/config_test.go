package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FocuswithJustin/babcal/core/julian"
	"github.com/FocuswithJustin/babcal/core/table"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, table.DefaultState(), cfg.State())
	assert.Equal(t, "tsv", cfg.Output.Format)
	assert.Equal(t, "-", cfg.Output.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdubs.yaml")
	data := `
new_moons: /data/new_moons.txt.xz
initial:
  era: CE
  year: 14
  last_jdn: 1726000
output:
  format: sqlite
  database: months.db
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/new_moons.txt.xz", cfg.NewMoons)
	assert.Equal(t, table.State{Era: julian.CE, Year: 14, LastJDN: 1726000}, cfg.State())
	assert.Equal(t, "sqlite", cfg.Output.Format)
	assert.Equal(t, "months.db", cfg.Output.Database)
	assert.Equal(t, "-", cfg.Output.Path, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial:\n  era: Seleucid\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pdubs.yaml")
	cfg := DefaultConfig()
	cfg.Initial.Era = julian.CE
	cfg.Initial.Year = 1

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("PDUBS_NEW_MOONS", "moons.gz")
		t.Setenv("PDUBS_LOG_LEVEL", "warn")
		t.Setenv("PDUBS_LOG_FORMAT", "json")
		t.Setenv("PDUBS_FORMAT", "jsonl")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "moons.gz", cfg.NewMoons)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
		assert.Equal(t, "jsonl", cfg.Output.Format)
	})

	t.Run("empty variables leave values", func(t *testing.T) {
		t.Setenv("PDUBS_NEW_MOONS", "")
		t.Setenv("PDUBS_FORMAT", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "new_moons.txt", cfg.NewMoons)
		assert.Equal(t, "tsv", cfg.Output.Format)
	})

	t.Run("override file values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pdubs.yaml")
		require.NoError(t, os.WriteFile(path, []byte("new_moons: from-file.txt\n"), 0644))
		t.Setenv("PDUBS_NEW_MOONS", "from-env.txt")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env.txt", cfg.NewMoons)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no new moons", func(c *Config) { c.NewMoons = "" }},
		{"zero year", func(c *Config) { c.Initial.Year = 0 }},
		{"bad era", func(c *Config) { c.Initial.Era = julian.Era(7) }},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }},
		{"sqlite without database", func(c *Config) { c.Output.Format = "sqlite" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "chatty" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
