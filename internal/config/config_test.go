package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for config:
// - Defaults apply when no config file exists
// - Values load from .depscope/config.yml
// - Environment variables override file values
// - Validate rejects bad worker counts and unknown formats

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"**/*.java"}, cfg.Paths.Source)
	assert.Contains(t, cfg.Paths.Ignore, "target/**")
	assert.Equal(t, 0, cfg.Analysis.Workers)
	assert.Equal(t, "tree", cfg.Output.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".depscope")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `paths:
  source:
    - "src/**/*.java"
  ignore:
    - "gen/**"
analysis:
  workers: 2
output:
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0o644))

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/**/*.java"}, cfg.Paths.Source)
	assert.Equal(t, []string{"gen/**"}, cfg.Paths.Ignore)
	assert.Equal(t, 2, cfg.Analysis.Workers)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DEPSCOPE_ANALYSIS_WORKERS", "8")
	t.Setenv("DEPSCOPE_OUTPUT_FORMAT", "json")

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Analysis.Workers)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Default()
	assert.NoError(t, Validate(valid))

	noSource := Default()
	noSource.Paths.Source = nil
	assert.Error(t, Validate(noSource))

	negWorkers := Default()
	negWorkers.Analysis.Workers = -1
	assert.Error(t, Validate(negWorkers))

	badFormat := Default()
	badFormat.Output.Format = "xml"
	assert.Error(t, Validate(badFormat))
}
