package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".docstr.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ".docstr.yml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.True(t, cfg.CheckReferences)
	assert.Equal(t, []string{"."}, cfg.Paths)
}

func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `
paths:
  - ./pkg
  - ./internal
require_param_types: true
check_references: false
exclude_files:
  - "*_generated.go"
verbose: true
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"./pkg", "./internal"}, cfg.Paths)
	assert.True(t, cfg.RequireParamTypes)
	assert.False(t, cfg.CheckReferences)
	assert.Equal(t, []string{"*_generated.go"}, cfg.ExcludeFiles)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "require_param_types: true\n")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.True(t, cfg.RequireParamTypes)
	assert.True(t, cfg.CheckReferences)
	assert.Equal(t, []string{"."}, cfg.Paths)
}

func TestLoadConfig_EmptyPathsRejected(t *testing.T) {
	path := writeConfig(t, "paths: []\n")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := writeConfig(t, "paths: [unclosed\n")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
