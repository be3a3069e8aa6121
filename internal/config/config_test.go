package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, []string{"./..."}, cfg.Patterns)
	assert.Equal(t, []string{"json"}, cfg.Output.Formats)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Name:     "docs",
		Patterns: []string{"./cmd/..."},
		Output:   OutputConfig{Formats: []string{"yaml"}},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "docs", cfg.Name)
	assert.Equal(t, []string{"./cmd/..."}, cfg.Patterns)
	assert.Equal(t, []string{"yaml"}, cfg.Output.Formats)
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := &Config{Output: OutputConfig{Formats: []string{"json", "xml"}}}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestLoaderReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typedoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: demo-docs
patterns:
  - ./...
exclude:
  - "*_gen.go"
includeUnexported: true
output:
  dir: out
  formats: [json, yaml]
`), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo-docs", cfg.Name)
	assert.Equal(t, []string{"*_gen.go"}, cfg.Exclude)
	assert.True(t, cfg.IncludeUnexported)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, []string{"json", "yaml"}, cfg.Output.Formats)
}

func TestLoaderExplicitMissingFileFails(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoaderSetOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typedoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\n"), 0o644))

	loader := NewLoader()
	loader.Set("name", "from-flag")

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.Name)
}

func TestLoaderEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typedoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\n"), 0o644))

	t.Setenv("TYPEDOC_NAME", "from-env")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Name)
}

func TestLoaderRejectsDeniedEngineFlagsSilently(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typedoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
engine:
  buildFlags: ["-tags=integration", "-race"]
`), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"-tags=integration"}, cfg.Engine.BuildFlags)
}

func TestLoaderRejectsUnknownEngineFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typedoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
engine:
  buildFlags: ["-made-up"]
`), 0o644))

	_, err := NewLoader().Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "-made-up")
}
