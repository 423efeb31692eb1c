package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "_collection.go", cfg.Generate.Suffix)
	assert.Equal(t, "", cfg.Defaults.Metadata)
	assert.False(t, cfg.Verbose)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `verbose: true
generate:
  suffix: _wrappers.go
  header: managed by wrapgen
defaults:
  metadata: APIMetadata
plurals:
  - singular: Schema
    plural: Schemata
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrapgen.yaml"), []byte(content), 0644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, "_wrappers.go", cfg.Generate.Suffix)
	assert.Equal(t, "managed by wrapgen", cfg.Generate.Header)
	assert.Equal(t, "APIMetadata", cfg.Defaults.Metadata)
	require.Len(t, cfg.Plurals, 1)
	assert.Equal(t, PluralOverride{Singular: "Schema", Plural: "Schemata"}, cfg.Plurals[0])
}

func TestLoadRejectsBadSuffix(t *testing.T) {
	dir := t.TempDir()
	content := "generate:\n  suffix: _wrappers.txt\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrapgen.yaml"), []byte(content), 0644))

	_, err := LoadFrom(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must end in .go")
}
