package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnez/dot-agents/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0o644))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_ParsesConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "strict: true\nskip_rules:\n  - body_length\npdf:\n  engine: pdflatex\n")

	cfg, err := New().Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{domain.RuleBodyLength}, cfg.SkipRules)
	assert.Equal(t, "pdflatex", cfg.PDF.Engine)
}

func TestLoad_UnknownSkipRuleRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "skip_rules:\n  - credentail_scan\n")

	_, err := New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentail_scan")
	assert.Contains(t, err.Error(), fileName)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "strict: [unclosed\n")

	_, err := New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fileName)
}
