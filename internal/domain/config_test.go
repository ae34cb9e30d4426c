package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate_AcceptsKnownRules(t *testing.T) {
	cfg := ToolConfig{SkipRules: []string{RuleCredentialScan, RuleBodyLength}}
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_RejectsUnknownRule(t *testing.T) {
	cfg := ToolConfig{SkipRules: []string{"credentail_scan"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentail_scan")
}

func TestConfigSkips(t *testing.T) {
	cfg := ToolConfig{SkipRules: []string{RuleDescriptionIntent}}
	assert.True(t, cfg.Skips(RuleDescriptionIntent))
	assert.False(t, cfg.Skips(RuleNameFormat))
}

func TestDefaultConfig_SkipsNothing(t *testing.T) {
	cfg := DefaultConfig()
	for _, r := range ValidRules {
		assert.False(t, cfg.Skips(r))
	}
	assert.False(t, cfg.Strict)
}
