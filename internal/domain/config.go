package domain

import "fmt"

// Rule names, in catalog order. These identify the independent checks the
// rule engine runs and are the only values accepted by skip_rules.
const (
	RuleRequiredFields     = "required_fields"
	RuleFieldTypes         = "field_types"
	RuleNameFormat         = "name_format"
	RuleNameDirectoryMatch = "name_directory_match"
	RuleDescriptionLength  = "description_length"
	RuleDescriptionIntent  = "description_intent"
	RuleBodyLength         = "body_length"
	RuleCredentialScan     = "credential_scan"
)

// ValidRules enumerates all rule names in catalog order.
var ValidRules = []string{
	RuleRequiredFields,
	RuleFieldTypes,
	RuleNameFormat,
	RuleNameDirectoryMatch,
	RuleDescriptionLength,
	RuleDescriptionIntent,
	RuleBodyLength,
	RuleCredentialScan,
}

// ToolConfig holds per-skill configuration loaded from .skillcheck.yaml.
type ToolConfig struct {
	Strict    bool      `yaml:"strict"     json:"strict,omitempty"`
	SkipRules []string  `yaml:"skip_rules" json:"skip_rules,omitempty"`
	PDF       PDFConfig `yaml:"pdf"        json:"pdf,omitempty"`
}

// PDFConfig holds defaults for the markdown-to-PDF pipeline.
type PDFConfig struct {
	Template       string            `yaml:"template"        json:"template,omitempty"`
	Variables      map[string]string `yaml:"variables"       json:"variables,omitempty"`
	HighlightStyle string            `yaml:"highlight_style" json:"highlight_style,omitempty"`
	Engine         string            `yaml:"engine"          json:"engine,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ToolConfig {
	return ToolConfig{}
}

// Validate catches typos in skip_rules before they silently disable nothing.
func (c ToolConfig) Validate() error {
	known := make(map[string]bool, len(ValidRules))
	for _, r := range ValidRules {
		known[r] = true
	}
	for _, r := range c.SkipRules {
		if !known[r] {
			return fmt.Errorf("unknown rule %q in skip_rules (valid: %v)", r, ValidRules)
		}
	}
	return nil
}

// Skips reports whether the named rule is disabled by this config.
func (c ToolConfig) Skips(rule string) bool {
	for _, r := range c.SkipRules {
		if r == rule {
			return true
		}
	}
	return false
}
