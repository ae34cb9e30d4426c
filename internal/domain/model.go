package domain

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Severity classifies a single validation finding.
type Severity string

const (
	SeverityPass    Severity = "pass"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one categorized validation outcome. Findings are append-only;
// they are produced during a single validation pass and never mutated.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func Pass(format string, args ...any) Finding {
	return Finding{Severity: SeverityPass, Message: fmt.Sprintf(format, args...)}
}

func Warn(format string, args ...any) Finding {
	return Finding{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

func Fail(format string, args ...any) Finding {
	return Finding{Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// ValidationReport aggregates all findings for one skill directory. The
// verdict is derived from the findings alone; the report carries no
// independent pass/fail state.
type ValidationReport struct {
	SkillPath string
	Findings  []Finding
}

// NewValidationReport creates an empty report for the given skill directory.
func NewValidationReport(skillPath string) *ValidationReport {
	return &ValidationReport{SkillPath: skillPath}
}

// SkillName returns the base name of the skill directory.
func (r *ValidationReport) SkillName() string {
	return filepath.Base(r.SkillPath)
}

// Add appends findings in emission order.
func (r *ValidationReport) Add(findings ...Finding) {
	r.Findings = append(r.Findings, findings...)
}

// Counts returns the number of findings per severity.
func (r *ValidationReport) Counts() (passes, warnings, errors int) {
	for _, f := range r.Findings {
		switch f.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		default:
			passes++
		}
	}
	return
}

// Verdict derives the overall outcome: error if any error finding exists,
// warning if any warning finding exists and no error, pass otherwise.
func (r *ValidationReport) Verdict() Severity {
	verdict := SeverityPass
	for _, f := range r.Findings {
		switch f.Severity {
		case SeverityError:
			return SeverityError
		case SeverityWarning:
			verdict = SeverityWarning
		}
	}
	return verdict
}

// BySeverity returns the findings of the given severity in emission order.
func (r *ValidationReport) BySeverity(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// MarshalJSON includes the derived verdict and counts alongside the findings.
func (r *ValidationReport) MarshalJSON() ([]byte, error) {
	passes, warnings, errors := r.Counts()
	return json.Marshal(struct {
		SkillPath string    `json:"skill_path"`
		SkillName string    `json:"skill_name"`
		Verdict   Severity  `json:"verdict"`
		Passes    int       `json:"passes"`
		Warnings  int       `json:"warnings"`
		Errors    int       `json:"errors"`
		Findings  []Finding `json:"findings"`
	}{
		SkillPath: r.SkillPath,
		SkillName: r.SkillName(),
		Verdict:   r.Verdict(),
		Passes:    passes,
		Warnings:  warnings,
		Errors:    errors,
		Findings:  r.Findings,
	})
}

// Render produces the plain-text report: counts per severity, every message
// grouped by severity in emission order, then a single verdict line. Pure
// string formatting; running it twice on the same report is byte-identical.
func (r *ValidationReport) Render() string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Skill Validation Report: %s\n", r.SkillName())
	fmt.Fprintf(&b, "%s\n\n", rule)

	if passes := r.BySeverity(SeverityPass); len(passes) > 0 {
		fmt.Fprintf(&b, "PASSED (%d)\n", len(passes))
		for _, f := range passes {
			fmt.Fprintf(&b, "  + %s\n", f.Message)
		}
		b.WriteString("\n")
	}

	if warnings := r.BySeverity(SeverityWarning); len(warnings) > 0 {
		fmt.Fprintf(&b, "WARNINGS (%d)\n", len(warnings))
		for _, f := range warnings {
			fmt.Fprintf(&b, "  ! %s\n", f.Message)
		}
		b.WriteString("\n")
	}

	if errors := r.BySeverity(SeverityError); len(errors) > 0 {
		fmt.Fprintf(&b, "FAILED (%d)\n", len(errors))
		for _, f := range errors {
			fmt.Fprintf(&b, "  x %s\n", f.Message)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\n", rule)
	switch r.Verdict() {
	case SeverityError:
		b.WriteString("RESULT: FAILED - Fix errors before using this skill\n")
	case SeverityWarning:
		b.WriteString("RESULT: PASSED with warnings - Consider addressing warnings\n")
	default:
		b.WriteString("RESULT: PASSED - Skill is valid\n")
	}
	fmt.Fprintf(&b, "%s\n", rule)

	return b.String()
}

// BundledResources inventories the files shipped alongside SKILL.md in the
// conventional resource directories.
type BundledResources struct {
	Scripts    []string `json:"scripts"`
	Templates  []string `json:"templates"`
	Assets     []string `json:"assets"`
	References []string `json:"references"`
}

// Evaluation holds objective metrics extracted from a skill for the
// evaluation report. Scoring the subjective dimensions is left to a human or
// agent reviewer.
type Evaluation struct {
	SkillName   string           `json:"skill_name"`
	Description string           `json:"description"`
	License     string           `json:"license,omitempty"`
	CommitHash  string           `json:"commit_hash,omitempty"`
	Metrics     BodyMetrics      `json:"metrics"`
	Resources   BundledResources `json:"resources"`
}

// BodyMetrics are the measurable properties of a skill document body.
type BodyMetrics struct {
	WordCount      int      `json:"word_count"`
	LineCount      int      `json:"line_count"`
	ExampleCount   int      `json:"example_count"`
	HasWhenSection bool     `json:"has_when_section"`
	Sections       []string `json:"sections,omitempty"`
}
