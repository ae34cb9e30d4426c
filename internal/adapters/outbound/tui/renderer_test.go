package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tnez/dot-agents/internal/domain"
)

func sampleReport() *domain.ValidationReport {
	r := domain.NewValidationReport("/skills/my-skill")
	r.Add(domain.Pass("directory exists: /skills/my-skill"))
	r.Add(domain.Warn("description does not explain when to use the skill"))
	r.Add(domain.Fail("missing required field: 'name'"))
	return r
}

func TestRenderReport_ContainsVerdictAndFindings(t *testing.T) {
	out := RenderReport(sampleReport())

	assert.Contains(t, out, "skill validation")
	assert.Contains(t, out, "my-skill")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 warnings")
	assert.Contains(t, out, "1 errors")
	assert.Contains(t, out, "missing required field: 'name'")
	assert.Contains(t, out, "Fix errors before using this skill.")
}

func TestRenderReport_PassVerdict(t *testing.T) {
	r := domain.NewValidationReport("/skills/clean")
	r.Add(domain.Pass("all good"))

	out := RenderReport(r)

	assert.Contains(t, out, "PASSED")
	assert.NotContains(t, out, "PASSED WITH WARNINGS")
	assert.Contains(t, out, "Skill is valid.")
	assert.NotContains(t, out, "warnings")
}

func TestRenderReport_WarningVerdict(t *testing.T) {
	r := domain.NewValidationReport("/skills/warned")
	r.Add(domain.Warn("something to look at"))

	out := RenderReport(r)

	assert.Contains(t, out, "PASSED WITH WARNINGS")
	assert.Contains(t, out, "Passed with warnings. Consider addressing them.")
}

func TestRenderEvaluation(t *testing.T) {
	eval := &domain.Evaluation{
		SkillName: "my-skill",
		Metrics: domain.BodyMetrics{
			WordCount:      42,
			LineCount:      10,
			ExampleCount:   1,
			HasWhenSection: true,
			Sections:       []string{"When to Use", "Usage"},
		},
		Resources: domain.BundledResources{Scripts: []string{"run.sh"}},
	}

	out := RenderEvaluation(eval)

	assert.Contains(t, out, "skill evaluation")
	assert.Contains(t, out, "my-skill")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "1 file(s)")
	assert.Contains(t, out, "When to Use")
	assert.Contains(t, out, "Usage")
	assert.Contains(t, out, "yes")
}
