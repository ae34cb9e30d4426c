package application

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnez/dot-agents/internal/adapters/outbound/skillfs"
	"github.com/tnez/dot-agents/internal/domain"
)

func fixtureDir(t *testing.T, name string) string {
	t.Helper()
	abs, err := filepath.Abs(filepath.Join("..", "..", "testdata", "skills", name))
	require.NoError(t, err)
	return abs
}

func newService() *ValidateService {
	return NewValidateService(skillfs.New())
}

func reportMessages(r *domain.ValidationReport) []string {
	out := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		out[i] = f.Message
	}
	return out
}

func TestValidateSkill_ValidSkillPasses(t *testing.T) {
	dir := fixtureDir(t, "my-skill")

	report := newService().ValidateSkill(dir, domain.DefaultConfig())

	assert.Equal(t, domain.SeverityPass, report.Verdict(), strings.Join(reportMessages(report), "\n"))
	msgs := reportMessages(report)
	assert.Contains(t, msgs, "YAML frontmatter is valid")
	assert.Contains(t, msgs, "directory name matches frontmatter name: 'my-skill'")
	assert.Contains(t, msgs, "referenced file exists: references/guide.md")
	assert.Contains(t, msgs, "referenced file exists: scripts/run.sh")
}

func TestValidateSkill_Deterministic(t *testing.T) {
	dir := fixtureDir(t, "my-skill")
	svc := newService()

	first := svc.ValidateSkill(dir, domain.DefaultConfig()).Render()
	second := svc.ValidateSkill(dir, domain.DefaultConfig()).Render()
	assert.Equal(t, first, second)
}

func TestValidateSkill_NameMismatch(t *testing.T) {
	dir := fixtureDir(t, "name-mismatch")

	report := newService().ValidateSkill(dir, domain.DefaultConfig())

	assert.Equal(t, domain.SeverityError, report.Verdict())
	assert.Contains(t, reportMessages(report),
		"directory 'name-mismatch' does not match frontmatter name 'other-skill'")
}

func TestValidateSkill_MissingFrontmatterIsFatal(t *testing.T) {
	dir := fixtureDir(t, "no-frontmatter")

	report := newService().ValidateSkill(dir, domain.DefaultConfig())

	assert.Equal(t, domain.SeverityError, report.Verdict())
	msgs := reportMessages(report)
	assert.Contains(t, msgs, "SKILL.md missing YAML frontmatter (must start with ---)")
	for _, m := range msgs {
		assert.NotContains(t, m, "required field", "rules must not run without frontmatter")
	}
}

func TestValidateSkill_InvalidYAMLStillRunsBodyRules(t *testing.T) {
	dir := fixtureDir(t, "bad-yaml")

	report := newService().ValidateSkill(dir, domain.DefaultConfig())

	assert.Equal(t, domain.SeverityError, report.Verdict())
	msgs := reportMessages(report)

	var sawDecodeError, sawMissingRef, sawBodyRule bool
	for _, m := range msgs {
		if strings.HasPrefix(m, "invalid YAML frontmatter:") {
			sawDecodeError = true
		}
		if m == "referenced file does not exist: scripts/missing.sh" {
			sawMissingRef = true
		}
		if strings.HasPrefix(m, "body has ") {
			sawBodyRule = true
		}
		assert.NotContains(t, m, "required field", "metadata rules must not run on a failed decode")
	}
	assert.True(t, sawDecodeError)
	assert.True(t, sawMissingRef)
	assert.True(t, sawBodyRule)
}

func TestValidateSkill_MissingDocument(t *testing.T) {
	dir := fixtureDir(t, "not-a-skill")

	report := newService().ValidateSkill(dir, domain.DefaultConfig())

	assert.Equal(t, domain.SeverityError, report.Verdict())
	assert.Contains(t, reportMessages(report), "SKILL.md file not found (case-sensitive)")
}

func TestValidateSkill_MissingDirectory(t *testing.T) {
	dir := fixtureDir(t, "does-not-exist")

	report := newService().ValidateSkill(dir, domain.DefaultConfig())

	assert.Equal(t, domain.SeverityError, report.Verdict())
	require.Len(t, report.Findings, 1)
	assert.Equal(t, "directory does not exist: "+dir, report.Findings[0].Message)
}

func TestValidateSkill_PathIsAFile(t *testing.T) {
	path := filepath.Join(fixtureDir(t, "not-a-skill"), "notes.txt")

	report := newService().ValidateSkill(path, domain.DefaultConfig())

	require.Len(t, report.Findings, 1)
	assert.Equal(t, "path is not a directory: "+path, report.Findings[0].Message)
}

func TestValidateSkill_SkipRulesHonored(t *testing.T) {
	dir := fixtureDir(t, "name-mismatch")
	cfg := domain.DefaultConfig()
	cfg.SkipRules = []string{domain.RuleNameDirectoryMatch}

	report := newService().ValidateSkill(dir, cfg)

	for _, m := range reportMessages(report) {
		assert.NotContains(t, m, "does not match frontmatter name")
	}
}
