package application

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tnez/dot-agents/internal/domain"
	"github.com/tnez/dot-agents/internal/domain/evaluate"
	"github.com/tnez/dot-agents/internal/domain/skill"
)

// EvaluateService extracts objective metrics from a skill and renders the
// evaluation report template. Dimension scoring is left to the reviewer.
type EvaluateService struct {
	source domain.SkillSource
	git    domain.GitInfo
}

// NewEvaluateService creates an EvaluateService.
func NewEvaluateService(source domain.SkillSource, git domain.GitInfo) *EvaluateService {
	return &EvaluateService{source: source, git: git}
}

// EvaluateSkill reads the skill at dir and computes its evaluation metrics.
// Unlike validation, evaluation needs a parseable document: read and parse
// failures are returned as errors.
func (s *EvaluateService) EvaluateSkill(dir string) (*domain.Evaluation, error) {
	if err := s.source.CheckDir(dir); err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", dir, err)
	}

	raw, err := s.source.ReadDocument(dir)
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", dir, err)
	}

	doc, err := skill.ParseDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", dir, err)
	}

	eval := &domain.Evaluation{
		SkillName:   doc.Meta.StringOr("name", filepath.Base(dir)),
		Description: doc.Meta.StringOr("description", ""),
		License:     doc.Meta.StringOr("license", ""),
		Metrics:     evaluate.AnalyzeBody(doc.Body),
		Resources:   s.source.ListResources(dir),
	}

	// Commit hash is best-effort context, not a requirement.
	if s.git != nil && s.git.IsGitRepo(dir) {
		if hash, err := s.git.CommitHash(dir); err == nil {
			eval.CommitHash = hash
		}
	}

	return eval, nil
}

// RenderTemplate produces the markdown evaluation report: objective metrics
// filled in, dimension scores left as placeholders for the reviewer.
func (s *EvaluateService) RenderTemplate(eval *domain.Evaluation, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Skill Evaluation Report\n\n")
	fmt.Fprintf(&b, "**Skill Name**: %s\n", eval.SkillName)
	fmt.Fprintf(&b, "**Evaluated By**: [Your name/agent ID]\n")
	fmt.Fprintf(&b, "**Date**: %s\n\n", now.Format("2006-01-02"))
	if eval.CommitHash != "" {
		fmt.Fprintf(&b, "**Commit**: %s\n\n", eval.CommitHash)
	}
	b.WriteString("---\n\n")

	b.WriteString("## Objective Metrics\n\n")
	fmt.Fprintf(&b, "- **Word Count**: %d words\n", eval.Metrics.WordCount)
	fmt.Fprintf(&b, "- **Line Count**: %d lines\n", eval.Metrics.LineCount)
	fmt.Fprintf(&b, "- **Example Count**: %d examples\n", eval.Metrics.ExampleCount)
	fmt.Fprintf(&b, "- **Has \"When to Use\" Section**: %t\n", eval.Metrics.HasWhenSection)
	fmt.Fprintf(&b, "- **Description Length**: %d characters\n\n", len([]rune(eval.Description)))

	b.WriteString("### Bundled Resources\n\n")
	writeResourceLine(&b, "Scripts", eval.Resources.Scripts)
	writeResourceLine(&b, "Templates", eval.Resources.Templates)
	writeResourceLine(&b, "Assets", eval.Resources.Assets)
	writeResourceLine(&b, "References", eval.Resources.References)
	b.WriteString("\n")

	if len(eval.Metrics.Sections) > 0 {
		b.WriteString("### Sections Detected\n\n")
		for _, section := range eval.Metrics.Sections {
			fmt.Fprintf(&b, "- %s\n", section)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("## Dimension Scores\n\n")
	for _, dim := range []string{"Clarity", "Completeness", "Examples", "Focus"} {
		fmt.Fprintf(&b, "### %s: __/5\n\n", dim)
		b.WriteString("**Observations**:\n\n**Score Rationale**:\n\n")
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("**Total Score**: __/20\n")

	return b.String()
}

func writeResourceLine(b *strings.Builder, label string, files []string) {
	joined := "None"
	if len(files) > 0 {
		joined = strings.Join(files, ", ")
	}
	fmt.Fprintf(b, "- **%s**: %d file(s) - %s\n", label, len(files), joined)
}
