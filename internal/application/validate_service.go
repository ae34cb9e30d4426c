package application

import (
	"errors"
	"path/filepath"

	"github.com/tnez/dot-agents/internal/domain"
	"github.com/tnez/dot-agents/internal/domain/skill"
)

// ValidateService runs the full validation pipeline for one skill directory:
// input checks, frontmatter parsing, the rule catalog, and body reference
// resolution, aggregated into a single report.
type ValidateService struct {
	source domain.SkillSource
}

// NewValidateService creates a ValidateService reading skills through source.
func NewValidateService(source domain.SkillSource) *ValidateService {
	return &ValidateService{source: source}
}

// ValidateSkill validates the skill at dir and returns the aggregated report.
// Fatal input conditions (missing directory, missing or unreadable SKILL.md,
// absent frontmatter) are reported as findings and abort rule evaluation; a
// metadata decode error degrades gracefully, keeping body-level rules alive.
// The report itself is always returned; the error is reserved for conditions
// outside the validation contract.
func (s *ValidateService) ValidateSkill(dir string, cfg domain.ToolConfig) *domain.ValidationReport {
	report := domain.NewValidationReport(dir)

	if err := s.source.CheckDir(dir); err != nil {
		switch {
		case errors.Is(err, domain.ErrDirectoryMissing):
			report.Add(domain.Fail("directory does not exist: %s", dir))
		case errors.Is(err, domain.ErrNotADirectory):
			report.Add(domain.Fail("path is not a directory: %s", dir))
		default:
			report.Add(domain.Fail("cannot access directory %s: %v", dir, err))
		}
		return report
	}
	report.Add(domain.Pass("directory exists: %s", dir))

	raw, err := s.source.ReadDocument(dir)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDocumentMissing):
			report.Add(domain.Fail("SKILL.md file not found (case-sensitive)"))
		case errors.Is(err, domain.ErrDocumentNotFile):
			report.Add(domain.Fail("SKILL.md exists but is not a file"))
		case errors.Is(err, domain.ErrDocumentEncoding):
			report.Add(domain.Fail("SKILL.md is not valid UTF-8 text"))
		default:
			report.Add(domain.Fail("failed to read SKILL.md: %v", err))
		}
		return report
	}
	report.Add(domain.Pass("SKILL.md file exists"))

	doc, parseErr := skill.ParseDocument(raw)

	var meta *skill.Frontmatter
	var missingFM *skill.MissingFrontmatterError
	var invalidMeta *skill.InvalidMetadataError
	switch {
	case parseErr == nil:
		report.Add(domain.Pass("YAML frontmatter is valid"))
		meta = &doc.Meta
	case errors.As(parseErr, &missingFM):
		report.Add(domain.Fail("SKILL.md missing YAML frontmatter (must start with ---)"))
		return report
	case errors.As(parseErr, &invalidMeta):
		// Metadata is lost but the body was extracted; body rules still run.
		report.Add(domain.Fail("%v", invalidMeta))
	default:
		report.Add(domain.Fail("parsing SKILL.md: %v", parseErr))
		return report
	}

	report.Add(skill.EvaluateRules(meta, doc.Body, filepath.Base(dir), cfg)...)
	report.Add(s.resolveReferences(dir, doc.Body)...)

	return report
}

// resolveReferences checks every distinct body reference against the
// filesystem, in sorted order for deterministic reports.
func (s *ValidateService) resolveReferences(dir, body string) []domain.Finding {
	var findings []domain.Finding
	for _, ref := range skill.ExtractReferences(body) {
		if s.source.FileExists(dir, ref) {
			findings = append(findings, domain.Pass("referenced file exists: %s", ref))
		} else {
			findings = append(findings, domain.Fail("referenced file does not exist: %s", ref))
		}
	}
	return findings
}
