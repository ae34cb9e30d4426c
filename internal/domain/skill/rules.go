package skill

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/camelcase"

	"github.com/tnez/dot-agents/internal/domain"
)

const (
	maxNameLength        = 64
	maxDescriptionLength = 1024
	recommendedDescLimit = 200
	recommendedBodyWords = 5000
)

// nameRe is the hyphen-case contract: lowercase alphanumeric segments joined
// by single hyphens, no leading or trailing hyphen.
var nameRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// whenIndicators are cue phrases suggesting the description explains when to
// use the skill. Heuristic, not a hard requirement.
var whenIndicators = []string{"when", "use when", "for", "to help", "if you need"}

// credentialPatterns match credential-like assignments with a quoted literal.
// Labels name the suspect pattern in the warning message.
var credentialPatterns = []struct {
	label string
	re    *regexp.Regexp
}{
	{"password", regexp.MustCompile(`(?i)password\s*[:=]\s*['"][^'"\n]*['"]`)},
	{"api-key", regexp.MustCompile(`(?i)api[_-]?key\s*[:=]\s*['"][^'"\n]*['"]`)},
	{"secret", regexp.MustCompile(`(?i)secret\s*[:=]\s*['"][^'"\n]*['"]`)},
	{"token", regexp.MustCompile(`(?i)token\s*[:=]\s*['"][^'"\n]*['"]`)},
}

// ruleInput is the immutable parsed document every rule sees. Meta is nil
// when frontmatter decoding failed; metadata rules are skipped in that case
// while body rules still run.
type ruleInput struct {
	meta    *Frontmatter
	body    string
	dirName string
}

// rule is one independent check descriptor: a stable name for skip_rules,
// whether the check needs decoded metadata, and the check itself. A rule
// returns findings and never errors past its own boundary.
type rule struct {
	name      string
	needsMeta bool
	check     func(in ruleInput) []domain.Finding
}

// catalog is the ordered rule set. Findings are emitted in this order; rules
// are independent and never short-circuit each other.
var catalog = []rule{
	{domain.RuleRequiredFields, true, checkRequiredFields},
	{domain.RuleFieldTypes, true, checkFieldTypes},
	{domain.RuleNameFormat, true, checkNameFormat},
	{domain.RuleNameDirectoryMatch, true, checkNameDirectoryMatch},
	{domain.RuleDescriptionLength, true, checkDescriptionLength},
	{domain.RuleDescriptionIntent, true, checkDescriptionIntent},
	{domain.RuleBodyLength, false, checkBodyLength},
	{domain.RuleCredentialScan, false, checkCredentials},
}

// EvaluateRules runs the full catalog against the parsed document. meta is
// nil when the metadata block failed to decode. cfg may disable individual
// rules via skip_rules.
func EvaluateRules(meta *Frontmatter, body, dirName string, cfg domain.ToolConfig) []domain.Finding {
	in := ruleInput{meta: meta, body: body, dirName: dirName}

	var findings []domain.Finding
	for _, r := range catalog {
		if cfg.Skips(r.name) {
			continue
		}
		if r.needsMeta && meta == nil {
			continue
		}
		findings = append(findings, r.check(in)...)
	}
	return findings
}

func checkRequiredFields(in ruleInput) []domain.Finding {
	var findings []domain.Finding
	for _, field := range []string{"name", "description"} {
		if !in.meta.Has(field) {
			findings = append(findings, domain.Fail("missing required field: '%s'", field))
		} else {
			findings = append(findings, domain.Pass("required field present: '%s'", field))
		}
	}
	return findings
}

func checkFieldTypes(in ruleInput) []domain.Finding {
	var findings []domain.Finding
	for _, field := range []string{"name", "description"} {
		if !in.meta.Has(field) {
			continue
		}
		if _, ok := in.meta.GetString(field); !ok {
			findings = append(findings, domain.Fail("field '%s' must be a string", field))
		}
	}
	return findings
}

func checkNameFormat(in ruleInput) []domain.Finding {
	name, ok := in.meta.GetString("name")
	if !ok {
		return nil
	}

	var findings []domain.Finding
	if n := utf8.RuneCountInString(name); n > maxNameLength {
		findings = append(findings, domain.Fail("skill name exceeds %d characters: %d", maxNameLength, n))
	}

	if !nameRe.MatchString(name) {
		msg := fmt.Sprintf("skill name must be hyphen-case (lowercase alphanumeric and hyphens): '%s'", name)
		if suggestion := hyphenCase(name); suggestion != "" && suggestion != name {
			msg += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
		}
		findings = append(findings, domain.Fail("%s", msg))
	} else {
		findings = append(findings, domain.Pass("skill name format is valid: '%s'", name))
	}
	return findings
}

// hyphenCase derives a candidate hyphen-case name from a CamelCase or
// snake_case identifier. Returns "" when no valid candidate can be built.
func hyphenCase(name string) string {
	var segments []string
	for _, word := range camelcase.Split(name) {
		cleaned := strings.Map(func(r rune) rune {
			if unicode.IsLower(r) || unicode.IsDigit(r) {
				return r
			}
			if unicode.IsUpper(r) {
				return unicode.ToLower(r)
			}
			return -1
		}, word)
		if cleaned != "" {
			segments = append(segments, cleaned)
		}
	}
	candidate := strings.Join(segments, "-")
	if !nameRe.MatchString(candidate) {
		return ""
	}
	return candidate
}

func checkNameDirectoryMatch(in ruleInput) []domain.Finding {
	name, ok := in.meta.GetString("name")
	if !ok {
		return nil
	}

	if name != in.dirName {
		return []domain.Finding{domain.Fail("directory '%s' does not match frontmatter name '%s'", in.dirName, name)}
	}
	return []domain.Finding{domain.Pass("directory name matches frontmatter name: '%s'", name)}
}

func checkDescriptionLength(in ruleInput) []domain.Finding {
	desc, ok := in.meta.GetString("description")
	if !ok {
		return nil
	}

	switch n := utf8.RuneCountInString(desc); {
	case n > maxDescriptionLength:
		return []domain.Finding{domain.Fail("description exceeds %d characters (%d chars)", maxDescriptionLength, n)}
	case n > recommendedDescLimit:
		return []domain.Finding{domain.Warn("description is %d chars (recommended at most %d)", n, recommendedDescLimit)}
	default:
		return []domain.Finding{domain.Pass("description length appropriate (%d chars)", n)}
	}
}

func checkDescriptionIntent(in ruleInput) []domain.Finding {
	desc, ok := in.meta.GetString("description")
	if !ok {
		return nil
	}

	lower := strings.ToLower(desc)
	for _, indicator := range whenIndicators {
		if strings.Contains(lower, indicator) {
			return []domain.Finding{domain.Pass("description explains when to use the skill")}
		}
	}
	return []domain.Finding{domain.Warn("description does not explain when to use the skill")}
}

func checkBodyLength(in ruleInput) []domain.Finding {
	words := len(strings.Fields(in.body))
	if words > recommendedBodyWords {
		return []domain.Finding{domain.Warn("body has %d words (recommended under %d)", words, recommendedBodyWords)}
	}
	return []domain.Finding{domain.Pass("body has %d words (under %d)", words, recommendedBodyWords)}
}

// checkCredentials scans for credential-like assignments. One warning per
// matching pattern, emitted in first-match order within the body; no finding
// when nothing matches.
func checkCredentials(in ruleInput) []domain.Finding {
	type hit struct {
		pos   int
		label string
	}
	var hits []hit
	for _, p := range credentialPatterns {
		if loc := p.re.FindStringIndex(in.body); loc != nil {
			hits = append(hits, hit{pos: loc[0], label: p.label})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	var findings []domain.Finding
	for _, h := range hits {
		findings = append(findings, domain.Warn("possible hardcoded credential detected (pattern: %s)", h.label))
	}
	return findings
}
