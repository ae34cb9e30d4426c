// Package evaluate extracts objective metrics from a skill document body for
// the evaluation report. Subjective dimension scoring stays with the
// reviewer; this package only measures what can be counted.
package evaluate

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/tnez/dot-agents/internal/domain"
)

// AnalyzeBody computes word/line counts and the document structure: level-2
// section headings, example count, and whether a "When to Use" section
// exists. Structure comes from the goldmark AST rather than line regexes so
// headings inside fenced code blocks are not miscounted.
func AnalyzeBody(body string) domain.BodyMetrics {
	metrics := domain.BodyMetrics{
		WordCount: len(strings.Fields(body)),
		LineCount: strings.Count(body, "\n") + 1,
	}

	src := []byte(body)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		title := strings.TrimSpace(string(h.Text(src)))
		switch h.Level {
		case 2:
			metrics.Sections = append(metrics.Sections, title)
			if strings.HasPrefix(strings.ToLower(title), "when to use") {
				metrics.HasWhenSection = true
			}
		case 3:
			if strings.HasPrefix(strings.ToLower(title), "example") {
				metrics.ExampleCount++
			}
		}
		return ast.WalkContinue, nil
	})

	return metrics
}
