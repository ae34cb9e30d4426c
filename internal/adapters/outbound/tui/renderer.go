package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tnez/dot-agents/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a validation report for the terminal: header box with
// the verdict, per-severity counts, then every finding grouped by severity in
// emission order.
func RenderReport(report *domain.ValidationReport) string {
	var b strings.Builder

	verdict := report.Verdict()
	title := headerStyle.Render("skill validation")
	subtitle := dimStyle.Render(report.SkillName())
	verdictStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(verdictColor(verdict)).
		Render(verdictLabel(verdict))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdictStyled))
	b.WriteString("\n\n")

	passes, warnings, errors := report.Counts()
	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Findings"))
	b.WriteString("  ")
	b.WriteString(passStyle.Render(fmt.Sprintf("%d passed", passes)))
	if warnings > 0 {
		b.WriteString("  ")
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if errors > 0 {
		b.WriteString("  ")
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", errors)))
	}
	b.WriteString("\n\n")

	renderGroup(&b, report, domain.SeverityPass)
	renderGroup(&b, report, domain.SeverityWarning)
	renderGroup(&b, report, domain.SeverityError)

	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	switch verdict {
	case domain.SeverityError:
		b.WriteString("  " + failStyle.Render("Fix errors before using this skill.") + "\n")
	case domain.SeverityWarning:
		b.WriteString("  " + warnStyle.Render("Passed with warnings. Consider addressing them.") + "\n")
	default:
		b.WriteString("  " + passStyle.Render("Skill is valid.") + "\n")
	}

	return b.String()
}

func renderGroup(b *strings.Builder, report *domain.ValidationReport, sev domain.Severity) {
	findings := report.BySeverity(sev)
	if len(findings) == 0 {
		return
	}
	for _, f := range findings {
		fmt.Fprintf(b, "    %s %s\n", severityTag(sev), dimStyle.Render(f.Message))
	}
	b.WriteString("\n")
}

func severityTag(sev domain.Severity) string {
	switch sev {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return passStyle.Render("pass ")
	}
}

func verdictLabel(sev domain.Severity) string {
	switch sev {
	case domain.SeverityError:
		return "FAILED"
	case domain.SeverityWarning:
		return "PASSED WITH WARNINGS"
	default:
		return "PASSED"
	}
}

func verdictColor(sev domain.Severity) lipgloss.Color {
	switch sev {
	case domain.SeverityError:
		return danger
	case domain.SeverityWarning:
		return warning
	default:
		return success
	}
}

// RenderEvaluation renders the objective metrics summary for the terminal.
// The full markdown template comes from the evaluate service; this is the
// at-a-glance view.
func RenderEvaluation(eval *domain.Evaluation) string {
	var b strings.Builder

	title := headerStyle.Render("skill evaluation")
	subtitle := dimStyle.Render(eval.SkillName)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Words", 16)), dimStyle.Render(fmt.Sprintf("%d", eval.Metrics.WordCount)))
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Lines", 16)), dimStyle.Render(fmt.Sprintf("%d", eval.Metrics.LineCount)))
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Examples", 16)), dimStyle.Render(fmt.Sprintf("%d", eval.Metrics.ExampleCount)))
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("When to Use", 16)), renderBool(eval.Metrics.HasWhenSection))

	total := len(eval.Resources.Scripts) + len(eval.Resources.Templates) +
		len(eval.Resources.Assets) + len(eval.Resources.References)
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Resources", 16)), dimStyle.Render(fmt.Sprintf("%d file(s)", total)))

	if len(eval.Metrics.Sections) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Sections") + "\n")
		for _, section := range eval.Metrics.Sections {
			fmt.Fprintf(&b, "    %s %s\n", faintStyle.Render("•"), dimStyle.Render(section))
		}
	}

	return b.String()
}

func renderBool(v bool) string {
	if v {
		return passStyle.Render("yes")
	}
	return warnStyle.Render("no")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
