// Package pandoc wraps the external pandoc binary to render skill documents
// as PDF. The converter only builds argv and shells out; all document logic
// stays upstream.
package pandoc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// headerIncludes enables line wrapping inside highlighted code blocks.
const headerIncludes = `\usepackage{fvextra}
\DefineVerbatimEnvironment{Highlighting}{Verbatim}{breaklines,breakanywhere,commandchars=\\\{\}}
`

// Options control a single conversion.
type Options struct {
	Template       string
	Variables      map[string]string
	HighlightStyle string
	PDFEngine      string
	Bibliography   string
	CSL            string
	Verbose        bool
}

// Converter invokes pandoc.
type Converter struct {
	pandocPath string
}

// New locates pandoc on PATH.
func New() (*Converter, error) {
	path, err := exec.LookPath("pandoc")
	if err != nil {
		return nil, fmt.Errorf("pandoc not found on PATH (install: brew install pandoc / apt-get install pandoc): %w", err)
	}
	return &Converter{pandocPath: path}, nil
}

// CheckDependencies verifies a LaTeX engine is available.
func (c *Converter) CheckDependencies(ctx context.Context) error {
	for _, engine := range []string{"xelatex", "pdflatex"} {
		if err := exec.CommandContext(ctx, engine, "--version").Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no LaTeX engine found (install: brew install basictex / apt-get install texlive)")
}

// ListHighlightStyles returns the syntax highlighting styles pandoc supports.
func (c *Converter) ListHighlightStyles(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, c.pandocPath, "--list-highlight-styles").Output()
	if err != nil {
		return nil, fmt.Errorf("listing highlight styles: %w", err)
	}
	return strings.Fields(string(out)), nil
}

// BuildArgs assembles the pandoc argv for one conversion. Variables merge
// over engine-appropriate defaults, explicit values winning; keys are sorted
// so the command line is deterministic.
func (c *Converter) BuildArgs(input, output, headerFile string, opts Options) []string {
	engine := opts.PDFEngine
	if engine == "" {
		engine = "xelatex"
	}
	style := opts.HighlightStyle
	if style == "" {
		style = "pygments"
	}

	args := []string{
		input,
		"-o", output,
		"--pdf-engine=" + engine,
		"--syntax-highlighting=" + style,
	}

	if opts.Template != "" {
		args = append(args, "--template", opts.Template)
	}

	vars := map[string]string{
		"geometry":    "margin=0.75in",
		"fontsize":    "11pt",
		"linestretch": "1.15",
	}
	// Only set fonts under XeLaTeX, which has the Unicode support for them.
	if engine == "xelatex" {
		vars["mainfont"] = "Arial"
		vars["monofont"] = "Courier New"
		vars["monofontoptions"] = "Scale=0.9"
	}
	for k, v := range opts.Variables {
		vars[k] = v
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-V", k+"="+vars[k])
	}

	if headerFile != "" {
		args = append(args, "-H", headerFile)
	}
	if opts.Bibliography != "" {
		args = append(args, "--bibliography", opts.Bibliography, "--citeproc")
	}
	if opts.CSL != "" {
		args = append(args, "--csl", opts.CSL)
	}
	if opts.Verbose {
		args = append(args, "--verbose")
	}

	return args
}

// Convert renders input markdown to an output PDF.
func (c *Converter) Convert(ctx context.Context, input, output string, opts Options) error {
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input file not found: %s", input)
	}

	headerFile, err := writeHeaderFile()
	if err != nil {
		return err
	}
	defer os.Remove(headerFile)

	cmd := exec.CommandContext(ctx, c.pandocPath, c.BuildArgs(input, output, headerFile, opts)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pandoc conversion failed: %w\n%s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// writeHeaderFile creates the temporary LaTeX header include.
func writeHeaderFile() (string, error) {
	f, err := os.CreateTemp("", "skillcheck-header-*.tex")
	if err != nil {
		return "", fmt.Errorf("creating header file: %w", err)
	}
	if _, err := f.WriteString(headerIncludes); err != nil {
		f.Close()
		return "", fmt.Errorf("writing header file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return f.Name(), nil
}
