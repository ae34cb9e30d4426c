package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	configAdapter "github.com/tnez/dot-agents/internal/adapters/outbound/config"
	"github.com/tnez/dot-agents/internal/adapters/outbound/pandoc"
)

func newPDFCmd() *cobra.Command {
	var (
		output         string
		template       string
		variables      []string
		highlightStyle string
		pdfEngine      string
		bibliography   string
		csl            string
		verbose        bool
		checkDeps      bool
		listStyles     bool
	)

	cmd := &cobra.Command{
		Use:   "pdf [input.md]",
		Short: "Render a skill document to PDF via pandoc",
		Long:  "Convert a markdown document to PDF using pandoc, with template, variable, syntax-highlighting, and bibliography support. Defaults can be set under 'pdf:' in .skillcheck.yaml next to the input.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listStyles || checkDeps {
				conv, err := pandoc.New()
				if err != nil {
					return err
				}
				if listStyles {
					styles, err := conv.ListHighlightStyles(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Available syntax highlighting styles:")
					for _, s := range styles {
						fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", s)
					}
					return nil
				}
				if err := conv.CheckDependencies(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All dependencies are installed")
				return nil
			}

			if len(args) == 0 || output == "" {
				return fmt.Errorf("input and --output are required for conversion")
			}
			input, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			conv, err := pandoc.New()
			if err != nil {
				return err
			}

			if err := conv.CheckDependencies(cmd.Context()); err != nil {
				return err
			}

			// Config defaults from the input's directory; flags win.
			cfg, err := configAdapter.New().Load(filepath.Dir(input))
			if err != nil {
				return err
			}

			opts := pandoc.Options{
				Template:       firstNonEmpty(template, cfg.PDF.Template),
				HighlightStyle: firstNonEmpty(highlightStyle, cfg.PDF.HighlightStyle),
				PDFEngine:      firstNonEmpty(pdfEngine, cfg.PDF.Engine),
				Bibliography:   bibliography,
				CSL:            csl,
				Verbose:        verbose,
				Variables:      map[string]string{},
			}
			for k, v := range cfg.PDF.Variables {
				opts.Variables[k] = v
			}
			for _, kv := range variables {
				key, value, found := strings.Cut(kv, "=")
				if !found {
					return fmt.Errorf("invalid --var %q (expected KEY=VALUE)", kv)
				}
				opts.Variables[key] = value
			}

			if err := conv.Convert(cmd.Context(), input, output, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully created: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PDF file")
	cmd.Flags().StringVar(&template, "template", "", "Pandoc template to use (e.g. eisvogel)")
	cmd.Flags().StringArrayVar(&variables, "var", nil, "Set template variable KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&highlightStyle, "highlight-style", "", "Syntax highlighting style (default pygments)")
	cmd.Flags().StringVar(&pdfEngine, "pdf-engine", "", "PDF engine: xelatex, pdflatex, or lualatex (default xelatex)")
	cmd.Flags().StringVar(&bibliography, "bibliography", "", "BibTeX bibliography file (.bib)")
	cmd.Flags().StringVar(&csl, "csl", "", "Citation Style Language file (.csl)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose pandoc output")
	cmd.Flags().BoolVar(&checkDeps, "check-deps", false, "Check dependencies and exit")
	cmd.Flags().BoolVar(&listStyles, "list-highlight-styles", false, "List highlighting styles and exit")

	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
