package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/tnez/dot-agents/internal/adapters/outbound/config"
	"github.com/tnez/dot-agents/internal/adapters/outbound/skillfs"
	"github.com/tnez/dot-agents/internal/adapters/outbound/tui"
	"github.com/tnez/dot-agents/internal/application"
	"github.com/tnez/dot-agents/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		plain      bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "validate <skill-dir>",
		Short: "Validate a skill directory's SKILL.md",
		Long:  "Check a skill directory's SKILL.md frontmatter, naming, description, body, and file references. Exits nonzero when the verdict is a failure.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := configAdapter.New().Load(absPath)
			if err != nil {
				return err
			}

			svc := application.NewValidateService(skillfs.New())
			report := svc.ValidateSkill(absPath, cfg)

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			case plain:
				fmt.Fprint(cmd.OutOrStdout(), report.Render())
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			// Exit status: errors always fail; warnings fail under strict.
			_, warnings, errors := report.Counts()
			switch report.Verdict() {
			case domain.SeverityError:
				return fmt.Errorf("validation failed: %d error(s)", errors)
			case domain.SeverityWarning:
				if strict || cfg.Strict {
					return fmt.Errorf("validation failed (strict): %d warning(s)", warnings)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain text report without styling")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on any warning")

	return cmd
}
