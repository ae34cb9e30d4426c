package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tnez/dot-agents/internal/adapters/outbound/gitinfo"
	"github.com/tnez/dot-agents/internal/adapters/outbound/skillfs"
	"github.com/tnez/dot-agents/internal/adapters/outbound/tui"
	"github.com/tnez/dot-agents/internal/application"
)

func newEvalCmd() *cobra.Command {
	var (
		jsonOutput bool
		template   bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "eval <skill-dir>",
		Short: "Extract objective evaluation metrics for a skill",
		Long:  "Compute word/line counts, example count, section structure, and the bundled resource inventory, and optionally emit the evaluation report template for a reviewer to score.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewEvaluateService(skillfs.New(), gitinfo.New())
			eval, err := svc.EvaluateSkill(absPath)
			if err != nil {
				return err
			}

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(eval)
			case template || output != "":
				rendered := svc.RenderTemplate(eval, time.Now())
				if output != "" {
					if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
						return fmt.Errorf("writing %s: %w", output, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Evaluation template written to: %s\n", output)
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderEvaluation(eval))
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output metrics as JSON")
	cmd.Flags().BoolVar(&template, "template", false, "Emit the markdown evaluation template")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the evaluation template to a file")

	return cmd
}
