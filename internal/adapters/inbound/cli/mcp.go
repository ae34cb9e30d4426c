package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/tnez/dot-agents/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the dot-agents MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var skillPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dot-agents MCP server (stdio)",
		Long:  "Start the MCP server using stdio transport. This lets AI coding assistants validate skills, pull evaluation metrics, and read skill metadata.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if skillPath == "" {
				skillPath = "."
			}
			s := mcpadapter.NewSkillMCPServer(skillPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&skillPath, "path", "", "Default skill path (defaults to current working directory)")

	return cmd
}
