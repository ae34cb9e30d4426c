package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/tnez/dot-agents/internal/adapters/outbound/config"
	"github.com/tnez/dot-agents/internal/adapters/outbound/skillfs"
	"github.com/tnez/dot-agents/internal/application"
)

// registerResources registers all dot-agents MCP resources on the given
// server.
func registerResources(s *server.MCPServer, skillPath string) {
	// 1. skill://report - validation report for the configured skill
	s.AddResource(
		mcplib.NewResource(
			"skill://report",
			"Validation Report",
			mcplib.WithResourceDescription("Current validation report for the configured skill directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(skillPath),
	)

	// 2. skill://document - raw SKILL.md content
	s.AddResource(
		mcplib.NewResource(
			"skill://document",
			"Skill Document",
			mcplib.WithResourceDescription("Raw SKILL.md content for the configured skill directory"),
			mcplib.WithMIMEType("text/markdown"),
		),
		handleDocumentResource(skillPath),
	)
}

func handleReportResource(skillPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := configAdapter.New().Load(skillPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		svc := application.NewValidateService(skillfs.New())
		report := svc.ValidateSkill(skillPath, cfg)

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "skill://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleDocumentResource(skillPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		raw, err := skillfs.New().ReadDocument(skillPath)
		if err != nil {
			return nil, fmt.Errorf("reading skill document: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "skill://document",
				MIMEType: "text/markdown",
				Text:     raw,
			},
		}, nil
	}
}
