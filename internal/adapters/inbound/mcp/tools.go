package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/tnez/dot-agents/internal/adapters/outbound/config"
	"github.com/tnez/dot-agents/internal/adapters/outbound/gitinfo"
	"github.com/tnez/dot-agents/internal/adapters/outbound/skillfs"
	"github.com/tnez/dot-agents/internal/application"
	"github.com/tnez/dot-agents/internal/domain/skill"
)

// registerTools registers all dot-agents MCP tools on the given server.
func registerTools(s *server.MCPServer, skillPath string) {
	// 1. skill_validate
	s.AddTool(
		mcplib.NewTool("skill_validate",
			mcplib.WithDescription("Validate a skill directory against the agent skills specification. Returns findings and the verdict as JSON."),
			mcplib.WithString("path", mcplib.Description("Skill directory (defaults to the server's configured path)")),
		),
		handleValidate(skillPath),
	)

	// 2. skill_evaluate
	s.AddTool(
		mcplib.NewTool("skill_evaluate",
			mcplib.WithDescription("Extract objective evaluation metrics for a skill: word/line counts, examples, sections, bundled resources."),
			mcplib.WithString("path", mcplib.Description("Skill directory (defaults to the server's configured path)")),
			mcplib.WithBoolean("template", mcplib.Description("Return the markdown evaluation template instead of JSON")),
		),
		handleEvaluate(skillPath),
	)

	// 3. skill_metadata
	s.AddTool(
		mcplib.NewTool("skill_metadata",
			mcplib.WithDescription("Return the decoded SKILL.md frontmatter as JSON, keys in document order."),
			mcplib.WithString("path", mcplib.Description("Skill directory (defaults to the server's configured path)")),
		),
		handleMetadata(skillPath),
	)
}

func resolvePath(request mcplib.CallToolRequest, fallback string) string {
	if p, ok := request.GetArguments()["path"].(string); ok && p != "" {
		return p
	}
	return fallback
}

func handleValidate(skillPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir := resolvePath(request, skillPath)

		cfg, err := configAdapter.New().Load(dir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewValidateService(skillfs.New())
		report := svc.ValidateSkill(dir, cfg)
		return jsonResult(report)
	}
}

func handleEvaluate(skillPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir := resolvePath(request, skillPath)

		svc := application.NewEvaluateService(skillfs.New(), gitinfo.New())
		eval, err := svc.EvaluateSkill(dir)
		if err != nil {
			return errorResult(fmt.Sprintf("evaluation failed: %v", err)), nil
		}

		if wantTemplate, _ := request.GetArguments()["template"].(bool); wantTemplate {
			return textResult(svc.RenderTemplate(eval, time.Now())), nil
		}
		return jsonResult(eval)
	}
}

func handleMetadata(skillPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir := resolvePath(request, skillPath)

		fm, err := readFrontmatter(dir)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(fm)
	}
}

// orderedMetadata serializes frontmatter preserving document key order.
type orderedMetadata struct {
	Keys   []string       `json:"keys"`
	Values map[string]any `json:"values"`
}

func readFrontmatter(dir string) (*orderedMetadata, error) {
	raw, err := skillfs.New().ReadDocument(dir)
	if err != nil {
		return nil, fmt.Errorf("reading skill document: %w", err)
	}

	doc, err := skill.ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	meta := &orderedMetadata{Keys: doc.Meta.Keys(), Values: map[string]any{}}
	for _, key := range doc.Meta.Keys() {
		value, _ := doc.Meta.Get(key)
		meta.Values[key] = value
	}
	return meta, nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
