package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/ackgate/pkg/app"
	"tableflip.dev/ackgate/pkg/contract"
	"tableflip.dev/ackgate/pkg/history"
	"tableflip.dev/ackgate/pkg/timeutil"
)

// NewServer builds the MCP server over svc. It can read status and history
// and toggle ritual items; it never confirms the gate.
func NewServer(svc *app.Service, name, version string) *server.MCPServer {
	srv := server.NewMCPServer(
		name,
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read the daily contract status and history, and tick ritual items once today is acknowledged."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	h := &handlers{svc: svc}
	registerTools(srv, h)
	registerResources(srv, h)
	return srv
}

type handlers struct {
	svc *app.Service
}

func registerTools(srv *server.MCPServer, h *handlers) {
	srv.AddTool(mcp.NewTool(
		"get_status",
		mcp.WithDescription("Today's acknowledgement and ritual checklist."),
	), h.status)

	srv.AddTool(mcp.NewTool(
		"list_history",
		mcp.WithDescription("Confirmed days, newest first. Entries older than 30 days are pruned."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries to return. Defaults to 7."),
		),
		mcp.WithString("within",
			mcp.Description("Optional window such as 2w or 10d; overrides limit."),
		),
	), h.history)

	srv.AddTool(mcp.NewTool(
		"toggle_ritual",
		mcp.WithDescription("Set one ritual item for today. Refused until today's contract is acknowledged."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Ritual item identifier, e.g. gym."),
		),
		mcp.WithBoolean("checked",
			mcp.Description("New value. Defaults to true."),
		),
	), h.toggle)
}

func registerResources(srv *server.MCPServer, h *handlers) {
	resource := mcp.NewResource(
		"ackgate://contract",
		"Today's contract",
		mcp.WithResourceDescription("The contract document rendered for today."),
		mcp.WithMIMEType("text/markdown"),
	)
	srv.AddResource(resource, h.contract)
}

func (h *handlers) status(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.svc.Status()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(st)
}

func (h *handlers) history(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Limit  int    `json:"limit"`
		Within string `json:"within"`
	}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if w := strings.TrimSpace(args.Within); w != "" {
		d, _, err := timeutil.ParseWindow(w)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(h.svc.Report(d))
	}
	if args.Limit <= 0 {
		args.Limit = history.DefaultRecent
	}
	entries := h.svc.History(args.Limit)
	return toJSONResult(map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

func (h *handlers) toggle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ID      string `json:"id"`
		Checked *bool  `json:"checked"`
	}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if strings.TrimSpace(args.ID) == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	value := true
	if args.Checked != nil {
		value = *args.Checked
	}
	p, err := h.svc.Toggle(args.ID, value)
	if errors.Is(err, app.ErrNotAcknowledged) {
		return mcp.NewToolResultError("today's contract is not acknowledged yet"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{
		"id":       args.ID,
		"checked":  value,
		"progress": p,
		"level":    p.Level().String(),
	})
}

func (h *handlers) contract(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	doc := strings.Replace(h.svc.Document(), contract.DatePlaceholder, timeutil.FormatLong(h.svc.Now()), 1)
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     doc,
		},
	}, nil
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
