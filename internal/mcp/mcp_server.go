// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/weightlog/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Weightlog MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Weightlog Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_chart ---
	s.AddTool(mcp.NewTool("get_chart",
		mcp.WithDescription("Compute the averaged weight series, axis ticks and min/max for one chart window."),
		mcp.WithString("period", mcp.Description("Chart period. Defaults to 'week'."), mcp.Enum("week", "month", "year", "total")),
		mcp.WithNumber("offset", mcp.Description("Whole periods relative to the latest sample, e.g. -1 for the previous week. Ignored for total.")),
		mcp.WithString("unit", mcp.Description("Display unit override (metric, imperial). Defaults to the stored preference.")),
	), quiet(h.handleGetChart))

	// --- 2. Tool: get_stats ---
	s.AddTool(mcp.NewTool("get_stats",
		mcp.WithDescription("Summarize the minimum, maximum and latest weight in one chart window."),
		mcp.WithString("period", mcp.Description("Chart period. Defaults to 'week'."), mcp.Enum("week", "month", "year", "total")),
		mcp.WithNumber("offset", mcp.Description("Whole periods relative to the latest sample.")),
		mcp.WithString("unit", mcp.Description("Display unit override (metric, imperial).")),
	), quiet(h.handleGetStats))

	// --- 3. Tool: list_samples ---
	s.AddTool(mcp.NewTool("list_samples",
		mcp.WithDescription("List the most recent weight samples, newest first. Values are kilograms."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of samples returned.")),
	), quiet(h.handleListSamples))

	// --- 4. Tool: add_sample ---
	s.AddTool(mcp.NewTool("add_sample",
		mcp.WithDescription("Record a new weight sample in the preferred unit."),
		mcp.WithString("value", mcp.Description("Weight in the preferred unit, e.g. '80.4' or '80,4'."), mcp.Required()),
		mcp.WithString("unit", mcp.Description("Unit of the value (metric, imperial). Defaults to the stored preference.")),
		mcp.WithString("date", mcp.Description("When it was measured (e.g. '2025-01-31', 'yesterday', '3 days ago'). Defaults to now.")),
	), quiet(h.handleAddSample))

	// --- 5. Tool: set_unit ---
	s.AddTool(mcp.NewTool("set_unit",
		mcp.WithDescription("Store the preferred display unit."),
		mcp.WithString("unit", mcp.Description("metric or imperial."), mcp.Required(), mcp.Enum("metric", "imperial")),
	), quiet(h.handleSetUnit))

	return s
}

// StartMCPServer starts the Weightlog MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
