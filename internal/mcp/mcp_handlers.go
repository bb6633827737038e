package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/weightlog/core"
	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// chartConfig clones the base config with the period, offset and unit of the request.
func (h *toolHandler) chartConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	err := contract.RevalidateChart(cfg,
		request.GetString("period", ""),
		request.GetInt("offset", 0),
		request.GetString("unit", ""))
	return cfg, err
}

// quiet runs a tool handler with warnings suppressed, since stdio carries the protocol.
func quiet(fn server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return fn(contract.WithQuietLogs(ctx), request)
	}
}

func jsonResult(data any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(data, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleGetChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.chartConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chart parameters: %v", err)), nil
	}

	result, err := core.LoadChart(ctx, cfg, h.mgr, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chart failed: %v", err)), nil
	}

	return jsonResult(struct {
		schema.ChartResult
		DisplayBuckets []schema.Bucket `json:"display_buckets"`
	}{result, result.DisplayBuckets()}), nil
}

func (h *toolHandler) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.chartConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid stats parameters: %v", err)), nil
	}

	result, err := core.LoadStats(ctx, cfg, h.mgr, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stats failed: %v", err)), nil
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handleListSamples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := h.baseCfg.Limit
	if l := request.GetInt("limit", 0); l > 0 {
		limit = min(l, contract.MaxSampleLimit)
	}

	samples, err := core.RecentSamples(ctx, h.mgr, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing samples failed: %v", err)), nil
	}
	return jsonResult(samples), nil
}

func (h *toolHandler) handleAddSample(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	now := time.Now()
	if err := contract.RevalidateEntryDate(cfg, request.GetString("date", ""), now); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date: %v", err)), nil
	}

	value := request.GetString("value", "")
	if value == "" {
		return mcp.NewToolResultError("value is required"), nil
	}
	if raw := request.GetString("unit", ""); raw != "" {
		unit, err := schema.ParseUnitSystem(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cfg.Unit = unit
	}

	sample, err := core.AddSample(ctx, cfg, h.mgr, value, now)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("adding sample failed: %v", err)), nil
	}
	return jsonResult(sample), nil
}

func (h *toolHandler) handleSetUnit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	unit, err := schema.ParseUnitSystem(request.GetString("unit", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := core.SetUnit(ctx, h.mgr, unit); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("saving unit failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("preferred unit set to %s", unit)), nil
}
