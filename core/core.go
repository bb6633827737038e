// Package core has the window and bucket calculator for weight charts
// and the orchestration that feeds it from the store.
package core

import (
	"context"
	"time"

	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/internal/outwriter"
)

// ExecutorFunc defines the function signature for executing store-backed commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// ExecuteChart computes the chart for the configured period and offset and prints it.
// It also renders an image when one was requested.
func ExecuteChart(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := LoadChart(ctx, cfg, mgr, start)
	if err != nil {
		return err
	}
	if cfg.ImagePath != "" {
		if err := outwriter.WriteChartImage(result, cfg); err != nil {
			return err
		}
	}
	return outwriter.PrintChartResult(result, cfg, time.Since(start))
}

// ExecuteStats prints the min/max summary of the configured window.
func ExecuteStats(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := LoadStats(ctx, cfg, mgr, start)
	if err != nil {
		return err
	}
	return outwriter.PrintStatsResult(result, cfg)
}

// ExecuteSamples prints the most recent samples, newest first.
func ExecuteSamples(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	samples, err := RecentSamples(ctx, mgr, cfg.Limit)
	if err != nil {
		return err
	}
	unit := ResolveUnit(ctx, cfg, mgr)
	return outwriter.PrintSamples(samples, unit, cfg)
}
