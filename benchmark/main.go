// Package main provides a performance benchmarking tool for the Weightlog CLI.
// It seeds SQLite stores of increasing size, then times each chart period
// several times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - weightlog binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Scratch directory for generated stores and sample files
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/weightlog/internal/store"
	"github.com/huangsam/weightlog/schema"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Samples  int
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	Runs        int
	SampleSizes []int
	Periods     []schema.Period
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:     os.Args[1],
		Timeout:     2 * time.Minute,
		Runs:        5,
		SampleSizes: []int{1_000, 10_000, 100_000},
		Periods:     []schema.Period{schema.WeekPeriod, schema.MonthPeriod, schema.YearPeriod, schema.TotalPeriod},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results, config.Periods)
}

// checkPrerequisites verifies that the weightlog binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("weightlog"); err != nil {
		return fmt.Errorf("weightlog binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// runBenchmarks seeds one store per size and times every chart period against it
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: sizes %v, %v timeout, %d runs\n", config.SampleSizes, config.Timeout, config.Runs)

	for _, size := range config.SampleSizes {
		dbPath := filepath.Join(config.WorkDir, fmt.Sprintf("weightlog_%d.db", size))
		if err := seedStore(config.WorkDir, dbPath, size); err != nil {
			return nil, err
		}

		for _, period := range config.Periods {
			args := []string{"chart", "--period", string(period), "--store-db-connect", dbPath, "--color", "no"}
			results = append(results, runBenchmarkSuite(config, size, string(period), args))
		}
	}

	return results, nil
}

// seedStore generates a daily random walk and imports it into a fresh SQLite file
func seedStore(workDir, dbPath string, size int) error {
	_ = os.Remove(dbPath)

	samplesPath := filepath.Join(workDir, fmt.Sprintf("samples_%d.json", size))
	file, err := os.Create(samplesPath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	rng := rand.New(rand.NewPCG(uint64(size), 7))
	start := time.Now().UTC().AddDate(0, 0, -size)
	value := 80.0
	samples := make([]schema.Sample, size)
	for i := range samples {
		value = min(max(value+rng.NormFloat64()*0.3, schema.MinEntryKilograms), schema.MaxEntryKilograms)
		samples[i] = schema.Sample{ID: uuid.NewString(), Date: start.AddDate(0, 0, i), Value: value}
	}
	if err := store.EncodeLegacySamples(file, samples); err != nil {
		return err
	}

	fmt.Printf("Seeding %d samples into %s\n", size, dbPath)
	cmd := exec.Command("weightlog", "import", samplesPath, "--replace", "--store-db-connect", dbPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to seed store: %w\nOutput: %s", err, string(output))
	}
	return nil
}

// runBenchmarkSuite times one command and formats cold and warm timings
func runBenchmarkSuite(config BenchmarkConfig, size int, command string, args []string) BenchmarkResult {
	fmt.Printf("Running chart %s on %d samples\n", command, size)

	cold, warm := runBenchmark(config, args)
	coldTimeStr := "TIMEOUT"
	if cold > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", cold)
	}
	warmAvg := "TIMEOUT"
	if len(warm) > 0 {
		var sum float64
		for _, t := range warm {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Samples:  size,
		Command:  command,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a weightlog command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("weightlog", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "Chart computed in")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/weightlog_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"samples", "period", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{fmt.Sprint(result.Samples), result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult, periods []schema.Period) {
	fmt.Printf("Benchmark complete\n")
	for _, period := range periods {
		fmt.Printf("Chart %s:\n", period)
		for _, result := range results {
			if result.Command == string(period) {
				fmt.Printf("  %8d samples: Cold: %s, Warm: %s\n", result.Samples, result.ColdTime, result.WarmTime)
			}
		}
	}
}
