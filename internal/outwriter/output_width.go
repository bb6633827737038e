package outwriter

import (
	"os"

	"github.com/huangsam/weightlog/internal/contract"
	"golang.org/x/term"
)

// terminalWidth returns the width override from cfg or the detected terminal width.
func terminalWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return 80
	}
	return detectedWidth
}

// GetMaxBarWidth calculates the widest bar drawn in the chart table
// based on terminal width and the fixed columns.
func GetMaxBarWidth(cfg *contract.Config) int {
	// Day + Average + Count columns with borders/padding
	baseWidth := 40

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	available := terminalWidth(cfg) - baseWidth
	if available < 10 {
		return 10
	}
	if available > 60 {
		return 60
	}
	return available
}
