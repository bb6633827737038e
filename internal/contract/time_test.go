package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)

// TestParseRelativeTime covers various valid and invalid cases.
func TestParseRelativeTime(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "valid plural months (mixed case)",
			input:    "3 MoNtHs AgO",
			expected: fixedNow.AddDate(0, -3, 0),
		},
		{
			name:     "valid singular week (capitalized)",
			input:    "1 Week Ago",
			expected: fixedNow.AddDate(0, 0, -7),
		},
		{
			name:     "valid 10 days (upper case)",
			input:    "10 DAYS AGO",
			expected: fixedNow.AddDate(0, 0, -10),
		},
		{
			name:     "valid hours",
			input:    "5 hours ago",
			expected: fixedNow.Add(-5 * time.Hour),
		},
		{name: "invalid missing ago", input: "2 years", expectError: true},
		{name: "invalid bad unit (decades)", input: "4 decades ago", expectError: true},
		{name: "invalid non-numeric value", input: "one year ago", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseRelativeTime(tt.input, fixedNow)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseEntryDate(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{name: "empty is now", input: "", expected: fixedNow},
		{name: "today", input: "Today", expected: fixedNow},
		{name: "yesterday", input: "yesterday", expected: fixedNow.AddDate(0, 0, -1)},
		{name: "relative", input: "2 days ago", expected: fixedNow.AddDate(0, 0, -2)},
		{name: "date only in location", input: "2025-10-01", expected: time.Date(2025, time.October, 1, 0, 0, 0, 0, loc)},
		{name: "date and minutes", input: "2025-10-01 07:30", expected: time.Date(2025, time.October, 1, 7, 30, 0, 0, loc)},
		{name: "rfc3339 keeps zone", input: "2025-10-01T07:30:00Z", expected: time.Date(2025, time.October, 1, 7, 30, 0, 0, time.UTC)},
		{name: "garbage", input: "next tuesday", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseEntryDate(tt.input, fixedNow, loc)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "expected %s, got %s", tt.expected, result)
		})
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Weekday
	}{
		{"monday", time.Monday},
		{"Mon", time.Monday},
		{" SUNDAY ", time.Sunday},
		{"sat", time.Saturday},
		{"Thursday", time.Thursday},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			day, err := ParseWeekday(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, day)
		})
	}

	_, err := ParseWeekday("funday")
	assert.Error(t, err)
}

// FuzzParseEntryDate fuzzes the ParseEntryDate function with random inputs.
func FuzzParseEntryDate(f *testing.F) {
	seeds := []string{
		"today",
		"yesterday",
		"3 days ago",
		"2025-01-02",
		"2025-01-02 10:00",
		"2025-01-02T10:00:00+02:00",
		"0 weeks ago",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		_, _ = ParseEntryDate(input, fixedNow, time.UTC)
	})
}
