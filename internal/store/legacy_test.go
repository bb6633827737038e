package store

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/weightlog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDay() time.Time {
	return time.Date(2024, time.February, 29, 7, 15, 0, 0, time.UTC)
}

func TestDecodeLegacySamples(t *testing.T) {
	input := `[
		{"id": "A1B2", "date": 0, "value": 80.5},
		{"id": "C3D4", "date": 86400.5, "value": 81},
		{"date": "2024-02-29T07:15:00Z", "value": 79.9}
	]`

	samples, err := DecodeLegacySamples(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, "A1B2", samples[0].ID)
	assert.True(t, samples[0].Date.Equal(time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.InDelta(t, 80.5, samples[0].Value, 1e-9)

	assert.True(t, samples[1].Date.Equal(time.Date(2001, time.January, 2, 0, 0, 0, 500_000_000, time.UTC)))

	assert.NotEmpty(t, samples[2].ID, "missing ids get a generated UUID")
	assert.Len(t, samples[2].ID, 36)
	assert.True(t, samples[2].Date.Equal(fixedDay()))
}

func TestDecodeLegacySamplesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `nope`},
		{"not an array", `{"id": "a"}`},
		{"missing date", `[{"id": "a", "value": 80}]`},
		{"bad date string", `[{"id": "a", "date": "yesterday", "value": 80}]`},
		{"non positive value", `[{"id": "a", "date": 0, "value": 0}]`},
		{"duplicate id", `[{"id": "a", "date": 0, "value": 80}, {"id": "a", "date": 1, "value": 81}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLegacySamples(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestEncodeLegacySamplesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeLegacySamples(&buf, []schema.Sample{
		sampleAt("one", fixedDay(), 80.1),
		sampleAt("two", fixedDay().Add(36*time.Hour), 79.4),
	}))

	decoded, err := DecodeLegacySamples(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "two", decoded[1].ID)
	assert.True(t, decoded[1].Date.Equal(fixedDay().Add(36*time.Hour)))
	assert.InDelta(t, 79.4, decoded[1].Value, 1e-9)
}

func TestDecodeLegacySamplesEmpty(t *testing.T) {
	samples, err := DecodeLegacySamples(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, samples)
}
