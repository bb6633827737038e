package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/weightlog/schema"
)

// referenceDate is the epoch of numeric dates in legacy exports.
var referenceDate = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// legacyRecord is one element of a legacy export.
type legacyRecord struct {
	ID    string          `json:"id"`
	Date  json.RawMessage `json:"date"`
	Value float64         `json:"value"`
}

// DecodeLegacySamples reads a JSON array of {id, date, value} records.
// Dates are either seconds since 2001-01-01 UTC or RFC 3339 strings.
// Records without an id get a new UUID.
func DecodeLegacySamples(r io.Reader) ([]schema.Sample, error) {
	var records []legacyRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode legacy samples: %w", err)
	}

	samples := make([]schema.Sample, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		date, err := decodeLegacyDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if math.IsNaN(rec.Value) || math.IsInf(rec.Value, 0) || rec.Value <= 0 {
			return nil, fmt.Errorf("record %d: invalid value %v", i, rec.Value)
		}

		id := strings.TrimSpace(rec.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %s", i, id)
		}
		seen[id] = struct{}{}

		samples = append(samples, schema.Sample{ID: id, Date: date, Value: rec.Value})
	}
	return samples, nil
}

// decodeLegacyDate accepts a number of seconds since referenceDate or an RFC 3339 string.
func decodeLegacyDate(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, fmt.Errorf("missing date")
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, fmt.Errorf("invalid date: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, nil
	}

	var seconds float64
	if err := json.Unmarshal(raw, &seconds); err != nil {
		return time.Time{}, fmt.Errorf("invalid date %s: %w", raw, err)
	}
	whole, frac := math.Modf(seconds)
	return referenceDate.Add(time.Duration(whole) * time.Second).Add(time.Duration(frac * float64(time.Second))), nil
}

// EncodeLegacySamples writes samples in the legacy layout with RFC 3339 dates.
func EncodeLegacySamples(w io.Writer, samples []schema.Sample) error {
	records := make([]map[string]any, 0, len(samples))
	for _, s := range samples {
		records = append(records, map[string]any{
			"id":    s.ID,
			"date":  s.Date.Format(time.RFC3339Nano),
			"value": s.Value,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
