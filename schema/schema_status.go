package schema

import "time"

// StoreStatus represents the status of the sample store.
type StoreStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalSamples    int       `json:"total_samples"`
	FirstSampleTime time.Time `json:"first_sample_time"`
	LastSampleTime  time.Time `json:"last_sample_time"`
	SchemaVersion   int       `json:"schema_version"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}
