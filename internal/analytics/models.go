package analytics

import (
	"time"

	"github.com/google/uuid"
)

// SearchResult is one hit of a global hash search
type SearchResult struct {
	Type  string    `json:"type"`
	ID    uuid.UUID `json:"id"`
	Hash  string    `json:"hash"`
	Label string    `json:"label"`
}

// DistributionBucket is one label/count pair of a group-by query
type DistributionBucket struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Distribution carries the OS and browser breakdowns for the dashboard charts
type Distribution struct {
	OS      []DistributionBucket `json:"os"`
	Browser []DistributionBucket `json:"browser"`
}

// DeviceAlert is a high-risk device rendered as an alert record
type DeviceAlert struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	ID        uuid.UUID `json:"id"`
	Score     float64   `json:"score"`
}
