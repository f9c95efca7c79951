package models

import (
	"context"
	"time"
)

// HistoryEntry is a summary recorded in the history store
type HistoryEntry struct {
	ParsedAt time.Time   `json:"parsed_at"`
	Summary  PingSummary `json:"summary"`
}

// Parser defines ping output extraction
type Parser interface {
	Parse(output string) (PingSummary, error)
}

// History defines operations for the optional summary history
type History interface {
	SaveSummary(ctx context.Context, at time.Time, summary PingSummary) error
	GetRecent(ctx context.Context, host string, limit int) ([]HistoryEntry, error)
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
	Close() error
}

// ReportGenerator defines chart rendering over the recorded history
type ReportGenerator interface {
	GenerateLatencyChart(ctx context.Context, filename, host string) error
}
