package database

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"pingparser/internal/models"
)

var _ models.History = (*DB)(nil)

// SaveSummary appends a parsed summary to the history
func (db *DB) SaveSummary(ctx context.Context, at time.Time, s models.PingSummary) error {
	query := `
        INSERT INTO ping_summaries (parsed_at, host, sent, received, packet_loss, min_ping, avg_ping, max_ping)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := db.ExecContext(ctx, query,
		at.UnixMilli(),
		s.Host,
		s.Sent,
		s.Received,
		s.PacketLoss,
		s.MinPing,
		s.AvgPing,
		s.MaxPing,
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert summary")
	}
	return nil
}

// GetRecent retrieves the newest limit summaries for host, oldest first
func (db *DB) GetRecent(ctx context.Context, host string, limit int) ([]models.HistoryEntry, error) {
	query := `
        SELECT parsed_at, host, sent, received, packet_loss, min_ping, avg_ping, max_ping
        FROM (
            SELECT * FROM ping_summaries
            WHERE host = ?
            ORDER BY parsed_at DESC, id DESC
            LIMIT ?
        )
        ORDER BY parsed_at ASC, id ASC
    `

	rows, err := db.QueryContext(ctx, query, host, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query summaries")
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		var parsedAt int64
		s := &e.Summary
		if err := rows.Scan(&parsedAt, &s.Host, &s.Sent, &s.Received,
			&s.PacketLoss, &s.MinPing, &s.AvgPing, &s.MaxPing); err != nil {
			return nil, errors.Wrap(err, "failed to scan summary")
		}
		e.ParsedAt = time.UnixMilli(parsedAt)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
