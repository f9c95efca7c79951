package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Prune deletes summaries recorded before cutoff and returns how many rows
// were removed
func (db *DB) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM ping_summaries WHERE parsed_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune summaries")
	}
	return res.RowsAffected()
}
