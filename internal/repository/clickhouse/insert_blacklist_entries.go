package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arenawatch/arenawatch-backend/internal/model"
)

// InsertBlacklistEntries stores blacklist rows in ClickHouse. Re-inserting
// an address replaces its row on merge, keyed by last_updated_at.
func (r *Repository) InsertBlacklistEntries(ctx context.Context, entries []model.BlacklistEntry) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blacklist_entries", err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	const query = `
INSERT INTO blacklist_entries (
	address,
	reason,
	risk_score,
	violations,
	evidence,
	first_flagged_at,
	last_updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blacklist batch: %w", err)
	}

	for _, entry := range entries {
		evidence, marshalErr := json.Marshal(entry.Evidence)
		if marshalErr != nil {
			err = fmt.Errorf("marshal evidence for %s: %w", entry.Address, marshalErr)
			return err
		}
		violations := make([]string, len(entry.Violations))
		for i, v := range entry.Violations {
			violations[i] = string(v)
		}
		if err = batch.Append(
			string(entry.Address),
			entry.Reason,
			uint8(entry.RiskScore),
			violations,
			string(evidence),
			entry.FirstFlaggedAt,
			entry.LastUpdatedAt,
		); err != nil {
			err = fmt.Errorf("append blacklist entry: %w", err)
			return err
		}
	}

	if err = batch.Send(); err != nil {
		err = fmt.Errorf("insert blacklist entries: %w", err)
		return err
	}
	return nil
}
