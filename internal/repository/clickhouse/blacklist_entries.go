package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arenawatch/arenawatch-backend/internal/model"
)

// BlacklistEntries returns every stored entry, oldest flag first. FINAL
// collapses replaced rows so only the latest state of each address is seen.
func (r *Repository) BlacklistEntries(ctx context.Context) ([]model.BlacklistEntry, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("blacklist_entries", err, start)
	}()

	const query = `
SELECT
	address,
	reason,
	risk_score,
	violations,
	evidence,
	first_flagged_at,
	last_updated_at
FROM blacklist_entries FINAL
ORDER BY first_flagged_at, address`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query blacklist entries: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var entries []model.BlacklistEntry
	for rows.Next() {
		var (
			address       string
			reason        string
			riskScore     uint8
			violations    []string
			evidenceJSON  string
			firstFlagged  time.Time
			lastUpdatedAt time.Time
		)
		if err = rows.Scan(&address, &reason, &riskScore, &violations, &evidenceJSON, &firstFlagged, &lastUpdatedAt); err != nil {
			return nil, fmt.Errorf("scan blacklist entry: %w", err)
		}

		var evidence model.Evidence
		if err = json.Unmarshal([]byte(evidenceJSON), &evidence); err != nil {
			return nil, fmt.Errorf("unmarshal evidence for %s: %w", address, err)
		}
		tags := make([]model.ViolationTag, len(violations))
		for i, v := range violations {
			tags[i] = model.ViolationTag(v)
		}
		entries = append(entries, model.BlacklistEntry{
			Address:        model.Address(address),
			Reason:         reason,
			Evidence:       evidence,
			RiskScore:      int(riskScore),
			Violations:     tags,
			FirstFlaggedAt: firstFlagged,
			LastUpdatedAt:  lastUpdatedAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blacklist entries: %w", err)
	}
	return entries, nil
}
