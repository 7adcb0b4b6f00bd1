package postgre

import (
	"context"
	"encoding/json"

	"github.com/lib/pq"

	"rockguard-srv/internal/alert/repository"
	"rockguard-srv/internal/model"
)

// InsertBroadcast appends one record to the broadcast log. The log is
// append-only; there is no update path.
func (r *implRepository) InsertBroadcast(ctx context.Context, record model.BroadcastRecord) error {
	sentTo, err := json.Marshal(record.SentTo)
	if err != nil {
		r.l.Errorf(ctx, "alert.repository.postgre.InsertBroadcast: marshal sent_to failed: %v", err)
		return repository.ErrInsertBroadcastFailed
	}
	results, err := json.Marshal(record.Results)
	if err != nil {
		r.l.Errorf(ctx, "alert.repository.postgre.InsertBroadcast: marshal results failed: %v", err)
		return repository.ErrInsertBroadcastFailed
	}

	query := `
		INSERT INTO alerting.broadcasts
			(id, message, alert_type, priority, target_roles, target_locations,
			 target_users, sent_to, sent_at, success, results)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.ExecContext(ctx, query,
		record.ID, record.Message, record.AlertType, record.Priority,
		pq.Array(record.TargetRoles), pq.Array(record.TargetLocations),
		record.TargetUsers, sentTo, record.Timestamp, record.Success, results,
	)
	if err != nil {
		r.l.Errorf(ctx, "alert.repository.postgre.InsertBroadcast: insert failed: %v", err)
		return repository.ErrInsertBroadcastFailed
	}

	return nil
}

// ListBroadcasts returns one page of the log, newest first, plus the total
// count for pagination.
func (r *implRepository) ListBroadcasts(ctx context.Context, opt repository.ListBroadcastsOptions) ([]model.BroadcastRecord, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alerting.broadcasts`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "alert.repository.postgre.ListBroadcasts: count failed: %v", err)
		return nil, 0, repository.ErrListBroadcastsFailed
	}

	query := `
		SELECT id, message, alert_type, priority, target_roles, target_locations,
		       target_users, sent_to, sent_at, success, results
		FROM alerting.broadcasts
		ORDER BY sent_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "alert.repository.postgre.ListBroadcasts: query failed: %v", err)
		return nil, 0, repository.ErrListBroadcastsFailed
	}
	defer rows.Close()

	var records []model.BroadcastRecord
	for rows.Next() {
		var rec model.BroadcastRecord
		var sentTo, results []byte

		if err := rows.Scan(
			&rec.ID, &rec.Message, &rec.AlertType, &rec.Priority,
			pq.Array(&rec.TargetRoles), pq.Array(&rec.TargetLocations),
			&rec.TargetUsers, &sentTo, &rec.Timestamp, &rec.Success, &results,
		); err != nil {
			r.l.Errorf(ctx, "alert.repository.postgre.ListBroadcasts: scan failed: %v", err)
			return nil, 0, repository.ErrListBroadcastsFailed
		}

		if err := json.Unmarshal(sentTo, &rec.SentTo); err != nil {
			r.l.Warnf(ctx, "alert.repository.postgre.ListBroadcasts: corrupt sent_to on %s: %v", rec.ID, err)
		}
		if err := json.Unmarshal(results, &rec.Results); err != nil {
			r.l.Warnf(ctx, "alert.repository.postgre.ListBroadcasts: corrupt results on %s: %v", rec.ID, err)
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "alert.repository.postgre.ListBroadcasts: rows failed: %v", err)
		return nil, 0, repository.ErrListBroadcastsFailed
	}

	return records, total, nil
}
