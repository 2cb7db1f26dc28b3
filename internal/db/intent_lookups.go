package db

import (
	"context"

	"portfoliochat/internal/models"
)

// IncrementIntentLookup upserts the hit count of an intent.
func (d *DB) IncrementIntentLookup(ctx context.Context, intent string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO intent_lookups (intent, count, last_seen_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (intent) DO UPDATE
		SET count = intent_lookups.count + 1, last_seen_at = NOW()
	`, intent)
	return err
}

// GetAllIntentLookups returns all intent hit counts for metrics export.
func (d *DB) GetAllIntentLookups(ctx context.Context) ([]models.IntentLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT intent, count, last_seen_at FROM intent_lookups ORDER BY intent`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.IntentLookup
	for rows.Next() {
		var l models.IntentLookup
		if err := rows.Scan(&l.Intent, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
