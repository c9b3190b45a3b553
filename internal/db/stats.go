package db

import (
	"context"
	"fmt"

	"taskscope/pkg/models"
)

// StatusCounts returns how many tasks sit in each status.
func (db *DB) StatusCounts(ctx context.Context) (map[models.TaskStatus]int, error) {
	rows, err := db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count statuses: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.TaskStatus]int)
	for rows.Next() {
		var status models.TaskStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return counts, nil
}

// PriorityCounts returns how many undone tasks carry each priority.
func (db *DB) PriorityCounts(ctx context.Context) (map[models.Priority]int, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT priority, COUNT(*) FROM tasks WHERE status != 'done' GROUP BY priority`)
	if err != nil {
		return nil, fmt.Errorf("failed to count priorities: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Priority]int)
	for rows.Next() {
		var priority models.Priority
		var n int
		if err := rows.Scan(&priority, &n); err != nil {
			return nil, fmt.Errorf("failed to scan priority count: %w", err)
		}
		counts[priority] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return counts, nil
}
