package database

import (
	"context"
	"fmt"

	"github.com/jmnayar/PRT/internal/models"
)

// Dashboard aggregates. Every query recomputes from the live tables; the
// dashboard never caches.

func (d *Database) CountProjects(ctx context.Context) (int, error) {
	var n int
	err := d.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n)
	if err != nil {
		return 0, wrapProjectErr("count", 0, err)
	}
	return n, nil
}

func (d *Database) CountResources(ctx context.Context) (int, error) {
	var n int
	err := d.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM resources`).Scan(&n)
	if err != nil {
		return 0, wrapResourceErr("count", 0, err)
	}
	return n, nil
}

// CountActiveProjects counts projects whose status is neither Live nor
// Delayed.
func (d *Database) CountActiveProjects(ctx context.Context) (int, error) {
	var n int
	err := d.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE status NOT IN (?, ?)`,
		string(models.StatusLive), string(models.StatusDelayed)).Scan(&n)
	if err != nil {
		return 0, wrapProjectErr("count active", 0, err)
	}
	return n, nil
}

// ProjectCountsByStatus returns one bucket per status value present,
// in the fixed display order of the status enum.
func (d *Database) ProjectCountsByStatus(ctx context.Context) ([]models.StatusCount, error) {
	rows, err := d.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, wrapProjectErr("count by status", 0, err)
	}
	defer rows.Close()

	byStatus := make(map[models.ProjectStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, wrapProjectErr("count by status", 0, err)
		}
		byStatus[models.ProjectStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, wrapProjectErr("count by status", 0, err)
	}

	var counts []models.StatusCount
	for _, st := range models.ProjectStatuses {
		if n, ok := byStatus[st]; ok {
			counts = append(counts, models.StatusCount{Status: st, Count: n})
		}
	}
	return counts, nil
}

// OnTimeDelayedCounts splits projects into not-Delayed vs Delayed.
func (d *Database) OnTimeDelayedCounts(ctx context.Context) (onTime, delayed int, err error) {
	err = d.DB.QueryRowContext(ctx, `
		SELECT
			COUNT(CASE WHEN status != ? THEN 1 END),
			COUNT(CASE WHEN status = ? THEN 1 END)
		FROM projects`,
		string(models.StatusDelayed), string(models.StatusDelayed)).Scan(&onTime, &delayed)
	if err != nil {
		return 0, 0, wrapProjectErr("count on-time", 0, err)
	}
	return onTime, delayed, nil
}

// PhaseCounts buckets projects into development, QA and live for the
// dashboard's phase breakdown.
func (d *Database) PhaseCounts(ctx context.Context) (dev, qa, live int, err error) {
	err = d.DB.QueryRowContext(ctx, `
		SELECT
			COUNT(CASE WHEN status = ? THEN 1 END),
			COUNT(CASE WHEN status = ? THEN 1 END),
			COUNT(CASE WHEN status = ? THEN 1 END)
		FROM projects`,
		string(models.StatusDev), string(models.StatusQA), string(models.StatusLive)).Scan(&dev, &qa, &live)
	if err != nil {
		return 0, 0, 0, wrapProjectErr("count phases", 0, err)
	}
	return dev, qa, live, nil
}

// RecentProjects returns the most recently inserted projects, newest first.
func (d *Database) RecentProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("recent projects: limit must be positive, got %d", limit)
	}
	rows, err := d.DB.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, wrapProjectErr("list recent", 0, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, wrapProjectErr("list recent", 0, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapProjectErr("list recent", 0, err)
	}
	return projects, nil
}
