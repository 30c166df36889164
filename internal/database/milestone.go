package database

import (
	"context"
	"database/sql"

	"github.com/jmnayar/PRT/internal/models"
)

const milestoneColumns = `id, project_id, milestone_type, planned_date, revised_date, delay_reason, created_at`

func scanMilestone(row interface{ Scan(...interface{}) error }) (models.Milestone, error) {
	var m models.Milestone
	var revised, reason sql.NullString
	if err := row.Scan(
		&m.ID,
		&m.ProjectID,
		&m.Type,
		&m.PlannedDate,
		&revised,
		&reason,
		&m.CreatedAt,
	); err != nil {
		return models.Milestone{}, err
	}
	m.RevisedDate = fromNull(revised)
	m.DelayReason = fromNull(reason)
	return m, nil
}

// InsertMilestone stores a new milestone and returns its assigned id.
// The project_id foreign key is enforced: a dangling reference fails.
func (d *Database) InsertMilestone(ctx context.Context, m models.Milestone) (int64, error) {
	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO milestones (project_id, milestone_type, planned_date, revised_date, delay_reason)
		VALUES (?, ?, ?, ?, ?)`,
		m.ProjectID,
		string(m.Type),
		m.PlannedDate,
		toNullableArg(m.RevisedDate),
		toNullableArg(m.DelayReason),
	)
	if err != nil {
		return 0, wrapMilestoneErr("insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapMilestoneErr("insert", 0, err)
	}
	return id, nil
}

// ListMilestones returns every milestone ordered by insertion id.
func (d *Database) ListMilestones(ctx context.Context) ([]models.Milestone, error) {
	rows, err := d.DB.QueryContext(ctx, `SELECT `+milestoneColumns+` FROM milestones ORDER BY id ASC`)
	if err != nil {
		return nil, wrapMilestoneErr("list", 0, err)
	}
	defer rows.Close()
	return collectMilestones(rows)
}

// MilestonesForProject returns a project's milestones ordered by planned date.
func (d *Database) MilestonesForProject(ctx context.Context, projectID int64) ([]models.Milestone, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT `+milestoneColumns+` FROM milestones WHERE project_id = ? ORDER BY planned_date ASC`, projectID)
	if err != nil {
		return nil, wrapMilestoneErr("list for project", projectID, err)
	}
	defer rows.Close()
	return collectMilestones(rows)
}

func collectMilestones(rows *sql.Rows) ([]models.Milestone, error) {
	var milestones []models.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, wrapMilestoneErr("scan", 0, err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapMilestoneErr("scan", 0, err)
	}
	return milestones, nil
}

// DeleteMilestone removes a single milestone.
func (d *Database) DeleteMilestone(ctx context.Context, id int64) error {
	_, err := d.DB.ExecContext(ctx, `DELETE FROM milestones WHERE id = ?`, id)
	return wrapMilestoneErr("delete", id, err)
}
