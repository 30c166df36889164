package database

import (
	"context"
	"database/sql"

	"github.com/jmnayar/PRT/internal/models"
)

const resourceColumns = `id, project_id, person_name, role, phase, allocation_pct, end_rule, created_at`

func scanResource(row interface{ Scan(...interface{}) error }) (models.Resource, error) {
	var r models.Resource
	var endRule sql.NullString
	if err := row.Scan(
		&r.ID,
		&r.ProjectID,
		&r.PersonName,
		&r.Role,
		&r.Phase,
		&r.AllocationPct,
		&endRule,
		&r.CreatedAt,
	); err != nil {
		return models.Resource{}, err
	}
	r.EndRule = endRule.String
	return r, nil
}

// InsertResource stores a new assignment and returns its assigned id.
// The project_id foreign key is enforced: a dangling reference fails.
func (d *Database) InsertResource(ctx context.Context, r models.Resource) (int64, error) {
	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO resources (project_id, person_name, role, phase, allocation_pct, end_rule)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ProjectID,
		r.PersonName,
		string(r.Role),
		string(r.Phase),
		r.AllocationPct,
		r.EndRule,
	)
	if err != nil {
		return 0, wrapResourceErr("insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapResourceErr("insert", 0, err)
	}
	return id, nil
}

// ListResources returns every assignment ordered by insertion id.
func (d *Database) ListResources(ctx context.Context) ([]models.Resource, error) {
	rows, err := d.DB.QueryContext(ctx, `SELECT `+resourceColumns+` FROM resources ORDER BY id ASC`)
	if err != nil {
		return nil, wrapResourceErr("list", 0, err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, wrapResourceErr("list", 0, err)
		}
		resources = append(resources, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapResourceErr("list", 0, err)
	}
	return resources, nil
}

// ListResourcesWithProjects returns every assignment joined with its
// project name, for the resources listing.
func (d *Database) ListResourcesWithProjects(ctx context.Context) ([]models.ResourceWithProject, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT r.id, r.project_id, r.person_name, r.role, r.phase, r.allocation_pct, r.end_rule, r.created_at, p.name
		FROM resources r
		JOIN projects p ON r.project_id = p.id
		ORDER BY r.id ASC`)
	if err != nil {
		return nil, wrapResourceErr("list with projects", 0, err)
	}
	defer rows.Close()

	var out []models.ResourceWithProject
	for rows.Next() {
		var rp models.ResourceWithProject
		var endRule sql.NullString
		if err := rows.Scan(
			&rp.ID,
			&rp.ProjectID,
			&rp.PersonName,
			&rp.Role,
			&rp.Phase,
			&rp.AllocationPct,
			&endRule,
			&rp.CreatedAt,
			&rp.ProjectName,
		); err != nil {
			return nil, wrapResourceErr("list with projects", 0, err)
		}
		rp.EndRule = endRule.String
		out = append(out, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapResourceErr("list with projects", 0, err)
	}
	return out, nil
}

// DeleteResource removes a single assignment.
func (d *Database) DeleteResource(ctx context.Context, id int64) error {
	_, err := d.DB.ExecContext(ctx, `DELETE FROM resources WHERE id = ?`, id)
	return wrapResourceErr("delete", id, err)
}
