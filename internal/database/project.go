package database

import (
	"context"
	"database/sql"

	"github.com/jmnayar/PRT/internal/models"
)

const projectColumns = `id, name, product, business_owner, scrum_master, platforms, planned_go_live, status, delivery_month, notes, created_at`

func scanProject(row interface{ Scan(...interface{}) error }) (models.Project, error) {
	var p models.Project
	var product, owner, scrumMaster, platforms, goLive, status, month, notes sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&product,
		&owner,
		&scrumMaster,
		&platforms,
		&goLive,
		&status,
		&month,
		&notes,
		&p.CreatedAt,
	); err != nil {
		return models.Project{}, err
	}
	p.Product = product.String
	p.BusinessOwner = owner.String
	p.ScrumMaster = scrumMaster.String
	p.Platforms = platforms.String
	p.PlannedGoLive = goLive.String
	p.Status = models.ProjectStatus(status.String)
	p.DeliveryMonth = month.String
	p.Notes = notes.String
	return p, nil
}

// InsertProject stores a new project and returns its assigned id.
func (d *Database) InsertProject(ctx context.Context, p models.Project) (int64, error) {
	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO projects (name, product, business_owner, scrum_master, platforms, planned_go_live, status, delivery_month, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name,
		nullableString(p.Product),
		nullableString(p.BusinessOwner),
		nullableString(p.ScrumMaster),
		nullableString(p.Platforms),
		nullableString(p.PlannedGoLive),
		string(p.Status),
		nullableString(p.DeliveryMonth),
		nullableString(p.Notes),
	)
	if err != nil {
		return 0, wrapProjectErr("insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapProjectErr("insert", 0, err)
	}
	return id, nil
}

// ListProjects returns every project ordered by insertion id.
func (d *Database) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := d.DB.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id ASC`)
	if err != nil {
		return nil, wrapProjectErr("list", 0, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, wrapProjectErr("list", 0, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapProjectErr("list", 0, err)
	}
	return projects, nil
}

// FilteredProjects runs the query described by q.
func (d *Database) FilteredProjects(ctx context.Context, q *ProjectQuery) ([]models.Project, error) {
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapProjectErr("filter", 0, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, wrapProjectErr("filter", 0, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapProjectErr("filter", 0, err)
	}
	return projects, nil
}

// GetProject fetches a single project by id.
func (d *Database) GetProject(ctx context.Context, id int64) (models.Project, error) {
	row := d.DB.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		return models.Project{}, wrapProjectErr("get", id, err)
	}
	return p, nil
}

// ProjectNames returns the id/name pairs offered by selector dropdowns,
// sorted by name the way the intake selector presents them.
func (d *Database) ProjectNames(ctx context.Context) ([]models.ProjectRef, error) {
	rows, err := d.DB.QueryContext(ctx, `SELECT id, name FROM projects ORDER BY name ASC`)
	if err != nil {
		return nil, wrapProjectErr("list names", 0, err)
	}
	defer rows.Close()

	var refs []models.ProjectRef
	for rows.Next() {
		var ref models.ProjectRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, wrapProjectErr("list names", 0, err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapProjectErr("list names", 0, err)
	}
	return refs, nil
}

// UpdateProjectStatus changes the status label of a project.
func (d *Database) UpdateProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) error {
	_, err := d.DB.ExecContext(ctx, `UPDATE projects SET status = ? WHERE id = ?`, string(status), id)
	return wrapProjectErr("update status", id, err)
}

// UpdateProjectNotes replaces the notes of a project.
func (d *Database) UpdateProjectNotes(ctx context.Context, id int64, notes string) error {
	_, err := d.DB.ExecContext(ctx, `UPDATE projects SET notes = ? WHERE id = ?`, nullableString(notes), id)
	return wrapProjectErr("update notes", id, err)
}

// DeleteProject removes a project. Milestones and resources cascade.
func (d *Database) DeleteProject(ctx context.Context, id int64) error {
	_, err := d.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return wrapProjectErr("delete", id, err)
}
