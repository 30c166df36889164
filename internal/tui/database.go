package tui

import (
	"context"

	"github.com/jmnayar/PRT/internal/database"
	"github.com/jmnayar/PRT/internal/models"
)

// Database defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_database_test.go -package=tui
type Database interface {
	InsertProject(ctx context.Context, p models.Project) (int64, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	FilteredProjects(ctx context.Context, q *database.ProjectQuery) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
	ProjectNames(ctx context.Context) ([]models.ProjectRef, error)
	UpdateProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) error
	UpdateProjectNotes(ctx context.Context, id int64, notes string) error
	DeleteProject(ctx context.Context, id int64) error

	InsertMilestone(ctx context.Context, m models.Milestone) (int64, error)
	ListMilestones(ctx context.Context) ([]models.Milestone, error)
	MilestonesForProject(ctx context.Context, projectID int64) ([]models.Milestone, error)
	DeleteMilestone(ctx context.Context, id int64) error

	InsertResource(ctx context.Context, r models.Resource) (int64, error)
	ListResources(ctx context.Context) ([]models.Resource, error)
	ListResourcesWithProjects(ctx context.Context) ([]models.ResourceWithProject, error)
	DeleteResource(ctx context.Context, id int64) error

	CountProjects(ctx context.Context) (int, error)
	CountResources(ctx context.Context) (int, error)
	CountActiveProjects(ctx context.Context) (int, error)
	ProjectCountsByStatus(ctx context.Context) ([]models.StatusCount, error)
	OnTimeDelayedCounts(ctx context.Context) (onTime, delayed int, err error)
	PhaseCounts(ctx context.Context) (dev, qa, live int, err error)
	RecentProjects(ctx context.Context, limit int) ([]models.Project, error)

	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}
