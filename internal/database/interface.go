package database

import (
	"context"

	"github.com/jmnayar/PRT/internal/models"
)

// ProjectRepository defines project-related database operations.
type ProjectRepository interface {
	InsertProject(ctx context.Context, p models.Project) (int64, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	FilteredProjects(ctx context.Context, q *ProjectQuery) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
	ProjectNames(ctx context.Context) ([]models.ProjectRef, error)
	UpdateProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) error
	UpdateProjectNotes(ctx context.Context, id int64, notes string) error
	DeleteProject(ctx context.Context, id int64) error
}

// MilestoneRepository defines milestone-related database operations.
type MilestoneRepository interface {
	InsertMilestone(ctx context.Context, m models.Milestone) (int64, error)
	ListMilestones(ctx context.Context) ([]models.Milestone, error)
	MilestonesForProject(ctx context.Context, projectID int64) ([]models.Milestone, error)
	DeleteMilestone(ctx context.Context, id int64) error
}

// ResourceRepository defines assignment-related database operations.
type ResourceRepository interface {
	InsertResource(ctx context.Context, r models.Resource) (int64, error)
	ListResources(ctx context.Context) ([]models.Resource, error)
	ListResourcesWithProjects(ctx context.Context) ([]models.ResourceWithProject, error)
	DeleteResource(ctx context.Context, id int64) error
}

// AggregateReader defines the dashboard's summary queries.
type AggregateReader interface {
	CountProjects(ctx context.Context) (int, error)
	CountResources(ctx context.Context) (int, error)
	CountActiveProjects(ctx context.Context) (int, error)
	ProjectCountsByStatus(ctx context.Context) ([]models.StatusCount, error)
	OnTimeDelayedCounts(ctx context.Context) (onTime, delayed int, err error)
	PhaseCounts(ctx context.Context) (dev, qa, live int, err error)
	RecentProjects(ctx context.Context, limit int) ([]models.Project, error)
}

// SettingsStore defines UI preference persistence.
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	ProjectRepository
	MilestoneRepository
	ResourceRepository
	AggregateReader
	SettingsStore
}

var _ Repository = (*Database)(nil)
