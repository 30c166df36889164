package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/jmnayar/PRT/internal/models"
	"github.com/jmnayar/PRT/internal/util"
)

type TestDataBuilder struct {
	t          *testing.T
	ctx        context.Context
	db         *Database
	projectIDs []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithProject(name string, status models.ProjectStatus) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.InsertProject(b.ctx, models.Project{
		Name:          name,
		PlannedGoLive: "2026-11-30",
		Status:        status,
		DeliveryMonth: "Nov 2026",
	})
	if err != nil {
		b.t.Fatalf("InsertProject failed: %v", err)
	}
	b.projectIDs = append(b.projectIDs, id)
	return b
}

// WithMilestone attaches a milestone to the most recent project. A non-empty
// revised date records a slip.
func (b *TestDataBuilder) WithMilestone(mtype models.MilestoneType, planned, revised string) *TestDataBuilder {
	b.t.Helper()
	if len(b.projectIDs) == 0 {
		b.WithProject("Scaffold", models.StatusDev)
	}
	ms := models.Milestone{
		ProjectID:   b.projectIDs[len(b.projectIDs)-1],
		Type:        mtype,
		PlannedDate: planned,
	}
	if revised != "" {
		ms.RevisedDate = util.Ptr(revised)
	}
	if _, err := b.db.InsertMilestone(b.ctx, ms); err != nil {
		b.t.Fatalf("InsertMilestone failed: %v", err)
	}
	return b
}

func (b *TestDataBuilder) WithResources(count int, phase models.Phase) *TestDataBuilder {
	b.t.Helper()
	if len(b.projectIDs) == 0 {
		b.WithProject("Scaffold", models.StatusDev)
	}
	projectID := b.projectIDs[len(b.projectIDs)-1]
	for i := 0; i < count; i++ {
		if _, err := b.db.InsertResource(b.ctx, models.Resource{
			ProjectID:     projectID,
			PersonName:    fmt.Sprintf("Person %d", i+1),
			Role:          models.RoleBE,
			Phase:         phase,
			AllocationPct: 100,
			EndRule:       "Till Go-Live",
		}); err != nil {
			b.t.Fatalf("InsertResource failed: %v", err)
		}
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) LastProjectID() int64 {
	if len(b.projectIDs) == 0 {
		return 0
	}
	return b.projectIDs[len(b.projectIDs)-1]
}
