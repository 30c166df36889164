package models

import (
	"fmt"
	"time"
)

// ProjectStatus enumerates the delivery states a project can be in.
type ProjectStatus string

const (
	StatusBrainstorming ProjectStatus = "Brainstorming"
	StatusDev           ProjectStatus = "Dev"
	StatusQA            ProjectStatus = "QA"
	StatusLive          ProjectStatus = "Live"
	StatusDelayed       ProjectStatus = "Delayed"
)

// ProjectStatuses lists every status in display order.
var ProjectStatuses = []ProjectStatus{
	StatusBrainstorming,
	StatusDev,
	StatusQA,
	StatusLive,
	StatusDelayed,
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	for _, st := range ProjectStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown project status %q", s)
}

func (s ProjectStatus) Valid() bool {
	_, err := ParseProjectStatus(string(s))
	return err == nil
}

// Active reports whether the project still counts toward the active-project
// metric. Live and Delayed projects do not.
func (s ProjectStatus) Active() bool {
	return s != StatusLive && s != StatusDelayed
}

// MilestoneType enumerates the fixed delivery checkpoints.
type MilestoneType string

const (
	MilestoneDevStart        MilestoneType = "DEV_START"
	MilestoneDevComplete     MilestoneType = "DEV_COMPLETE"
	MilestoneHandoverToQA    MilestoneType = "HANDOVER_TO_QA"
	MilestoneQAEnd           MilestoneType = "QA_END"
	MilestoneStakeholderDemo MilestoneType = "STAKEHOLDER_DEMO"
	MilestoneGoLive          MilestoneType = "GO_LIVE"
)

var MilestoneTypes = []MilestoneType{
	MilestoneDevStart,
	MilestoneDevComplete,
	MilestoneHandoverToQA,
	MilestoneQAEnd,
	MilestoneStakeholderDemo,
	MilestoneGoLive,
}

func ParseMilestoneType(s string) (MilestoneType, error) {
	for _, mt := range MilestoneTypes {
		if string(mt) == s {
			return mt, nil
		}
	}
	return "", fmt.Errorf("unknown milestone type %q", s)
}

func (t MilestoneType) Valid() bool {
	_, err := ParseMilestoneType(string(t))
	return err == nil
}

// Role enumerates staffing roles.
type Role string

const (
	RoleFE      Role = "FE"
	RoleBE      Role = "BE"
	RoleIOS     Role = "iOS"
	RoleAndroid Role = "Android"
	RoleQA      Role = "QA"
)

var Roles = []Role{RoleFE, RoleBE, RoleIOS, RoleAndroid, RoleQA}

func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Phase enumerates which part of a project an assignment covers.
type Phase string

const (
	PhaseDev Phase = "DEV"
	PhaseQA  Phase = "QA"
)

var Phases = []Phase{PhaseDev, PhaseQA}

func ParsePhase(s string) (Phase, error) {
	for _, p := range Phases {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown phase %q", s)
}

func (p Phase) Valid() bool {
	_, err := ParsePhase(string(p))
	return err == nil
}

// Project represents one tracked delivery effort. Dates are stored as
// ISO "2006-01-02" strings, matching the column type in the database.
type Project struct {
	ID            int64
	Name          string
	Product       string
	BusinessOwner string
	ScrumMaster   string
	Platforms     string
	PlannedGoLive string
	Status        ProjectStatus
	DeliveryMonth string
	Notes         string
	CreatedAt     time.Time
}

// Milestone represents a dated checkpoint for a project. RevisedDate and
// DelayReason are nil until a slip is recorded.
type Milestone struct {
	ID          int64
	ProjectID   int64
	Type        MilestoneType
	PlannedDate string
	RevisedDate *string
	DelayReason *string
	CreatedAt   time.Time
}

// Slipped reports whether the revised date lands after the planned one.
// ISO date strings compare correctly as plain strings.
func (m Milestone) Slipped() bool {
	return m.RevisedDate != nil && *m.RevisedDate > m.PlannedDate
}

// Resource represents one person allocated to a project for a phase.
type Resource struct {
	ID            int64
	ProjectID     int64
	PersonName    string
	Role          Role
	Phase         Phase
	AllocationPct int
	EndRule       string
	CreatedAt     time.Time
}

// ResourceWithProject pairs a resource row with its project name for listings.
type ResourceWithProject struct {
	Resource
	ProjectName string
}

// ProjectRef is the id/name pair offered by project selector dropdowns.
type ProjectRef struct {
	ID   int64
	Name string
}

// StatusCount is one bucket of the dashboard's status distribution.
type StatusCount struct {
	Status ProjectStatus
	Count  int
}
