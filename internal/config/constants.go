package config

// Application settings.
const (
	AppName    = "prt"
	DBFileName = "tracker.db"
)

// Dashboard limits.
const (
	// RecentProjectsLimit caps the recent-projects list on the dashboard.
	RecentProjectsLimit = 10

	// MaxChartWidth caps the status distribution bars.
	MaxChartWidth = 40
)

// Form constraints.
const (
	// MonthOptionCount covers the current month plus a rolling year.
	MonthOptionCount = 13

	// MaxFieldLength is the maximum length of a free-text form field.
	MaxFieldLength = 120

	// MaxNotesLength is the maximum length of the notes field.
	MaxNotesLength = 500

	// DefaultAllocationPct pre-fills the allocation input.
	DefaultAllocationPct = 100

	// DefaultEndRule is the only end rule the tracker currently supports.
	DefaultEndRule = "Till Go-Live"
)

// Layout constants.
const (

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 70

	// MaxVisibleRows limits listing rows shown before scrolling.
	MaxVisibleRows = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
