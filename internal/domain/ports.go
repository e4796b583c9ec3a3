package domain

import (
	"context"
	"time"
)

// TaskStore is the remote task store, addressed by period.
// The endpoint kind (daily or weekly) follows the key's Kind.
type TaskStore interface {
	// Fetch returns the authoritative snapshot of a period.
	Fetch(ctx context.Context, key AddressingKey) (*Snapshot, error)

	// Create adds a new task to a period.
	Create(ctx context.Context, key AddressingKey, draft TaskDraft) error

	// Update applies a non-delete action to a task.
	Update(ctx context.Context, key AddressingKey, taskID string, update TaskUpdate) error

	// Delete removes a task.
	Delete(ctx context.Context, key AddressingKey, taskID string) error

	// Reorder sets the order of the period's native tasks.
	// IDs missing from order keep their relative order after the listed ones.
	Reorder(ctx context.Context, key AddressingKey, order []string) error
}

// GoalStore manages the goal list of a week. Goals are addressed by index.
type GoalStore interface {
	// AddGoal appends a goal.
	AddGoal(ctx context.Context, week YearWeekKey, description string) error

	// SetGoal marks a goal completed or not.
	SetGoal(ctx context.Context, week YearWeekKey, index int, completed bool) error

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, week YearWeekKey, index int) error
}

// ReportSource generates Markdown reports.
type ReportSource interface {
	// Report returns the Markdown content of a report.
	Report(ctx context.Context, req ReportRequest) (string, error)
}

// TaskUpdate is the body of a task mutation.
type TaskUpdate struct {
	Value  any // int for progress, string for note and priority, nil otherwise
	Action Action
}

// Logger is the logging port. taskID scopes an entry to a task; an empty
// taskID writes a global entry.
type Logger interface {
	Info(taskID, category, msg string)
	Debug(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}

// NopLogger discards every entry.
type NopLogger struct{}

func (NopLogger) Info(string, string, string)  {}
func (NopLogger) Debug(string, string, string) {}
func (NopLogger) Warn(string, string, string)  {}
func (NopLogger) Error(string, string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (project + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string // Absolute path of the file
	Content string // File content, empty if missing
	Exists  bool   // Whether the file exists
}

// ConfigManager inspects and creates config files.
type ConfigManager interface {
	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitProjectConfig writes the config template to the project config path.
	InitProjectConfig(cfg *Config) error

	// InitGlobalConfig writes the config template to the global config path.
	InitGlobalConfig(cfg *Config) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
