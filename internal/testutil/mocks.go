// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/quadrant/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// StoreCall records one request made to a mock store.
// Fields are ordered to minimize memory padding.
type StoreCall struct {
	Key     domain.AddressingKey
	Value   any
	Method  string // Fetch, Create, Update, Delete, Reorder, AddGoal, SetGoal, DeleteGoal, Report
	TaskID  string
	Action  domain.Action
	Text    string // Goal description or task title
	Order   []string
	Index   int
	Checked bool
}

// String renders the call compactly for assertion messages.
func (c StoreCall) String() string {
	key := "<nil>"
	if c.Key != nil {
		key = c.Key.String()
	}
	return fmt.Sprintf("%s(%s %s %s)", c.Method, key, c.TaskID, c.Action)
}

// MockTaskStore is a test double for domain.TaskStore and domain.GoalStore.
// Every request is recorded in Calls, in order.
// Fields are ordered to minimize memory padding.
type MockTaskStore struct {
	Snapshots  map[string]*domain.Snapshot // Keyed by AddressingKey.String()
	FetchErr   error
	CreateErr  error
	UpdateErr  error
	DeleteErr  error
	ReorderErr error
	GoalErr    error
	Calls      []StoreCall
	mu         sync.Mutex
}

var (
	_ domain.TaskStore = (*MockTaskStore)(nil)
	_ domain.GoalStore = (*MockTaskStore)(nil)
)

// NewMockTaskStore creates a new MockTaskStore with the given snapshots.
func NewMockTaskStore(snapshots ...*domain.Snapshot) *MockTaskStore {
	m := &MockTaskStore{Snapshots: make(map[string]*domain.Snapshot)}
	for _, s := range snapshots {
		m.Snapshots[s.Period.String()] = s
	}
	return m
}

func (m *MockTaskStore) record(c StoreCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, c)
}

// Methods returns the recorded method names in order.
func (m *MockTaskStore) Methods() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Method
	}
	return out
}

// CallsTo returns the recorded calls of one method.
func (m *MockTaskStore) CallsTo(method string) []StoreCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []StoreCall
	for _, c := range m.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Fetch returns a copy of the snapshot stored for key, or an empty one.
func (m *MockTaskStore) Fetch(_ context.Context, key domain.AddressingKey) (*domain.Snapshot, error) {
	m.record(StoreCall{Method: "Fetch", Key: key})
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Snapshots[key.String()]
	if !ok {
		return &domain.Snapshot{Period: key}, nil
	}
	out := &domain.Snapshot{Period: key, Goals: append([]domain.Goal(nil), s.Goals...)}
	for _, t := range s.Tasks {
		out.Tasks = append(out.Tasks, t.Clone())
	}
	for _, t := range s.Carryover {
		out.Carryover = append(out.Carryover, t.Clone())
	}
	return out, nil
}

// Create records the draft.
func (m *MockTaskStore) Create(_ context.Context, key domain.AddressingKey, draft domain.TaskDraft) error {
	m.record(StoreCall{Method: "Create", Key: key, Text: draft.Title, Value: draft})
	return m.CreateErr
}

// Update records the mutation.
func (m *MockTaskStore) Update(_ context.Context, key domain.AddressingKey, taskID string, update domain.TaskUpdate) error {
	m.record(StoreCall{Method: "Update", Key: key, TaskID: taskID, Action: update.Action, Value: update.Value})
	return m.UpdateErr
}

// Delete records the deletion.
func (m *MockTaskStore) Delete(_ context.Context, key domain.AddressingKey, taskID string) error {
	m.record(StoreCall{Method: "Delete", Key: key, TaskID: taskID, Action: domain.ActionDelete})
	return m.DeleteErr
}

// Reorder records the order.
func (m *MockTaskStore) Reorder(_ context.Context, key domain.AddressingKey, order []string) error {
	m.record(StoreCall{Method: "Reorder", Key: key, Order: append([]string(nil), order...)})
	return m.ReorderErr
}

// AddGoal records the goal.
func (m *MockTaskStore) AddGoal(_ context.Context, week domain.YearWeekKey, description string) error {
	m.record(StoreCall{Method: "AddGoal", Key: week, Text: description})
	return m.GoalErr
}

// SetGoal records the toggle.
func (m *MockTaskStore) SetGoal(_ context.Context, week domain.YearWeekKey, index int, completed bool) error {
	m.record(StoreCall{Method: "SetGoal", Key: week, Index: index, Checked: completed})
	return m.GoalErr
}

// DeleteGoal records the deletion.
func (m *MockTaskStore) DeleteGoal(_ context.Context, week domain.YearWeekKey, index int) error {
	m.record(StoreCall{Method: "DeleteGoal", Key: week, Index: index})
	return m.GoalErr
}

// MockReportSource is a test double for domain.ReportSource.
type MockReportSource struct {
	Err      error
	Content  string
	Requests []domain.ReportRequest
}

// Report records the request and returns Content.
func (m *MockReportSource) Report(_ context.Context, req domain.ReportRequest) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Content, nil
}

// LogEntry is one recorded log line.
type LogEntry struct {
	Level    string
	TaskID   string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, taskID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(taskID, category, msg string) { m.add("INFO", taskID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID, category, msg string) { m.add("DEBUG", taskID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID, category, msg string) { m.add("WARN", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID, category, msg string) { m.add("ERROR", taskID, category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config    *domain.Config
	LoadErr   error
	GlobalErr error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	ProjectConfigInfo domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	InitProjectCalled bool
	InitGlobalCalled  bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		ProjectConfigInfo: domain.ConfigInfo{
			Path:   "/work/.quadrant.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/quadrant/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitProjectConfig records the call and returns configured error.
func (m *MockConfigManager) InitProjectConfig(_ *domain.Config) error {
	m.InitProjectCalled = true
	return m.InitProjectErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}
