// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/tasklist/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockSlot is an in-memory domain.Slot.
// Fields are ordered to minimize memory padding.
type MockSlot struct {
	Values     map[string]string
	ReadErr    error
	WriteErr   error
	WriteCount int
}

// NewMockSlot creates a new MockSlot with an initialized map.
func NewMockSlot() *MockSlot {
	return &MockSlot{Values: make(map[string]string)}
}

// Read returns the stored value.
func (m *MockSlot) Read(key string) (string, bool, error) {
	if m.ReadErr != nil {
		return "", false, m.ReadErr
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// Write stores the value.
func (m *MockSlot) Write(key, value string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Values[key] = value
	m.WriteCount++
	return nil
}

// MockTaskListStore is a test double for domain.TaskListStore.
// Saved holds a copy of the last successfully saved list.
// Fields are ordered to minimize memory padding.
type MockTaskListStore struct {
	Initial   *domain.TaskList
	Saved     *domain.TaskList
	SaveErr   error
	SaveCount int
}

// NewMockTaskListStore creates a store whose Load returns initial (or an empty list).
func NewMockTaskListStore(initial *domain.TaskList) *MockTaskListStore {
	if initial == nil {
		initial = domain.NewTaskList()
	}
	return &MockTaskListStore{Initial: initial}
}

// Load returns a copy of the most recent saved list, or the initial list.
func (m *MockTaskListStore) Load() *domain.TaskList {
	if m.Saved != nil {
		return m.Saved.Clone()
	}
	return m.Initial.Clone()
}

// Save records a copy of the list.
func (m *MockTaskListStore) Save(list *domain.TaskList) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = list.Clone()
	m.SaveCount++
	return nil
}

// MockLogger records log lines as "LEVEL [category] msg".
type MockLogger struct {
	Lines []string
	mu    sync.Mutex
}

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Lines = append(m.Lines, fmt.Sprintf("%s [%s] %s", level, category, msg))
}

// Debug records a debug line.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info line.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning line.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error line.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// Has reports whether a line at level contains substr.
func (m *MockLogger) Has(level, substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, line := range m.Lines {
		if strings.HasPrefix(line, level+" ") && strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// MockClipboard is a test double for domain.Clipboard.
type MockClipboard struct {
	Err  error
	Text string
}

// WriteAll stores the text.
func (m *MockClipboard) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}

// MockDraftParser is a test double for domain.DraftParser.
type MockDraftParser struct {
	Err    error
	Drafts []domain.TaskDraft
}

// Parse returns the configured drafts.
func (m *MockDraftParser) Parse(_ string) ([]domain.TaskDraft, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Drafts, nil
}

// Ensure mocks implement their ports.
var (
	_ domain.Clock         = (*MockClock)(nil)
	_ domain.Slot          = (*MockSlot)(nil)
	_ domain.TaskListStore = (*MockTaskListStore)(nil)
	_ domain.Logger        = (*MockLogger)(nil)
	_ domain.Clipboard     = (*MockClipboard)(nil)
	_ domain.DraftParser   = (*MockDraftParser)(nil)
)

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr           error
	InitConfig        *domain.Config
	GlobalConfigInfo  domain.ConfigInfo
	ProjectConfigInfo domain.ConfigInfo
	InitForce         bool
	InitCalled        bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// GetProjectConfigInfo returns the configured project info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// InitProjectConfig records the call.
func (m *MockConfigManager) InitProjectConfig(cfg *domain.Config, force bool) (string, error) {
	m.InitCalled = true
	m.InitConfig = cfg
	m.InitForce = force
	if m.InitErr != nil {
		return "", m.InitErr
	}
	return m.ProjectConfigInfo.Path, nil
}

var (
	_ domain.ConfigLoader  = (*MockConfigLoader)(nil)
	_ domain.ConfigManager = (*MockConfigManager)(nil)
)
