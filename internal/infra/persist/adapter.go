// Package persist saves and loads the task list through a durable slot.
package persist

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/runoshun/tasklist/internal/domain"
)

// Adapter implements domain.TaskListStore over a domain.Slot.
// The slot value is a JSON array of tasks in store order.
type Adapter struct {
	slot   domain.Slot
	logger domain.Logger
	key    string
}

// New creates an Adapter that stores the list under domain.StorageKey.
func New(slot domain.Slot, logger domain.Logger) *Adapter {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Adapter{
		slot:   slot,
		logger: logger,
		key:    domain.StorageKey,
	}
}

// Load returns the saved list. It fails soft: an absent, unreadable or corrupt
// slot yields an empty list and a log line.
func (a *Adapter) Load() *domain.TaskList {
	list := domain.NewTaskList()

	raw, found, err := a.slot.Read(a.key)
	if err != nil {
		a.logger.Error("storage", fmt.Sprintf("read slot %q: %v", a.key, err))
		return list
	}
	if !found || strings.TrimSpace(raw) == "" {
		return list
	}

	records, err := decode(raw)
	if err != nil {
		a.logger.Warn("storage", fmt.Sprintf("%v; starting with an empty list", err))
		return list
	}

	kept := records[:0]
	for _, r := range records {
		if strings.TrimSpace(r.Text) == "" {
			a.logger.Warn("storage", fmt.Sprintf("dropping stored task #%d with empty text", r.ID))
			continue
		}
		kept = append(kept, r)
	}

	list.Restore(kept)
	a.logger.Debug("storage", fmt.Sprintf("loaded %d tasks", list.Len()))
	return list
}

// Save serializes the full list into the slot, overwriting any prior value.
func (a *Adapter) Save(list *domain.TaskList) error {
	tasks := list.Tasks()
	content, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := a.slot.Write(a.key, string(content)); err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	a.logger.Debug("storage", fmt.Sprintf("saved %d tasks", len(tasks)))
	return nil
}

func decode(raw string) ([]domain.Task, error) {
	var records []domain.Task
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageParse, err)
	}
	return records, nil
}

// Ensure Adapter implements TaskListStore.
var _ domain.TaskListStore = (*Adapter)(nil)
