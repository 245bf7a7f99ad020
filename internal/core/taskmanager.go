// Package core contains the business logic for the todo CLI: the task
// manager coordinating the store, id generation, and configuration.
package core

import (
	"fmt"

	"github.com/valter-silva-au/todo-cli/pkg/models"
)

// TaskStore is the subset of storage.TaskStore that TaskManager needs.
// Defining it here keeps core independent of the storage package.
type TaskStore interface {
	Load() error
	Save() error
	Add(task models.Task)
	Update(id string, updates models.TaskUpdate) (*models.Task, error)
	Remove(id string) error
	Get(id string) (*models.Task, error)
	All() []models.Task
}

// EventLogger records mutation events. Implementations must tolerate being
// called for every successful mutation; failures are ignored by the manager.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// TaskManager defines the interface for task lifecycle operations. Every
// mutating operation performs a full load-mutate-save cycle so the backing
// file and the in-memory view never diverge.
type TaskManager interface {
	AddTask(title, description string) (*models.Task, error)
	EditTask(id string, updates models.TaskUpdate) (*models.Task, error)
	RemoveTask(id string) error
	ToggleDone(id string) (*models.Task, error)
	ListTasks() ([]models.Task, error)
}

// taskManager implements TaskManager by coordinating the TaskStore and
// IDGenerator.
type taskManager struct {
	store  TaskStore
	idGen  IDGenerator
	events EventLogger
}

// NewTaskManager creates a TaskManager with all dependencies injected.
// events may be nil if event logging is disabled.
func NewTaskManager(store TaskStore, idGen IDGenerator, events EventLogger) TaskManager {
	return &taskManager{
		store:  store,
		idGen:  idGen,
		events: events,
	}
}

// AddTask generates a fresh id, appends a new pending task, and persists
// the full collection.
func (tm *taskManager) AddTask(title, description string) (*models.Task, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("adding task: %w", err)
	}

	task := models.Task{
		ID:          tm.idGen.GenerateID(),
		Title:       title,
		Description: description,
		IsDone:      false,
	}
	tm.store.Add(task)

	if err := tm.store.Save(); err != nil {
		return nil, fmt.Errorf("adding task: %w", err)
	}

	tm.logEvent("task.added", map[string]any{"id": task.ID, "title": task.Title})
	return &task, nil
}

// EditTask overrides the provided fields on the task with the given id,
// leaving unspecified fields untouched. The collection is persisted only
// when a match was found.
func (tm *taskManager) EditTask(id string, updates models.TaskUpdate) (*models.Task, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("editing task: %w", err)
	}

	task, err := tm.store.Update(id, updates)
	if err != nil {
		return nil, fmt.Errorf("editing task: %w", err)
	}

	if err := tm.store.Save(); err != nil {
		return nil, fmt.Errorf("editing task: %w", err)
	}

	tm.logEvent("task.edited", map[string]any{"id": id})
	return task, nil
}

// RemoveTask filters out the task with the given id and persists the
// shrunken collection.
func (tm *taskManager) RemoveTask(id string) error {
	if err := tm.store.Load(); err != nil {
		return fmt.Errorf("removing task: %w", err)
	}

	if err := tm.store.Remove(id); err != nil {
		return fmt.Errorf("removing task: %w", err)
	}

	if err := tm.store.Save(); err != nil {
		return fmt.Errorf("removing task: %w", err)
	}

	tm.logEvent("task.removed", map[string]any{"id": id})
	return nil
}

// ToggleDone flips the done flag on the task with the given id.
func (tm *taskManager) ToggleDone(id string) (*models.Task, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("toggling task: %w", err)
	}

	current, err := tm.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("toggling task: %w", err)
	}
	flipped := !current.IsDone
	task, err := tm.store.Update(id, models.TaskUpdate{IsDone: &flipped})
	if err != nil {
		return nil, fmt.Errorf("toggling task: %w", err)
	}

	if err := tm.store.Save(); err != nil {
		return nil, fmt.Errorf("toggling task: %w", err)
	}

	tm.logEvent("task.toggled", map[string]any{"id": id, "is_done": flipped})
	return task, nil
}

// ListTasks loads and returns the collection in file order. The backing
// file is not rewritten.
func (tm *taskManager) ListTasks() ([]models.Task, error) {
	if err := tm.store.Load(); err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tm.store.All(), nil
}

// logEvent records a mutation event. Event logging is best-effort and never
// fails the operation.
func (tm *taskManager) logEvent(eventType string, data map[string]any) {
	if tm.events == nil {
		return
	}
	_ = tm.events.LogEvent(eventType, data)
}
