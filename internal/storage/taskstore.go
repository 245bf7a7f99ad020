// Package storage owns the persisted task collection: the file-backed
// TaskStore, the CSV codec for the backing file, and the sentinel error
// kinds the rest of the system matches on.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/todo-cli/pkg/models"
)

// TaskStore defines the interface for the in-memory task collection
// synchronized with a single backing file.
type TaskStore interface {
	Load() error
	Save() error
	Add(task models.Task)
	Update(id string, updates models.TaskUpdate) (*models.Task, error)
	Remove(id string) error
	Get(id string) (*models.Task, error)
	All() []models.Task
}

// fileTaskStore implements TaskStore against a CSV file at path. The path
// is injected at construction; the store never consults global state.
type fileTaskStore struct {
	path  string
	tasks []models.Task
}

// NewTaskStore creates a TaskStore backed by the file at path. The file is
// not touched until Load or Save is called.
func NewTaskStore(path string) TaskStore {
	return &fileTaskStore{path: path}
}

// Load reads the backing file into the in-memory collection, replacing any
// previously loaded tasks. A missing file yields an empty collection.
func (s *fileTaskStore) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.tasks = nil
			return nil
		}
		return fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	tasks, err := DecodeTasks(f)
	if err != nil {
		return fmt.Errorf("loading %s: %w", s.path, err)
	}
	s.tasks = tasks
	return nil
}

// Save rewrites the backing file with the full in-memory collection.
// Missing parent directories are created. The write goes to a temp file in
// the same directory which is then renamed over the target, so a reader
// never observes a truncated or partially written file.
func (s *fileTaskStore) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".todo-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := EncodeTasks(tmp, s.tasks); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Add appends a task to the in-memory collection. Uniqueness of the id is
// the caller's concern; the store preserves insertion order.
func (s *fileTaskStore) Add(task models.Task) {
	s.tasks = append(s.tasks, task)
}

// Update overwrites the fields carried by updates on the task with the
// given id, leaving nil fields untouched, and returns the updated task.
// Returns ErrNotFound if no task matches.
func (s *fileTaskStore) Update(id string, updates models.TaskUpdate) (*models.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if updates.Title != nil {
			s.tasks[i].Title = *updates.Title
		}
		if updates.Description != nil {
			s.tasks[i].Description = *updates.Description
		}
		if updates.IsDone != nil {
			s.tasks[i].IsDone = *updates.IsDone
		}
		task := s.tasks[i]
		return &task, nil
	}
	return nil, fmt.Errorf("updating task %s: %w", id, ErrNotFound)
}

// Remove filters out the task with the given id. The collection shrinks by
// exactly one on success; ErrNotFound otherwise.
func (s *fileTaskStore) Remove(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("removing task %s: %w", id, ErrNotFound)
}

// Get returns a copy of the task with the given id, or ErrNotFound.
func (s *fileTaskStore) Get(id string) (*models.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			task := s.tasks[i]
			return &task, nil
		}
	}
	return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
}

// All returns the loaded collection in file order.
func (s *fileTaskStore) All() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}
