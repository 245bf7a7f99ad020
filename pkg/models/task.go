package models

// Task represents a single to-do item identified by a unique 8-character
// alphanumeric ID. The ID is assigned on creation and never changes.
type Task struct {
	ID          string
	Title       string
	Description string
	IsDone      bool
}

// TaskUpdate carries a partial update for a task. Nil fields are left
// unchanged by the store.
type TaskUpdate struct {
	Title       *string
	Description *string
	IsDone      *bool
}

// IsEmpty reports whether the update carries no field changes.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.IsDone == nil
}
