package cli

import "github.com/valter-silva-au/todo-cli/pkg/models"

// taskMgrMock implements core.TaskManager with overridable functions.
type taskMgrMock struct {
	addTaskFn    func(title, description string) (*models.Task, error)
	editTaskFn   func(id string, updates models.TaskUpdate) (*models.Task, error)
	removeTaskFn func(id string) error
	toggleDoneFn func(id string) (*models.Task, error)
	listTasksFn  func() ([]models.Task, error)
}

func (m *taskMgrMock) AddTask(title, description string) (*models.Task, error) {
	if m.addTaskFn != nil {
		return m.addTaskFn(title, description)
	}
	return &models.Task{ID: "mockid00", Title: title, Description: description}, nil
}

func (m *taskMgrMock) EditTask(id string, updates models.TaskUpdate) (*models.Task, error) {
	if m.editTaskFn != nil {
		return m.editTaskFn(id, updates)
	}
	return &models.Task{ID: id}, nil
}

func (m *taskMgrMock) RemoveTask(id string) error {
	if m.removeTaskFn != nil {
		return m.removeTaskFn(id)
	}
	return nil
}

func (m *taskMgrMock) ToggleDone(id string) (*models.Task, error) {
	if m.toggleDoneFn != nil {
		return m.toggleDoneFn(id)
	}
	return &models.Task{ID: id, IsDone: true}, nil
}

func (m *taskMgrMock) ListTasks() ([]models.Task, error) {
	if m.listTasksFn != nil {
		return m.listTasksFn()
	}
	return nil, nil
}
