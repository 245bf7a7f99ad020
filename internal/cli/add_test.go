package cli

import (
	"strings"
	"testing"

	"github.com/valter-silva-au/todo-cli/pkg/models"
)

func TestAddCommand_Registration(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "add" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected 'add' command to be registered")
	}
}

func TestAddCommand_NilTaskManager(t *testing.T) {
	origTaskMgr := TaskMgr
	defer func() { TaskMgr = origTaskMgr }()
	TaskMgr = nil

	err := addCmd.RunE(addCmd, nil)
	if err == nil {
		t.Fatal("expected error when TaskMgr is nil")
	}
	if !strings.Contains(err.Error(), "task manager not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAddCommand_PassesFlags(t *testing.T) {
	origTaskMgr := TaskMgr
	origTitle := addTitleFlag
	origDesc := addDescriptionFlag
	defer func() {
		TaskMgr = origTaskMgr
		addTitleFlag = origTitle
		addDescriptionFlag = origDesc
	}()

	var gotTitle, gotDesc string
	TaskMgr = &taskMgrMock{
		addTaskFn: func(title, description string) (*models.Task, error) {
			gotTitle = title
			gotDesc = description
			return &models.Task{ID: "mockid00", Title: title, Description: description}, nil
		},
	}
	addTitleFlag = "Buy milk"
	addDescriptionFlag = "Two liters"

	if err := addCmd.RunE(addCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTitle != "Buy milk" || gotDesc != "Two liters" {
		t.Fatalf("flags not passed through: %q, %q", gotTitle, gotDesc)
	}
}
