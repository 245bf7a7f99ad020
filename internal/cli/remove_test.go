package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/valter-silva-au/todo-cli/internal/storage"
)

func TestRemoveCommand_Success(t *testing.T) {
	origTaskMgr := TaskMgr
	defer func() { TaskMgr = origTaskMgr }()

	var gotID string
	TaskMgr = &taskMgrMock{
		removeTaskFn: func(id string) error {
			gotID = id
			return nil
		},
	}

	if err := removeCmd.RunE(removeCmd, []string{"aaaaaaaa"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "aaaaaaaa" {
		t.Fatalf("expected id forwarded, got %q", gotID)
	}
}

func TestRemoveCommand_NotFoundSurfaced(t *testing.T) {
	origTaskMgr := TaskMgr
	defer func() { TaskMgr = origTaskMgr }()

	TaskMgr = &taskMgrMock{
		removeTaskFn: func(id string) error {
			return fmt.Errorf("removing task %s: %w", id, storage.ErrNotFound)
		},
	}

	err := removeCmd.RunE(removeCmd, []string{"missing0"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound to propagate, got %v", err)
	}
}

func TestRemoveCommand_NilTaskManager(t *testing.T) {
	origTaskMgr := TaskMgr
	defer func() { TaskMgr = origTaskMgr }()
	TaskMgr = nil

	if err := removeCmd.RunE(removeCmd, []string{"aaaaaaaa"}); err == nil {
		t.Fatal("expected error when TaskMgr is nil")
	}
}
