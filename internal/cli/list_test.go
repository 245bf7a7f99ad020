package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/valter-silva-au/todo-cli/pkg/models"
)

func testMarkers() models.MarkerConfig {
	return models.MarkerConfig{Done: "〇", Pending: "×"}
}

func TestRenderTaskTable_Headers(t *testing.T) {
	out := renderTaskTable(nil, testMarkers())

	for _, h := range []string{"id", "title", "description", "done"} {
		if !strings.Contains(out, h) {
			t.Errorf("expected header %q in output:\n%s", h, out)
		}
	}
}

func TestRenderTaskTable_Markers(t *testing.T) {
	tasks := []models.Task{
		{ID: "aaaaaaaa", Title: "pending one", Description: "d"},
		{ID: "bbbbbbbb", Title: "done one", Description: "d", IsDone: true},
	}

	out := renderTaskTable(tasks, testMarkers())
	if !strings.Contains(out, "×") {
		t.Errorf("expected pending marker in output:\n%s", out)
	}
	if !strings.Contains(out, "〇") {
		t.Errorf("expected done marker in output:\n%s", out)
	}
	if !strings.Contains(out, "aaaaaaaa") || !strings.Contains(out, "bbbbbbbb") {
		t.Errorf("expected task ids in output:\n%s", out)
	}
}

func TestRenderTaskTable_CustomMarkers(t *testing.T) {
	tasks := []models.Task{{ID: "aaaaaaaa", Title: "t", Description: "d", IsDone: true}}
	out := renderTaskTable(tasks, models.MarkerConfig{Done: "++", Pending: "--"})
	if !strings.Contains(out, "++") {
		t.Errorf("expected custom done marker in output:\n%s", out)
	}
}

func TestListCommand_ErrorSuppressesTable(t *testing.T) {
	origTaskMgr := TaskMgr
	defer func() { TaskMgr = origTaskMgr }()

	TaskMgr = &taskMgrMock{
		listTasksFn: func() ([]models.Task, error) {
			return nil, errors.New("boom")
		},
	}

	err := listCmd.RunE(listCmd, nil)
	if err == nil {
		t.Fatal("expected load error to propagate")
	}
}

func TestListMarkers_Fallback(t *testing.T) {
	origCfg := Cfg
	defer func() { Cfg = origCfg }()
	Cfg = nil

	m := listMarkers()
	if m.Done == "" || m.Pending == "" {
		t.Fatalf("expected default markers, got %+v", m)
	}
}
