package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/valter-silva-au/todo-cli/internal/storage"
	"pgregory.net/rapid"
)

// Adding K tasks sequentially to an empty store yields K tasks with
// pairwise-distinct ids. Id generation has no collision check, so a
// duplicate here is a real failure worth surfacing, not noise.
func TestSequentialAddsYieldDistinctIDs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 50).Draw(t, "k")

		dir, err := os.MkdirTemp("", "todo-mgr-prop-*")
		if err != nil {
			t.Fatal(err)
		}
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "todo.csv")
		mgr := NewTaskManager(storage.NewTaskStore(path), NewIDGenerator(), nil)

		for i := 0; i < k; i++ {
			if _, err := mgr.AddTask("title", "description"); err != nil {
				t.Fatal(err)
			}
		}

		tasks, err := mgr.ListTasks()
		if err != nil {
			t.Fatal(err)
		}
		if len(tasks) != k {
			t.Fatalf("expected %d tasks, got %d", k, len(tasks))
		}

		seen := make(map[string]bool, k)
		for _, task := range tasks {
			if seen[task.ID] {
				t.Fatalf("id collision on %q after %d adds", task.ID, k)
			}
			seen[task.ID] = true
		}
	})
}
