package cli

import (
	"github.com/valter-silva-au/todo-cli/internal/core"
	"github.com/valter-silva-au/todo-cli/internal/observability"
	"github.com/valter-silva-au/todo-cli/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	// TaskMgr is the task manager all commands operate through.
	TaskMgr core.TaskManager

	// EventLog backs the history command. Nil when event logging is
	// disabled (e.g. the log file could not be opened).
	EventLog observability.EventLog

	// Cfg is the effective configuration.
	Cfg *models.Config

	// TodoFile is the resolved backing file path.
	TodoFile string

	// ConfigMgr handles .todorc reading and writing.
	ConfigMgr core.ConfigurationManager

	// Reinit rewires the services for a different backing file. Set by
	// app.go; used when --file overrides the configured path.
	Reinit func(path string)
)
