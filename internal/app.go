// Package internal provides the App struct that wires all components of
// the todo CLI together and initializes the command layer.
package internal

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/valter-silva-au/todo-cli/internal/cli"
	"github.com/valter-silva-au/todo-cli/internal/core"
	"github.com/valter-silva-au/todo-cli/internal/observability"
	"github.com/valter-silva-au/todo-cli/internal/storage"
	"github.com/valter-silva-au/todo-cli/pkg/models"
)

// eventLogName is the JSONL event log file kept next to the backing file.
const eventLogName = ".todo_events.jsonl"

// App holds all service dependencies for the todo CLI.
type App struct {
	TodoFile string
	Cfg      *models.Config

	ConfigMgr core.ConfigurationManager

	Store    storage.TaskStore
	IDGen    core.IDGenerator
	TaskMgr  core.TaskManager
	EventLog observability.EventLog
}

// NewApp creates and wires all components. The backing file path comes
// from the loaded configuration; cli.Reinit allows the command layer to
// rewire for a different path (--file flag).
func NewApp() (*App, error) {
	app := &App{}

	app.ConfigMgr = core.NewConfigurationManager()
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	app.Cfg = cfg
	app.IDGen = core.NewIDGenerator()

	app.wireFile(cfg.TodoFile)

	cli.Cfg = cfg
	cli.ConfigMgr = app.ConfigMgr
	cli.Reinit = app.wireFile

	return app, nil
}

// wireFile builds the storage and observability services for the given
// backing file path and publishes them to the cli package.
func (a *App) wireFile(path string) {
	a.TodoFile = path
	a.Store = storage.NewTaskStore(path)

	if a.EventLog != nil {
		_ = a.EventLog.Close()
	}
	eventLogPath := filepath.Join(filepath.Dir(path), eventLogName)
	a.EventLog, _ = observability.NewJSONLEventLog(eventLogPath)
	// A nil EventLog disables history; mutations still work.

	var events core.EventLogger
	if a.EventLog != nil {
		events = &eventLogAdapter{log: a.EventLog}
	}
	a.TaskMgr = core.NewTaskManager(a.Store, a.IDGen, events)

	cli.TodoFile = a.TodoFile
	cli.TaskMgr = a.TaskMgr
	cli.EventLog = a.EventLog
}

// Close releases resources held by the App. Safe to call with a nil
// EventLog.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time: time.Now().UTC(),
		Type: eventType,
		Data: data,
	})
}
