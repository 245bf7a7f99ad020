// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the todo task store as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/todo-cli/internal/core"
	"github.com/valter-silva-au/todo-cli/pkg/models"
)

// Server wraps the task manager and exposes it as MCP tools.
type Server struct {
	server  *gomcp.Server
	taskMgr core.TaskManager
}

// NewServer creates a new MCP server backed by the given task manager.
func NewServer(taskMgr core.TaskManager, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{taskMgr: taskMgr}
	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "todo", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type addTaskInput struct {
	Title       string `json:"title" jsonschema:"required,the task title"`
	Description string `json:"description" jsonschema:"required,the task description"`
}

type taskOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}

type listTasksInput struct {
	Done *bool `json:"done,omitempty" jsonschema:"filter tasks by done flag; omit for all tasks"`
}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type editTaskInput struct {
	TaskID      string  `json:"task_id" jsonschema:"required,the 8-character task identifier"`
	Title       *string `json:"title,omitempty" jsonschema:"new title; omit to keep the current one"`
	Description *string `json:"description,omitempty" jsonschema:"new description; omit to keep the current one"`
	IsDone      *bool   `json:"is_done,omitempty" jsonschema:"new done flag; omit to keep the current one"`
}

type removeTaskInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the 8-character task identifier"`
}

type messageOutput struct {
	Message string `json:"message"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "add_task",
		Description: "Add a new task with a title and description. Returns the created task including its generated id.",
	}, s.handleAddTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List all tasks, optionally filtered by done flag. Returns tasks in persisted order.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "edit_task",
		Description: "Edit a task by id. Only the provided fields are changed; omitted fields keep their current values.",
	}, s.handleEditTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "remove_task",
		Description: "Remove a task by id.",
	}, s.handleRemoveTask)
}

// --- Tool handlers ---

func (s *Server) handleAddTask(_ context.Context, _ *gomcp.CallToolRequest, input addTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.Title == "" {
		return errorResult("title is required"), taskOutput{}, nil
	}
	if input.Description == "" {
		return errorResult("description is required"), taskOutput{}, nil
	}

	task, err := s.taskMgr.AddTask(input.Title, input.Description)
	if err != nil {
		return errorResult(fmt.Sprintf("adding task: %s", err)), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	tasks, err := s.taskMgr.ListTasks()
	if err != nil {
		return errorResult(fmt.Sprintf("listing tasks: %s", err)), listTasksOutput{}, nil
	}

	out := listTasksOutput{Tasks: []taskOutput{}}
	for i := range tasks {
		if input.Done != nil && tasks[i].IsDone != *input.Done {
			continue
		}
		out.Tasks = append(out.Tasks, taskToOutput(&tasks[i]))
	}
	out.Count = len(out.Tasks)
	return nil, out, nil
}

func (s *Server) handleEditTask(_ context.Context, _ *gomcp.CallToolRequest, input editTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), taskOutput{}, nil
	}

	updates := models.TaskUpdate{
		Title:       input.Title,
		Description: input.Description,
		IsDone:      input.IsDone,
	}
	task, err := s.taskMgr.EditTask(input.TaskID, updates)
	if err != nil {
		return errorResult(fmt.Sprintf("editing task %s: %s", input.TaskID, err)), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleRemoveTask(_ context.Context, _ *gomcp.CallToolRequest, input removeTaskInput) (*gomcp.CallToolResult, messageOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), messageOutput{}, nil
	}

	if err := s.taskMgr.RemoveTask(input.TaskID); err != nil {
		return errorResult(fmt.Sprintf("removing task %s: %s", input.TaskID, err)), messageOutput{}, nil
	}
	return nil, messageOutput{Message: fmt.Sprintf("task %s removed", input.TaskID)}, nil
}

// --- Helpers ---

func taskToOutput(t *models.Task) taskOutput {
	return taskOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsDone:      t.IsDone,
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		IsError: true,
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
	}
}
