package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/todo-cli/pkg/models"
)

// TUI styles.
var (
	uiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	uiCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	uiDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	uiHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	uiErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

type uiModel struct {
	tasks   []models.Task
	cursor  int
	markers models.MarkerConfig
	err     error
}

// tasksLoadedMsg carries a reloaded task collection back to the model.
type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

func newUIModel() uiModel {
	return uiModel{markers: listMarkers()}
}

func loadTasks() tea.Msg {
	tasks, err := TaskMgr.ListTasks()
	return tasksLoadedMsg{tasks: tasks, err: err}
}

func (m uiModel) Init() tea.Cmd {
	return loadTasks
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			return m, nil
		case " ", "enter":
			if len(m.tasks) == 0 {
				return m, nil
			}
			id := m.tasks[m.cursor].ID
			return m, func() tea.Msg {
				if _, err := TaskMgr.ToggleDone(id); err != nil {
					return tasksLoadedMsg{err: err}
				}
				return loadTasks()
			}
		case "r":
			return m, loadTasks
		}

	case tasksLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) && len(m.tasks) > 0 {
			m.cursor = len(m.tasks) - 1
		}
		return m, nil
	}

	return m, nil
}

func (m uiModel) View() string {
	s := uiTitleStyle.Render("todo") + "\n\n"

	if m.err != nil {
		s += uiErrStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}

	if len(m.tasks) == 0 {
		s += "No tasks.\n"
	}

	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = uiCursorStyle.Render("> ")
		}

		mark := m.markers.Pending
		line := fmt.Sprintf("%s  %s: %s", t.ID, t.Title, t.Description)
		if t.IsDone {
			mark = m.markers.Done
			line = uiDoneStyle.Render(line)
		}
		s += fmt.Sprintf("%s%s %s\n", cursor, mark, line)
	}

	s += "\n" + uiHelpStyle.Render("space/enter: toggle done • j/k: move • r: reload • q: quit") + "\n"
	return s
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse tasks interactively",
	Long: `Open an interactive task browser.

Navigate with j/k or the arrow keys, toggle the done flag with space or
enter, and quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		p := tea.NewProgram(newUIModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running task browser: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
