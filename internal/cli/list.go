package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/todo-cli/internal/core"
	"github.com/valter-silva-au/todo-cli/pkg/models"
)

// Table styles.
var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	idCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	doneMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	pendingMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show todo tasks",
	Long:  `Show all tasks as a table with columns id, title, description, and done.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		tasks, err := TaskMgr.ListTasks()
		if err != nil {
			return err
		}

		fmt.Print(renderTaskTable(tasks, listMarkers()))
		return nil
	},
}

// listMarkers returns the configured done-column glyphs, falling back to
// the defaults when no configuration was loaded.
func listMarkers() models.MarkerConfig {
	if Cfg != nil && Cfg.Markers.Done != "" && Cfg.Markers.Pending != "" {
		return Cfg.Markers
	}
	return models.MarkerConfig{
		Done:    core.DefaultDoneMarker,
		Pending: core.DefaultPendingMarker,
	}
}

// renderTaskTable renders the collection as an aligned table. Column widths
// are computed from content display width; the done column shows the
// two-glyph markers instead of the raw boolean.
func renderTaskTable(tasks []models.Task, markers models.MarkerConfig) string {
	headers := []string{"id", "title", "description", "done"}

	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		mark := markers.Pending
		if t.IsDone {
			mark = markers.Done
		}
		rows[i] = []string{t.ID, t.Title, t.Description, mark}
	}

	widths := make([]int, len(headers))
	for c, h := range headers {
		widths[c] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for c, cell := range row {
			if w := lipgloss.Width(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(col int, cell string) string) {
		for c, cell := range cells {
			pad := strings.Repeat(" ", widths[c]-lipgloss.Width(cell))
			b.WriteString(style(c, cell))
			b.WriteString(pad)
			if c < len(cells)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(_ int, cell string) string {
		return tableHeaderStyle.Render(cell)
	})

	separators := make([]string, len(headers))
	for c := range headers {
		separators[c] = strings.Repeat("-", widths[c])
	}
	writeRow(separators, func(_ int, cell string) string { return cell })

	for i, row := range rows {
		done := tasks[i].IsDone
		writeRow(row, func(col int, cell string) string {
			switch col {
			case 0:
				return idCellStyle.Render(cell)
			case 3:
				if done {
					return doneMarkStyle.Render(cell)
				}
				return pendingMarkStyle.Render(cell)
			default:
				return cell
			}
		})
	}

	return b.String()
}

func init() {
	rootCmd.AddCommand(listCmd)
}
