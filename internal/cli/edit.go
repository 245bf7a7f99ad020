package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/todo-cli/pkg/models"
)

var (
	editTitleFlag       string
	editDescriptionFlag string
	editIsDoneFlag      bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a todo task",
	Long: `Edit an existing task by id.

Only the provided flags are changed; omitted fields keep their current
values. Editing an unknown id is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		var updates models.TaskUpdate
		if cmd.Flags().Changed("title") {
			updates.Title = &editTitleFlag
		}
		if cmd.Flags().Changed("description") {
			updates.Description = &editDescriptionFlag
		}
		if cmd.Flags().Changed("is-done") {
			updates.IsDone = &editIsDoneFlag
		}

		if _, err := TaskMgr.EditTask(args[0], updates); err != nil {
			return err
		}

		fmt.Println("The task was successfully edited.")
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTitleFlag, "title", "t", "", "New task title")
	editCmd.Flags().StringVarP(&editDescriptionFlag, "description", "d", "", "New task description")
	editCmd.Flags().BoolVarP(&editIsDoneFlag, "is-done", "i", false, "New done flag (true or false)")

	rootCmd.AddCommand(editCmd)
}
