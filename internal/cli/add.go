package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitleFlag       string
	addDescriptionFlag string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a todo task",
	Long: `Add a new task with a title and a description.

A fresh 8-character id is generated and the task starts as not done.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		if _, err := TaskMgr.AddTask(addTitleFlag, addDescriptionFlag); err != nil {
			return err
		}

		fmt.Println("The task was successfully added.")
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTitleFlag, "title", "t", "", "Task title")
	addCmd.Flags().StringVarP(&addDescriptionFlag, "description", "d", "", "Task description")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("description")

	rootCmd.AddCommand(addCmd)
}
