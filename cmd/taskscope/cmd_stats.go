package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskscope/pkg/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts by status and priority",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		statusCounts, err := store.StatusCounts(ctx)
		if err != nil {
			return fmt.Errorf("failed to count statuses: %w", err)
		}
		priorityCounts, err := store.PriorityCounts(ctx)
		if err != nil {
			return fmt.Errorf("failed to count priorities: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "By status:")
		for _, s := range []models.TaskStatus{models.TaskStatusTodo, models.TaskStatusInProgress, models.TaskStatusDone} {
			fmt.Fprintf(out, "  %-12s %d\n", s, statusCounts[s])
		}
		fmt.Fprintln(out, "Open by priority:")
		for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
			fmt.Fprintf(out, "  %-12s %d\n", p, priorityCounts[p])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
