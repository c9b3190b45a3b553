package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var subtaskCmd = &cobra.Command{
	Use:   "subtask",
	Short: "Manage subtasks",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add <task-id> <title>",
	Short: "Add a subtask to a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		taskID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		st, err := store.CreateSubtask(ctx, taskID, strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("failed to create subtask: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created subtask %d under task %d: %s\n", st.ID, taskID, st.Title)
		return nil
	},
}

var subtaskDoneCmd = &cobra.Command{
	Use:   "done <subtask-id>",
	Short: "Mark a subtask as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setSubtaskDone(cmd, args[0], true)
	},
}

var subtaskUndoneCmd = &cobra.Command{
	Use:   "undone <subtask-id>",
	Short: "Mark a subtask as not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setSubtaskDone(cmd, args[0], false)
	},
}

func setSubtaskDone(cmd *cobra.Command, rawID string, done bool) error {
	ctx := cmd.Context()
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid subtask id %q", rawID)
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SetSubtaskDone(ctx, id, done); err != nil {
		return err
	}
	state := "done"
	if !done {
		state = "not done"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Subtask %d is now %s\n", id, state)
	return nil
}

func init() {
	subtaskCmd.AddCommand(subtaskAddCmd, subtaskDoneCmd, subtaskUndoneCmd)
	rootCmd.AddCommand(subtaskCmd)
}
