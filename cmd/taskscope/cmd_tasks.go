package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskscope/internal/db"
	"taskscope/pkg/models"
)

var (
	addDescription string
	addDue         string
	addPriority    string
	addTags        string
	addSubtasks    []string

	listSearch string
	listFilter string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		var due *time.Time
		if addDue != "" {
			parsed, err := parseDue(addDue)
			if err != nil {
				return err
			}
			due = &parsed
		}

		priority := models.PriorityMedium
		if addPriority != "" {
			priority, err = parsePriority(addPriority)
			if err != nil {
				return err
			}
		}

		task, err := store.CreateTask(ctx, db.CreateTaskInput{
			Title:       strings.Join(args, " "),
			Description: addDescription,
			DueAt:       due,
			Priority:    priority,
			Tags:        addTags,
			Subtasks:    addSubtasks,
		})
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created task %d: %s\n", task.ID, task.Title)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		mode := models.FilterMode(listFilter)
		if !models.ValidFilterMode(mode) {
			return fmt.Errorf("invalid filter %q: use all, today, week, done or undone", listFilter)
		}

		tasks, err := store.ListTasks(ctx, listSearch, mode)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		if len(tasks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
			return nil
		}
		for _, t := range tasks {
			fmt.Fprintln(cmd.OutOrStdout(), formatTaskLine(t))
			for _, st := range t.Subtasks {
				box := " "
				if st.IsDone {
					box = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "       - [%s] %s\n", box, st.Title)
			}
		}
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(cmd, args[0], models.TaskStatusDone)
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen a completed task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(cmd, args[0], models.TaskStatusTodo)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task and its subtasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteTask(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", id)
		return nil
	},
}

func setStatus(cmd *cobra.Command, rawID string, status models.TaskStatus) error {
	ctx := cmd.Context()
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", rawID)
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.UpdateTaskStatus(ctx, id, status); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Task %d is now %s\n", id, status)
	return nil
}

func formatTaskLine(t *models.Task) string {
	box := "[ ]"
	if t.IsDone() {
		box = "[x]"
	}
	line := fmt.Sprintf("%4d %s %s (%s)", t.ID, box, t.Title, t.Priority)
	if t.DueAt != nil {
		line += " due " + t.DueAt.Local().Format("2006-01-02 15:04")
	}
	if t.Tags != "" {
		line += " #" + strings.ReplaceAll(t.Tags, ",", " #")
	}
	return line
}

func parseDue(raw string) (time.Time, error) {
	if due, err := time.ParseInLocation("2006-01-02 15:04", raw, time.Local); err == nil {
		return due, nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: use YYYY-MM-DD or YYYY-MM-DD HH:MM", raw)
	}
	return day.Add(23*time.Hour + 59*time.Minute), nil
}

func parsePriority(raw string) (models.Priority, error) {
	for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if strings.EqualFold(raw, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q: use High, Medium or Low", raw)
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "task description")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "priority: High, Medium or Low")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "comma separated tags")
	addCmd.Flags().StringArrayVarP(&addSubtasks, "subtask", "s", nil, "subtask title (repeatable)")

	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "substring to match in title, description or tags")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "filter: all, today, week, done or undone")

	rootCmd.AddCommand(addCmd, listCmd, doneCmd, reopenCmd, deleteCmd)
}
