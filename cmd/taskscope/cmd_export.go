package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export all tasks to a JSONL snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ExportSnapshot(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to export snapshot: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported snapshot to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
