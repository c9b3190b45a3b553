package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"taskscope/internal/notify"
	"taskscope/internal/watcher"
)

// watchCmd runs the deadline watcher without the TUI, for keeping reminders
// alive in a background terminal.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the deadline watcher headless",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		w := watcher.New(store, notify.NewDesktop(), logger, watcher.Options{
			Interval:       cfg.WatchInterval(),
			ApproachWindow: cfg.ApproachWindow(),
			GraceWindow:    cfg.GraceWindow(),
		})
		w.Start(ctx)
		defer w.Stop()

		fmt.Fprintln(cmd.OutOrStdout(), "Watching deadlines. Press Ctrl+C to stop.")
		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
