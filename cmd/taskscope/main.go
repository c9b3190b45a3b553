package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taskscope/internal/config"
	"taskscope/internal/db"
	"taskscope/internal/logging"
	"taskscope/internal/notify"
	"taskscope/internal/ui"
	"taskscope/internal/watcher"
)

var (
	configDir string
	dbPath    string
	verbose   bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "taskscope",
	Short: "TaskScope - a personal task manager with deadline reminders",
	Long: `TaskScope is a terminal task manager backed by SQLite.

It keeps tasks with subtasks, priorities, tags and due dates, shows them
as a list, kanban board or stats pane, and fires desktop notifications
when deadlines approach or pass.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, err = config.Load(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dbPath != "" {
			cfg.Database = dbPath
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default: OS user config dir)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the database file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// openStore opens the configured database, runs migrations and enables the
// auto snapshot hook when a snapshot path is configured.
func openStore(ctx context.Context) (*db.DB, error) {
	store, err := db.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, err
	}
	if cfg.SnapshotPath != "" {
		store.EnableAutoSnapshot(cfg.SnapshotPath)
	}
	return store, nil
}

func runTUI(ctx context.Context) error {
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	notifier := notify.NewDesktop()
	w := watcher.New(store, notifier, logger, watcher.Options{
		Interval:       cfg.WatchInterval(),
		ApproachWindow: cfg.ApproachWindow(),
		GraceWindow:    cfg.GraceWindow(),
	})
	w.Start(ctx)
	defer w.Stop()

	model := ui.NewModel(store, notifier, logger, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
