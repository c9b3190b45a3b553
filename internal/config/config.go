package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Database     string `mapstructure:"database" json:"database"`
	SnapshotPath string `mapstructure:"snapshot_path" json:"snapshot_path"`

	// Deadline watcher knobs. Windows mirror the reminder rules: a task is
	// "approaching" within ApproachMinutes of its due date and silently
	// forgotten once it is more than GraceMinutes overdue.
	WatchIntervalSeconds int `mapstructure:"watch_interval_seconds" json:"watch_interval_seconds"`
	ApproachMinutes      int `mapstructure:"approach_minutes" json:"approach_minutes"`
	GraceMinutes         int `mapstructure:"grace_minutes" json:"grace_minutes"`

	PomodoroMinutes int `mapstructure:"pomodoro_minutes" json:"pomodoro_minutes"`

	Styles Styles `mapstructure:"styles" json:"styles"`
}

// Styles holds the TUI colors so themes can be tweaked without rebuilding.
type Styles struct {
	AccentColor   string `mapstructure:"accent_color" json:"accent_color"`
	BorderColor   string `mapstructure:"border_color" json:"border_color"`
	DoneColor     string `mapstructure:"done_color" json:"done_color"`
	OverdueColor  string `mapstructure:"overdue_color" json:"overdue_color"`
	SelectedColor string `mapstructure:"selected_color" json:"selected_color"`
}

func (c Config) WatchInterval() time.Duration {
	return time.Duration(c.WatchIntervalSeconds) * time.Second
}

func (c Config) ApproachWindow() time.Duration {
	return time.Duration(c.ApproachMinutes) * time.Minute
}

func (c Config) GraceWindow() time.Duration {
	return time.Duration(c.GraceMinutes) * time.Minute
}

func (c Config) PomodoroLength() time.Duration {
	return time.Duration(c.PomodoroMinutes) * time.Minute
}

// DefaultDir is the per-user application data directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, "taskscope"), nil
}

func defaults(dir string) Config {
	return Config{
		Database:             filepath.Join(dir, "taskscope.db"),
		WatchIntervalSeconds: 60,
		ApproachMinutes:      15,
		GraceMinutes:         60,
		PomodoroMinutes:      25,
		Styles: Styles{
			AccentColor:   "205",
			BorderColor:   "240",
			DoneColor:     "241",
			OverdueColor:  "9",
			SelectedColor: "57",
		},
	}
}

// Load reads config.json from dir, creating it with defaults when missing.
// An empty dir means the per-user default directory.
func Load(dir string) (Config, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return Config{}, err
		}
	}

	cfg := defaults(dir)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	v.SetDefault("database", cfg.Database)
	v.SetDefault("snapshot_path", cfg.SnapshotPath)
	v.SetDefault("watch_interval_seconds", cfg.WatchIntervalSeconds)
	v.SetDefault("approach_minutes", cfg.ApproachMinutes)
	v.SetDefault("grace_minutes", cfg.GraceMinutes)
	v.SetDefault("pomodoro_minutes", cfg.PomodoroMinutes)
	v.SetDefault("styles.accent_color", cfg.Styles.AccentColor)
	v.SetDefault("styles.border_color", cfg.Styles.BorderColor)
	v.SetDefault("styles.done_color", cfg.Styles.DoneColor)
	v.SetDefault("styles.overdue_color", cfg.Styles.OverdueColor)
	v.SetDefault("styles.selected_color", cfg.Styles.SelectedColor)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}

		// First run: write the defaults so the user has a file to edit.
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Config{}, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := v.WriteConfigAs(filepath.Join(dir, "config.json")); err != nil {
			return Config{}, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
