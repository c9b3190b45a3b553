package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskscope/internal/notify"
	"taskscope/pkg/models"
)

type TaskSource interface {
	ListDueTasks(ctx context.Context) ([]*models.Task, error)
}

type Options struct {
	// Interval between deadline passes.
	Interval time.Duration
	// ApproachWindow is how close a due date must be to trigger an
	// early reminder.
	ApproachWindow time.Duration
	// GraceWindow is how long after the due date an overdue reminder may
	// still fire. Older misses stay silent.
	GraceWindow time.Duration
	// Now is the clock, swappable in tests.
	Now func() time.Time
}

// Watcher polls open tasks and raises at-most-once reminders for approaching
// and overdue deadlines. It never mutates tasks.
type Watcher struct {
	source   TaskSource
	notifier notify.Notifier
	logger   *zap.Logger
	opts     Options

	// notified lives for the process; a restart starts over.
	notified map[int64]struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

func New(source TaskSource, notifier notify.Notifier, logger *zap.Logger, opts Options) *Watcher {
	if opts.Interval <= 0 {
		opts.Interval = 60 * time.Second
	}
	if opts.ApproachWindow <= 0 {
		opts.ApproachWindow = 15 * time.Minute
	}
	if opts.GraceWindow <= 0 {
		opts.GraceWindow = 60 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Watcher{
		source:   source,
		notifier: notifier,
		logger:   logger,
		opts:     opts,
		notified: make(map[int64]struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop in its own goroutine.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	go func() {
		defer close(w.done)

		ticker := time.NewTicker(w.opts.Interval)
		defer ticker.Stop()

		w.logger.Info("deadline watcher started",
			zap.Duration("interval", w.opts.Interval))

		for {
			select {
			case <-ctx.Done():
				w.logger.Info("deadline watcher stopped")
				return
			case <-ticker.C:
				if err := w.checkDeadlines(ctx); err != nil {
					// Never let a bad pass kill the loop.
					w.logger.Warn("deadline pass failed", zap.Error(err))
				}
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has exited. Stop before Start
// is a no-op.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *Watcher) checkDeadlines(ctx context.Context) error {
	tasks, err := w.source.ListDueTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load due tasks: %w", err)
	}

	now := w.opts.Now()
	for _, task := range tasks {
		if task.DueAt == nil {
			continue
		}
		if _, seen := w.notified[task.ID]; seen {
			continue
		}

		timeLeft := task.DueAt.Sub(now)
		switch {
		case timeLeft > 0 && timeLeft <= w.opts.ApproachWindow:
			minutes := int(timeLeft.Minutes())
			w.emit(task, "approaching",
				task.Title, fmt.Sprintf("%d minutes left!", minutes))

		case timeLeft <= 0 && timeLeft > -w.opts.GraceWindow:
			w.emit(task, "overdue",
				"Deadline passed", fmt.Sprintf("%q is overdue.", task.Title))
		}
		// Anything else: not yet close, or missed beyond the grace
		// window and silently left alone.
	}

	return nil
}

func (w *Watcher) emit(task *models.Task, kind, title, message string) {
	reminderID := uuid.NewString()

	if err := w.notifier.Notify(title, message); err != nil {
		// Best effort: log and move on, but still mark the task so a
		// flapping notifier cannot spam the user on later passes.
		w.logger.Warn("failed to deliver reminder",
			zap.String("reminder_id", reminderID),
			zap.Int64("task_id", task.ID),
			zap.Error(err))
	} else {
		w.logger.Info("reminder delivered",
			zap.String("reminder_id", reminderID),
			zap.Int64("task_id", task.ID),
			zap.String("kind", kind))
	}

	w.notified[task.ID] = struct{}{}
}
