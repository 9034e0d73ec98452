// Package app binds the task list store to the input form and the
// notification center. Every front-end drives a Session.
package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/form"
	"todo-list/internal/notify"
	"todo-list/internal/store"
)

// Session is one user's view of the task list. It is not safe for
// concurrent use.
type Session struct {
	store    *store.TaskListStore
	form     *form.Form
	notifier *notify.Center
	logger   *log.Logger
	now      func() time.Time

	sidebarEnabled bool
	sidebarOpen    bool

	last    notify.Notification
	hasLast bool
}

// Options tweak a new session
type Options struct {
	// SidebarEnabled lets ToggleSidebar open the sidebar
	SidebarEnabled bool
	Logger         *log.Logger
}

// NewSession creates a session around an existing store and notification center
func NewSession(st *store.TaskListStore, notifier *notify.Center, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Session{
		store:          st,
		form:           form.New(),
		notifier:       notifier,
		logger:         logger,
		now:            time.Now,
		sidebarEnabled: opts.SidebarEnabled,
	}
}

// NewFromConfig builds a session on the configured backend
func NewFromConfig(cfg *config.Config, logger *log.Logger) (*Session, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create task list: %w", err)
	}

	logger.WithField("backend", cfg.Store.Backend).Debug("session started")

	st := store.New(repo, logger)
	notifier := notify.NewCenter(cfg.Notifications.Life, cfg.Notifications.MaxVisible, logger)
	return NewSession(st, notifier, Options{
		SidebarEnabled: cfg.Application.Sidebar,
		Logger:         logger,
	}), nil
}

// HandleChange updates one field of the pending input
func (s *Session) HandleChange(field, value string) {
	s.form.HandleChange(field, value)
}

// Pending returns the pending task name and deadline
func (s *Session) Pending() (string, int) {
	return s.form.Task, s.form.Deadline
}

// PendingDeadlineText returns the pending deadline as input text
func (s *Session) PendingDeadlineText() string {
	return s.form.DeadlineText()
}

// Submit adds the pending input as a task. The inputs are cleared only
// when the add succeeds.
func (s *Session) Submit(ctx context.Context) (domain.Task, error) {
	task, err := s.AddTask(ctx, s.form.Task, s.form.Deadline)
	if err != nil {
		return domain.Task{}, err
	}
	s.form.Clear()
	return task, nil
}

// AddTask adds a task and shows the matching notification. A rejected add
// shows an error notification and returns the invalid input error.
func (s *Session) AddTask(ctx context.Context, name string, deadlineDays int) (domain.Task, error) {
	task, err := s.store.AddTask(ctx, name, deadlineDays)
	if err != nil {
		s.fail(err)
		return domain.Task{}, err
	}
	s.show(notify.TaskAdded(task.Name, task.DeadlineDays))
	return task, nil
}

// CompleteTask removes every task with the given name and shows whether
// anything was removed.
func (s *Session) CompleteTask(ctx context.Context, name string) (int, error) {
	removed, err := s.store.CompleteTask(ctx, name)
	if err != nil {
		s.fail(err)
		return 0, err
	}
	if removed == 0 {
		s.show(notify.TaskNotFound(name))
	} else {
		s.show(notify.TaskCompleted(name))
	}
	return removed, nil
}

// Tasks returns the list in display order
func (s *Session) Tasks(ctx context.Context) ([]domain.Task, error) {
	return s.store.Tasks(ctx)
}

// Notifications returns the notifications still on screen
func (s *Session) Notifications() []notify.Notification {
	return s.notifier.Active(s.now())
}

// LastNotification returns the notification raised by the most recent
// action, even if it has since expired or been dismissed
func (s *Session) LastNotification() (notify.Notification, bool) {
	return s.last, s.hasLast
}

// DismissNotification hides a notification before it expires
func (s *Session) DismissNotification(id string) bool {
	return s.notifier.Dismiss(id)
}

// SidebarEnabled reports whether the sidebar can be opened at all
func (s *Session) SidebarEnabled() bool {
	return s.sidebarEnabled
}

// SidebarOpen reports whether the sidebar is showing
func (s *Session) SidebarOpen() bool {
	return s.sidebarOpen
}

// ToggleSidebar flips the sidebar and returns its new state. It stays
// closed while the sidebar is disabled.
func (s *Session) ToggleSidebar() bool {
	if !s.sidebarEnabled {
		return false
	}
	s.sidebarOpen = !s.sidebarOpen
	return s.sidebarOpen
}

// Close releases the task list backend
func (s *Session) Close() error {
	return s.store.Close()
}

func (s *Session) fail(err error) {
	if errors.IsErrorType(err, errors.ErrorTypeInvalidInput) {
		s.show(notify.InvalidInput(errors.GetUserMessage(err)))
		return
	}
	if errors.ShouldLogError(err) {
		entry := s.logger.WithError(err).WithField("code", errors.GetErrorCode(err))
		if appErr, ok := errors.AsAppError(err); ok {
			if operation, ok := appErr.GetContext("operation"); ok {
				entry = entry.WithField("operation", operation)
			}
		}
		entry.Error("task list operation failed")
	}
	s.show(notify.Failure(errors.GetUserMessage(err)))
}

func (s *Session) show(n notify.Notification) {
	s.last = s.notifier.Show(n)
	s.hasLast = true
}
