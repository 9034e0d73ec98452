// Package notify keeps the transient toast notifications shown after each
// task list action.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Severity selects how a notification is presented
type Severity string

const (
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// DefaultLife is how long a notification stays visible unless configured otherwise
const DefaultLife = 3 * time.Second

// Notification is one toast message
type Notification struct {
	ID        string
	Severity  Severity
	Summary   string
	Detail    string
	Life      time.Duration
	CreatedAt time.Time
}

// ExpiresAt reports when the notification stops being shown
func (n Notification) ExpiresAt() time.Time {
	return n.CreatedAt.Add(n.Life)
}

// Expired reports whether the notification is past its life at now
func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt())
}

func (n Notification) String() string {
	return fmt.Sprintf("[%s] %s: %s", n.Severity, n.Summary, n.Detail)
}

// InvalidInput is shown when an add is rejected
func InvalidInput(detail string) Notification {
	return Notification{
		Severity: SeverityError,
		Summary:  "Invalid Input",
		Detail:   detail,
	}
}

// TaskAdded is shown after a successful add
func TaskAdded(name string, deadlineDays int) Notification {
	return Notification{
		Severity: SeveritySuccess,
		Summary:  "Task Added",
		Detail:   fmt.Sprintf("Task %q with a deadline of %d days was added.", name, deadlineDays),
	}
}

// TaskCompleted is shown after a complete that removed at least one task
func TaskCompleted(name string) Notification {
	return Notification{
		Severity: SeverityInfo,
		Summary:  "Task Completed",
		Detail:   fmt.Sprintf("Task %q was removed from the list.", name),
	}
}

// TaskNotFound is shown after a complete that matched nothing
func TaskNotFound(name string) Notification {
	return Notification{
		Severity: SeverityInfo,
		Summary:  "Task Not Found",
		Detail:   fmt.Sprintf("No task named %q is on the list.", name),
	}
}

// Failure is shown when an action could not be carried out at all
func Failure(detail string) Notification {
	return Notification{
		Severity: SeverityError,
		Summary:  "Error",
		Detail:   detail,
	}
}

// Center holds the notifications currently on screen, oldest first.
// It is not safe for concurrent use.
type Center struct {
	life       time.Duration
	maxVisible int
	items      []Notification
	logger     *log.Logger
	now        func() time.Time
}

// NewCenter creates an empty center. Non-positive values fall back to
// DefaultLife and a single visible notification.
func NewCenter(life time.Duration, maxVisible int, logger *log.Logger) *Center {
	if life <= 0 {
		life = DefaultLife
	}
	if maxVisible < 1 {
		maxVisible = 1
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Center{
		life:       life,
		maxVisible: maxVisible,
		logger:     logger,
		now:        time.Now,
	}
}

// Show stamps n with an ID, creation time and life when missing and puts
// it on screen. The oldest notifications go once more than the maximum
// are visible.
func (c *Center) Show(n Notification) Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = c.now()
	}
	if n.Life <= 0 {
		n.Life = c.life
	}

	c.items = append(c.items, n)
	if overflow := len(c.items) - c.maxVisible; overflow > 0 {
		c.items = append([]Notification(nil), c.items[overflow:]...)
	}

	c.logger.WithFields(log.Fields{
		"id":       n.ID,
		"severity": string(n.Severity),
		"summary":  n.Summary,
	}).Debug(n.Detail)
	return n
}

// Active drops notifications that expired by now and returns the rest
func (c *Center) Active(now time.Time) []Notification {
	kept := c.items[:0]
	for _, n := range c.items {
		if !n.Expired(now) {
			kept = append(kept, n)
		}
	}
	c.items = kept

	active := make([]Notification, len(c.items))
	copy(active, c.items)
	return active
}

// Dismiss removes the notification with the given ID
func (c *Center) Dismiss(id string) bool {
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every notification
func (c *Center) Clear() {
	c.items = nil
}

// Len returns how many notifications are held, expired or not
func (c *Center) Len() int {
	return len(c.items)
}
