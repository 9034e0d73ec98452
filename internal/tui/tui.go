// Package tui provides the interactive terminal page for the task list.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-list/internal/app"
	"todo-list/internal/domain"
	"todo-list/internal/form"
	"todo-list/internal/notify"
)

// Options configures the terminal page
type Options struct {
	// Timeout bounds every task list operation
	Timeout time.Duration
	// TickInterval controls how often expired notifications are swept
	TickInterval time.Duration
}

// Run shows the page until the user quits or ctx is cancelled
func Run(ctx context.Context, session *app.Session, opts Options) error {
	model := NewModel(session, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

type focus int

const (
	focusTask focus = iota
	focusDeadline
	focusAdd
	focusList
	focusCount
)

type tickMsg time.Time

// Model is the bubbletea model of the task list page
type Model struct {
	session       *app.Session
	timeout       time.Duration
	tickInterval  time.Duration
	taskInput     textinput.Model
	deadlineInput textinput.Model
	focus         focus
	tasks         []domain.Task
	selected      int
	notifications []notify.Notification
	err           error
}

// NewModel creates the page model over a session
func NewModel(session *app.Session, opts Options) *Model {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 250 * time.Millisecond
	}

	task := textinput.New()
	task.Placeholder = "Task"
	task.Prompt = "Task:     "
	task.Focus()

	deadline := textinput.New()
	deadline.Placeholder = "Deadline (days)"
	deadline.Prompt = "Deadline: "
	deadline.CharLimit = 6

	m := &Model{
		session:       session,
		timeout:       opts.Timeout,
		tickInterval:  opts.TickInterval,
		taskInput:     task,
		deadlineInput: deadline,
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.tickInterval))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "ctrl+b":
			m.session.ToggleSidebar()
			return m, nil
		case "enter":
			if m.focus == focusList {
				m.completeSelected()
			} else {
				m.submit()
			}
			return m, nil
		case "up", "k":
			if m.focus == focusList {
				m.moveSelection(-1)
				return m, nil
			}
		case "down", "j":
			if m.focus == focusList {
				m.moveSelection(1)
				return m, nil
			}
		}
		return m, m.updateInputs(msg)
	case tickMsg:
		m.notifications = m.session.Notifications()
		return m, tickCmd(m.tickInterval)
	}

	return m, m.updateInputs(msg)
}

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.session.SidebarOpen() {
		b.WriteString(sidebarStyle.Render("Menu\n(empty)"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.taskInput.View() + "\n")
	b.WriteString(m.deadlineInput.View() + "\n\n")
	if m.focus == focusAdd {
		b.WriteString(focusedStyle.Render("[ Add ]"))
	} else {
		b.WriteString("[ Add ]")
	}
	b.WriteString("\n\n")

	m.writeTasks(&b)
	writeNotifications(&b, m.notifications)
	m.writeFooter(&b)
	return b.String()
}

// Tasks returns the rows currently shown
func (m *Model) Tasks() []domain.Task {
	return m.tasks
}

// Notifications returns the toasts currently shown
func (m *Model) Notifications() []notify.Notification {
	return m.notifications
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.taskInput.Blur()
	m.deadlineInput.Blur()
	switch f {
	case focusTask:
		return m.taskInput.Focus()
	case focusDeadline:
		return m.deadlineInput.Focus()
	}
	return nil
}

// updateInputs forwards msg to the focused input and mirrors its value
// into the session form
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusTask:
		m.taskInput, cmd = m.taskInput.Update(msg)
		m.session.HandleChange(form.FieldTask, m.taskInput.Value())
	case focusDeadline:
		m.deadlineInput, cmd = m.deadlineInput.Update(msg)
		m.session.HandleChange(form.FieldDeadline, m.deadlineInput.Value())
	}
	return cmd
}

func (m *Model) submit() {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	if _, err := m.session.Submit(ctx); err == nil {
		name, _ := m.session.Pending()
		m.taskInput.SetValue(name)
		m.deadlineInput.SetValue(m.session.PendingDeadlineText())
	}
	m.refresh()
}

func (m *Model) completeSelected() {
	if len(m.tasks) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	m.session.CompleteTask(ctx, m.tasks[m.selected].Name)
	m.refresh()
}

func (m *Model) moveSelection(delta int) {
	if len(m.tasks) == 0 {
		return
	}
	m.selected = (m.selected + delta + len(m.tasks)) % len(m.tasks)
}

func (m *Model) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	tasks, err := m.session.Tasks(ctx)
	m.err = err
	if err == nil {
		m.tasks = tasks
	}
	if m.selected >= len(m.tasks) {
		m.selected = max(len(m.tasks)-1, 0)
	}
	m.notifications = m.session.Notifications()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func writeTitle(b *strings.Builder) {
	title := "To-Do List"
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func (m *Model) writeTasks(b *strings.Builder) {
	if m.err != nil {
		b.WriteString(severityStyle(notify.SeverityError).Render("Could not load tasks: "+m.err.Error()) + "\n\n")
	}
	if len(m.tasks) == 0 {
		b.WriteString(mutedStyle.Render("No tasks yet.") + "\n\n")
		return
	}
	for i, task := range m.tasks {
		row := fmt.Sprintf("%-30s %s", task.Name, domain.FormatDeadline(task.DeadlineDays))
		if m.focus == focusList && i == m.selected {
			b.WriteString("> " + selectedStyle.Render(row) + "  [Complete]\n")
			continue
		}
		b.WriteString("  " + row + "\n")
	}
	b.WriteString("\n")
}

func writeNotifications(b *strings.Builder, notifications []notify.Notification) {
	for _, n := range notifications {
		b.WriteString(severityStyle(n.Severity).Render(n.Summary))
		b.WriteString(" " + n.Detail + "\n")
	}
	if len(notifications) > 0 {
		b.WriteString("\n")
	}
}

func (m *Model) writeFooter(b *strings.Builder) {
	help := "tab: next field  enter: add / complete  up/down: select  esc: quit"
	if m.session.SidebarEnabled() {
		help += "  ctrl+b: sidebar"
	}
	b.WriteString(mutedStyle.Render(help) + "\n")
}
