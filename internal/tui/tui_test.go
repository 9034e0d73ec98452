package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/app"
	"todo-list/internal/domain"
	"todo-list/internal/logging"
	"todo-list/internal/notify"
	"todo-list/internal/repository/memory"
	"todo-list/internal/store"
)

func newTestModel(t *testing.T, life time.Duration, sidebar bool) *Model {
	t.Helper()
	return newTestModelWithLogger(t, life, sidebar, logging.Discard())
}

func newTestModelWithLogger(t *testing.T, life time.Duration, sidebar bool, logger *log.Logger) *Model {
	t.Helper()
	session := app.NewSession(
		store.New(memory.New(), logger),
		notify.NewCenter(life, 5, logger),
		app.Options{SidebarEnabled: sidebar, Logger: logger},
	)
	t.Cleanup(func() { session.Close() })
	return NewModel(session, Options{Timeout: time.Second})
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, key tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func addTask(m *Model, name, deadline string) {
	m.setFocus(focusTask)
	typeText(m, name)
	press(m, tea.KeyTab)
	typeText(m, deadline)
	press(m, tea.KeyEnter)
}

func TestAddTask(t *testing.T) {
	m := newTestModel(t, time.Minute, false)

	addTask(m, "Write report", "3")

	assert.Equal(t, []domain.Task{{Name: "Write report", DeadlineDays: 3}}, m.Tasks())
	assert.Equal(t, "", m.taskInput.Value())
	assert.Equal(t, "", m.deadlineInput.Value())

	require.Len(t, m.Notifications(), 1)
	n := m.Notifications()[0]
	assert.Equal(t, notify.SeveritySuccess, n.Severity)
	assert.Equal(t, `Task "Write report" with a deadline of 3 days was added.`, n.Detail)

	view := m.View()
	assert.Contains(t, view, "Write report")
	assert.Contains(t, view, "3 days")
	assert.Contains(t, view, "Task Added")
}

func TestAddTask_InvalidKeepsInputs(t *testing.T) {
	tests := []struct {
		name     string
		task     string
		deadline string
	}{
		{"empty name", "", "5"},
		{"zero deadline", "Review PR", "0"},
		{"text deadline", "Review PR", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, time.Minute, false)

			addTask(m, tt.task, tt.deadline)

			assert.Empty(t, m.Tasks())
			assert.Equal(t, tt.task, m.taskInput.Value())
			assert.Equal(t, tt.deadline, m.deadlineInput.Value())
			require.Len(t, m.Notifications(), 1)
			assert.Equal(t, notify.SeverityError, m.Notifications()[0].Severity)
			assert.Contains(t, m.View(), "Invalid Input")
		})
	}
}

func TestActionsWriteNothingToTheLog(t *testing.T) {
	t.Setenv("TODO_DEBUG", "")
	var buf bytes.Buffer
	m := newTestModelWithLogger(t, time.Minute, false, logging.New(&buf, false))

	addTask(m, "", "")
	require.Len(t, m.Notifications(), 1)
	addTask(m, "Write report", "3")
	require.Len(t, m.Tasks(), 1)
	m.setFocus(focusList)
	press(m, tea.KeyEnter)

	assert.Empty(t, m.Tasks())
	assert.Empty(t, buf.String())
}

func TestCompleteSelected(t *testing.T) {
	m := newTestModel(t, time.Minute, false)
	addTask(m, "a", "1")
	addTask(m, "b", "2")
	addTask(m, "a", "3")

	m.setFocus(focusList)
	press(m, tea.KeyDown)
	assert.Equal(t, 1, m.selected)
	assert.Contains(t, m.View(), "[Complete]")

	press(m, tea.KeyEnter)
	assert.Equal(t, []domain.Task{{Name: "a", DeadlineDays: 1}, {Name: "a", DeadlineDays: 3}}, m.Tasks())

	press(m, tea.KeyEnter)
	assert.Empty(t, m.Tasks())
	assert.Equal(t, 0, m.selected)

	last := m.Notifications()[len(m.Notifications())-1]
	assert.Equal(t, "Task Completed", last.Summary)
	assert.Equal(t, `Task "a" was removed from the list.`, last.Detail)

	// nothing left to complete
	press(m, tea.KeyEnter)
	assert.Contains(t, m.View(), "No tasks yet.")
}

func TestSelectionWraps(t *testing.T) {
	m := newTestModel(t, time.Minute, false)
	addTask(m, "a", "1")
	addTask(m, "b", "1")

	m.setFocus(focusList)
	press(m, tea.KeyUp)
	assert.Equal(t, 1, m.selected)
	press(m, tea.KeyDown)
	assert.Equal(t, 0, m.selected)
}

func TestFocusCycle(t *testing.T) {
	m := newTestModel(t, time.Minute, false)
	assert.Equal(t, focusTask, m.focus)

	press(m, tea.KeyTab)
	assert.Equal(t, focusDeadline, m.focus)
	assert.True(t, m.deadlineInput.Focused())
	assert.False(t, m.taskInput.Focused())

	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	assert.Equal(t, focusList, m.focus)

	press(m, tea.KeyTab)
	assert.Equal(t, focusTask, m.focus)

	press(m, tea.KeyShiftTab)
	assert.Equal(t, focusList, m.focus)
}

func TestEnterOnAddButton(t *testing.T) {
	m := newTestModel(t, time.Minute, false)
	typeText(m, "Write report")
	press(m, tea.KeyTab)
	typeText(m, "2")
	press(m, tea.KeyTab)
	assert.Equal(t, focusAdd, m.focus)

	press(m, tea.KeyEnter)
	assert.Equal(t, []domain.Task{{Name: "Write report", DeadlineDays: 2}}, m.Tasks())
}

func TestNotificationsExpireOnTick(t *testing.T) {
	m := newTestModel(t, 20*time.Millisecond, false)
	addTask(m, "a", "1")
	require.Len(t, m.Notifications(), 1)

	time.Sleep(30 * time.Millisecond)
	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.Notifications())
}

func TestSidebar(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		m := newTestModel(t, time.Minute, false)
		press(m, tea.KeyCtrlB)
		assert.NotContains(t, m.View(), "Menu")
		assert.NotContains(t, m.View(), "ctrl+b")
	})

	t.Run("enabled", func(t *testing.T) {
		m := newTestModel(t, time.Minute, true)
		assert.Contains(t, m.View(), "ctrl+b: sidebar")
		press(m, tea.KeyCtrlB)
		assert.Contains(t, m.View(), "Menu")
		press(m, tea.KeyCtrlB)
		assert.NotContains(t, m.View(), "Menu")
	})
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := newTestModel(t, time.Minute, false)
		cmd := press(m, key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestInitSchedulesTick(t *testing.T) {
	m := newTestModel(t, time.Minute, false)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "To-Do List")
}
