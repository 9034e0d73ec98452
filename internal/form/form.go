// Package form holds the pending task input before it is submitted.
package form

import (
	"strconv"

	"todo-list/internal/validation"
)

// Field names accepted by HandleChange
const (
	FieldTask     = "task"
	FieldDeadline = "deadline"
)

// Form is the pending name and deadline typed by the user
type Form struct {
	Task     string
	Deadline int

	validator *validation.Validator
}

// New creates an empty form
func New() *Form {
	return &Form{validator: validation.NewValidator()}
}

// HandleChange records a new value for a field. The task field takes the
// text as typed; every other field is read as a whole number of days and
// falls back to 0 when the text is not one.
func (f *Form) HandleChange(field, value string) {
	if field == FieldTask {
		f.Task = value
		return
	}
	days, ok := f.validator.ParseWholeNumber(value)
	if !ok {
		days = 0
	}
	f.Deadline = days
}

// DeadlineText renders the deadline for an input control; 0 shows as empty
func (f *Form) DeadlineText() string {
	if f.Deadline == 0 {
		return ""
	}
	return strconv.Itoa(f.Deadline)
}

// Clear resets both fields
func (f *Form) Clear() {
	f.Task = ""
	f.Deadline = 0
}
