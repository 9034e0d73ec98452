package validation

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskName validates a task name for insertion
func (tv *TaskValidator) ValidateTaskName(name string) error {
	if !tv.validator.IsNonEmptyString(name) {
		validationError := NewValidationError()
		validationError.AddRequiredError("name")
		return validationError
	}
	return nil
}

// ValidateDeadline validates a deadline given in days
func (tv *TaskValidator) ValidateDeadline(days int) error {
	if !tv.validator.IsPositive(days) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("deadline_days", days, "must be a positive number of days")
		return validationError
	}
	return nil
}

// ValidateTaskForCreation validates both inputs of an add, collecting every
// field error rather than stopping at the first one.
func (tv *TaskValidator) ValidateTaskForCreation(name string, days int) error {
	validationError := NewValidationError()

	if nameErr := tv.ValidateTaskName(name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if deadlineErr := tv.ValidateDeadline(days); deadlineErr != nil {
		if deadlineValidationErr, ok := deadlineErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, deadlineValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
