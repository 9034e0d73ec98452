package validation

import (
	"testing"
)

func TestTaskValidator_ValidateTaskName(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid name", "Write report", false, ""},
		{"Empty name", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", false, ""},
		{"Special characters", "Task@#$%", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskName(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("ValidateTaskName(%q) expected error but got nil", tt.input)
					return
				}

				validationErr, ok := err.(*ValidationError)
				if !ok {
					t.Errorf("ValidateTaskName(%q) expected ValidationError but got %T", tt.input, err)
					return
				}

				if validationErr.Errors[0].Type != tt.errorType {
					t.Errorf("ValidateTaskName(%q) expected error type %v but got %v", tt.input, tt.errorType, validationErr.Errors[0].Type)
				}
			} else if err != nil {
				t.Errorf("ValidateTaskName(%q) expected no error but got %v", tt.input, err)
			}
		})
	}
}

func TestTaskValidator_ValidateDeadline(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		days        int
		expectError bool
	}{
		{"One day", 1, false},
		{"Many days", 30, false},
		{"Zero", 0, true},
		{"Negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateDeadline(tt.days)

			if tt.expectError {
				if err == nil {
					t.Errorf("ValidateDeadline(%d) expected error but got nil", tt.days)
					return
				}
				validationErr := err.(*ValidationError)
				if validationErr.Errors[0].Type != ErrorTypeInvalidValue {
					t.Errorf("ValidateDeadline(%d) expected error type %v but got %v", tt.days, ErrorTypeInvalidValue, validationErr.Errors[0].Type)
				}
			} else if err != nil {
				t.Errorf("ValidateDeadline(%d) expected no error but got %v", tt.days, err)
			}
		})
	}
}

func TestTaskValidator_ValidateTaskForCreation(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name           string
		taskName       string
		days           int
		expectedFields []string
	}{
		{"Valid", "Write report", 3, nil},
		{"Empty name", "", 5, []string{"name"}},
		{"Zero deadline", "Review PR", 0, []string{"deadline_days"}},
		{"Both invalid", "", -1, []string{"name", "deadline_days"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskForCreation(tt.taskName, tt.days)

			if len(tt.expectedFields) == 0 {
				if err != nil {
					t.Errorf("ValidateTaskForCreation(%q, %d) expected no error but got %v", tt.taskName, tt.days, err)
				}
				return
			}

			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("ValidateTaskForCreation(%q, %d) expected ValidationError but got %T", tt.taskName, tt.days, err)
			}
			if len(validationErr.Errors) != len(tt.expectedFields) {
				t.Fatalf("expected %d field errors, got %d", len(tt.expectedFields), len(validationErr.Errors))
			}
			for i, field := range tt.expectedFields {
				if validationErr.Errors[i].Field != field {
					t.Errorf("error %d field = %s, expected %s", i, validationErr.Errors[i].Field, field)
				}
			}
		})
	}
}
