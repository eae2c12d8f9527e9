package validation

import (
	"fmt"

	"todo-tracker/internal/domain"
)

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

// NewTaskValidatorWithValidator creates a task validator around an existing
// validator, so configured name-length limits carry over
func NewTaskValidatorWithValidator(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateTaskName validates a task name for creation
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	// Trim whitespace
	trimmedName := tv.validator.TrimAndValidateString(name)

	// Check if name is empty
	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	// Check length constraints
	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		validationError.AddInvalidLengthError("task_name", trimmedName,
			tv.validator.getTaskNameMinLength(), tv.validator.getTaskNameMaxLength())
	}

	// Check for valid characters
	if !tv.validator.IsValidTaskName(trimmedName) {
		validationError.AddInvalidCharacterError("task_name", trimmedName)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePriority validates a task priority value
func (tv *TaskValidator) ValidatePriority(priority int) error {
	if !tv.validator.IsValidPriority(priority) {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("priority", priority,
			fmt.Sprintf("must be an integer between %d and %d inclusive", domain.PriorityMin, domain.PriorityMax))
		return validationError
	}
	return nil
}

// ValidateTaskForCreation validates the inputs of the add operation
func (tv *TaskValidator) ValidateTaskForCreation(name string, priority int) error {
	validationError := NewValidationError()

	if nameErr := tv.ValidateTaskName(name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if priorityErr := tv.ValidatePriority(priority); priorityErr != nil {
		if priorityValidationErr, ok := priorityErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, priorityValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePriorityUpdate validates the inputs of the update-priority operation
func (tv *TaskValidator) ValidatePriorityUpdate(id int64, priority int) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidTaskID(id) {
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
	}

	if priorityErr := tv.ValidatePriority(priority); priorityErr != nil {
		if priorityValidationErr, ok := priorityErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, priorityValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if nameErr := tv.ValidateTaskName(task.Name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if priorityErr := tv.ValidatePriority(task.Priority); priorityErr != nil {
		if priorityValidationErr, ok := priorityErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, priorityValidationErr.Errors...)
		}
	}

	// If task has an ID, validate it
	if task.ID != 0 && !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddInvalidValueError("task_id", task.ID, "must be a positive integer")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
