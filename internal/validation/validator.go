package validation

import (
	"regexp"
	"strings"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
)

// taskNameChars allows alphanumeric characters, spaces, hyphens,
// underscores, and common punctuation. Newlines, tabs, and other control
// characters are rejected.
var taskNameChars = regexp.MustCompile(`^[a-zA-Z0-9 \-_.,!?()]+$`)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTaskNameLength checks if a task name length is within configured limits
func (v *Validator) IsValidTaskNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	return length >= v.getTaskNameMinLength() && length <= v.getTaskNameMaxLength()
}

// IsValidTaskName checks if a task name contains only allowed characters
func (v *Validator) IsValidTaskName(name string) bool {
	return taskNameChars.MatchString(name)
}

// IsValidPriority checks if a priority is within the allowed range
func (v *Validator) IsValidPriority(priority int) bool {
	return priority >= domain.PriorityMin && priority <= domain.PriorityMax
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getTaskNameMinLength returns configured minimum task name length or default
func (v *Validator) getTaskNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMinLength
	}
	return 1 // Default minimum
}

// getTaskNameMaxLength returns configured maximum task name length or default
func (v *Validator) getTaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return 255 // Default maximum
}
