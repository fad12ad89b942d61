package domain

import (
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	CodeNoQuestions ErrorCode = "NO_QUESTIONS_FOUND"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{Code: code, Message: message, Cause: cause}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// NewNoQuestionsError reports that no questions match a quiz request.
func NewNoQuestionsError(categoryID int, difficulty Difficulty) *DomainError {
	return NewError(CodeNoQuestions,
		fmt.Sprintf("No questions found for category %d with difficulty %s", categoryID, difficulty), nil)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates per-field validation failures so a
// request can report all of them at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFieldError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}
