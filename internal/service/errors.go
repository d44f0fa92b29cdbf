package service

import "fmt"

// NotFoundError means a student, test or submission does not exist for the caller.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// DuplicateSubmissionError is returned when the test was already submitted by the student.
type DuplicateSubmissionError struct {
	SubmissionID uint
}

func (e *DuplicateSubmissionError) Error() string {
	return fmt.Sprintf("test already submitted (submission %d)", e.SubmissionID)
}

// ConfigurationError signals bad test data rather than a client mistake.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid test configuration: " + e.Reason
}

// ValidationError is a rejected client payload.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func notFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
