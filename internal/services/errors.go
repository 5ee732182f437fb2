// Package services implements the wellness use cases on top of the metric
// formulas, the record store and the assistant. This file centralizes the
// service-level error values so handlers can map them to HTTP results
// consistently.
package services

import "errors"

var (
	// ErrValidation marks malformed or out-of-range input. Concrete
	// validation errors carry a user-facing message and match it via
	// errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyMessage is returned when a chat message is blank.
	ErrEmptyMessage = invalid("message is required")

	// ErrMessageTooLong is returned when a chat message exceeds the
	// configured rune limit.
	ErrMessageTooLong = invalid("message too long")

	// ErrUnknownAssessment is returned for an assessment type that has no
	// definition.
	ErrUnknownAssessment = errors.New("unknown assessment type")

	// ErrReportNotFound indicates that no health report has the given id.
	ErrReportNotFound = errors.New("health report not found")

	// ErrNoHealthData is returned when no dashboard check-in exists yet.
	ErrNoHealthData = errors.New("no health data recorded")
)

type validationError struct{ msg string }

func (e *validationError) Error() string        { return e.msg }
func (e *validationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error { return &validationError{msg: msg} }
