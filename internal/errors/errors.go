package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInvalidAttributeSelection indicates a bad primary/secondary stat pick
	CodeInvalidAttributeSelection Code = "invalid_attribute_selection"

	// CodeInvalidOriginChoice indicates a bad origin or streetrat weapon pick
	CodeInvalidOriginChoice Code = "invalid_origin_choice"

	// CodeUnknownSkill indicates a skill outside the skill table
	CodeUnknownSkill Code = "unknown_skill"

	// CodeUnknownItem indicates an item outside the shop catalog
	CodeUnknownItem Code = "unknown_item"

	// CodeInvalidAmount indicates a non-positive quantity where a positive one is required
	CodeInvalidAmount Code = "invalid_amount"

	// CodeInsufficientFunds indicates the wallet cannot cover a purchase
	CodeInsufficientFunds Code = "insufficient_funds"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var liviaErr *Error
	if errors.As(err, &liviaErr) {
		return &Error{
			Code:    liviaErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(liviaErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Helper constructors for the common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// InvalidAttributeSelection creates an invalid attribute selection error
func InvalidAttributeSelection(message string) *Error {
	return New(CodeInvalidAttributeSelection, message)
}

// InvalidOriginChoice creates an invalid origin choice error
func InvalidOriginChoice(message string) *Error {
	return New(CodeInvalidOriginChoice, message)
}

// InvalidOriginChoicef creates a formatted invalid origin choice error
func InvalidOriginChoicef(format string, args ...any) *Error {
	return Newf(CodeInvalidOriginChoice, format, args...)
}

// UnknownSkillf creates a formatted unknown skill error
func UnknownSkillf(format string, args ...any) *Error {
	return Newf(CodeUnknownSkill, format, args...)
}

// UnknownItemf creates a formatted unknown item error
func UnknownItemf(format string, args ...any) *Error {
	return Newf(CodeUnknownItem, format, args...)
}

// InvalidAmount creates an invalid amount error
func InvalidAmount(message string) *Error {
	return New(CodeInvalidAmount, message)
}

// InvalidAmountf creates a formatted invalid amount error
func InvalidAmountf(format string, args ...any) *Error {
	return Newf(CodeInvalidAmount, format, args...)
}

// InsufficientFundsf creates a formatted insufficient funds error
func InsufficientFundsf(format string, args ...any) *Error {
	return Newf(CodeInsufficientFunds, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var liviaErr *Error
	if errors.As(err, &liviaErr) {
		return liviaErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsInvalidAmount checks if the error is an invalid amount error
func IsInvalidAmount(err error) bool {
	return Is(err, CodeInvalidAmount)
}

// IsInsufficientFunds checks if the error is an insufficient funds error
func IsInsufficientFunds(err error) bool {
	return Is(err, CodeInsufficientFunds)
}

// IsUnknownSkill checks if the error is an unknown skill error
func IsUnknownSkill(err error) bool {
	return Is(err, CodeUnknownSkill)
}

// IsUnknownItem checks if the error is an unknown item error
func IsUnknownItem(err error) bool {
	return Is(err, CodeUnknownItem)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var liviaErr *Error
	if errors.As(err, &liviaErr) {
		return liviaErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var liviaErr *Error
	if errors.As(err, &liviaErr) {
		return liviaErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
