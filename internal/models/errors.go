package models

// ErrorType represents different categories of errors in the system
type ErrorType string

const (
	ErrTypeValidation ErrorType = "validation"
	ErrTypeNotFound   ErrorType = "not_found"
	ErrTypeStorage    ErrorType = "storage"
	ErrTypeSystem     ErrorType = "system"
)

// ShowcaseError represents a structured error with type and context
type ShowcaseError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *ShowcaseError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error
func (e *ShowcaseError) Unwrap() error {
	return e.Cause
}

// NewShowcaseError creates a new ShowcaseError with the given type and message
func NewShowcaseError(errType ErrorType, message string) *ShowcaseError {
	return &ShowcaseError{
		Type:    errType,
		Message: message,
	}
}

// NewShowcaseErrorWithCause creates a new ShowcaseError with an underlying cause
func NewShowcaseErrorWithCause(errType ErrorType, message string, cause error) *ShowcaseError {
	e := &ShowcaseError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}
