package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryRender   Category = "render"
	CategoryResource Category = "resource"
	CategoryPublish  Category = "publish"
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
)

// AtriumError is a structured error with a code, suggestion, and documentation link.
type AtriumError struct {
	// Code is a unique error identifier (e.g., "A001").
	Code string

	// Category is the error type (render, resource, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *AtriumError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AtriumError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *AtriumError) WithDetail(d string) *AtriumError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *AtriumError) WithSuggestion(s string) *AtriumError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *AtriumError) Wrap(err error) *AtriumError {
	e.Wrapped = err
	return e
}

// New creates an AtriumError from a registered error code.
func New(code string) *AtriumError {
	template, ok := registry[code]
	if !ok {
		return &AtriumError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &AtriumError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new AtriumError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *AtriumError {
	return &AtriumError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an AtriumError.
func FromError(err error, code string) *AtriumError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*AtriumError); ok {
		return ae
	}
	return New(code).Wrap(err)
}
