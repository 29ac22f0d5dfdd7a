// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchError represents a failure to retrieve the source page
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("failed to fetch URL: %s", e.Status)
	}
	return fmt.Sprintf("failed to fetch %s", e.URL)
}

// ExtractionError represents insufficient extractable content after all fallback stages
type ExtractionError struct {
	URL           string
	ContentLength int
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	return "could not extract enough content from this URL; the page might be dynamically loaded, require login, or have insufficient text content"
}

// Details returns a caller-facing description of the failure
func (e *ExtractionError) Details() string {
	return fmt.Sprintf("Extracted %d characters. Please try a different URL or ensure the page is publicly accessible.", e.ContentLength)
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ForbiddenError represents an operation on a resource the caller does not own
type ForbiddenError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("not allowed to modify %s %s", e.Resource, e.ID)
}

// UpstreamServiceError represents an error from a generative backend
type UpstreamServiceError struct {
	Service    string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *UpstreamServiceError) Error() string {
	return fmt.Sprintf("upstream error from %s: %d - %s", e.Service, e.StatusCode, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsExtraction checks if an error is an ExtractionError
func IsExtraction(err error) bool {
	var extractionErr *ExtractionError
	return errors.As(err, &extractionErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsUpstreamService checks if an error is an UpstreamServiceError
func IsUpstreamService(err error) bool {
	var upstreamErr *UpstreamServiceError
	return errors.As(err, &upstreamErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
