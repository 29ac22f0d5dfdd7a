// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"
	"net/http"

	"cardforge-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsForbidden(err) {
		return huma.Error403Forbidden(err.Error())
	}

	// Insufficient extractable content is a client-data problem, not a
	// server failure; the details string explains what was extracted
	var extractionErr *errors.ExtractionError
	if stderrors.As(err, &extractionErr) {
		return huma.Error422UnprocessableEntity(err.Error(), &huma.ErrorDetail{
			Message: extractionErr.Details(),
		})
	}

	// Unreachable or non-2xx source pages surface as a generic failure
	if errors.IsFetch(err) {
		return huma.Error500InternalServerError(err.Error())
	}

	// Generative backend failures carry the upstream status through
	var upstreamErr *errors.UpstreamServiceError
	if stderrors.As(err, &upstreamErr) {
		status := upstreamErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusInternalServerError
		}
		return huma.NewError(status, upstreamErr.Message)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
