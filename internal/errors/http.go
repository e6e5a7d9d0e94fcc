package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned by the scoring API client for non-2xx responses.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.Path, e.Code, http.StatusText(e.Code))
}

// ClassifyHTTPError converts a scoring API error into a UIError. Errors that
// carry no HTTP status fall back to ClassifyError.
func ClassifyHTTPError(err error) *UIError {
	if err == nil {
		return nil
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return ClassifyError(err)
	}

	details := fmt.Sprintf("HTTP %d %s (%s)", statusErr.Code, http.StatusText(statusErr.Code), statusErr.Path)

	switch {
	case statusErr.Code == http.StatusNotFound:
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "Not Found",
			Message:  "The scoring service does not know this endpoint.",
			Recovery: []string{"Check that the API address points at the AURA backend"},
			Details:  details,
		}

	case statusErr.Code == http.StatusUnauthorized || statusErr.Code == http.StatusForbidden:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Access Denied",
			Message:  "The scoring service rejected the request.",
			Recovery: []string{"Check the service access settings"},
			Details:  details,
		}

	case statusErr.Code == http.StatusTooManyRequests:
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "Rate Limited",
			Message:  "Too many requests were sent to the scoring service.",
			Recovery: []string{"Wait a moment and try again"},
			Actions:  []ErrorAction{{Label: "Retry"}},
			Details:  details,
		}

	case statusErr.Code == http.StatusGatewayTimeout:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The scoring service took too long to respond.",
			Recovery: []string{"Try again"},
			Actions:  []ErrorAction{{Label: "Retry"}},
			Details:  details,
		}

	case statusErr.Code >= 500:
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Server Error",
			Message:  "The scoring service failed to process the request.",
			Recovery: []string{"Try again", "Check the backend logs"},
			Actions:  []ErrorAction{{Label: "Retry"}},
			Details:  details,
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Response",
		Message:  "The scoring service returned an unexpected response.",
		Recovery: []string{"Try again"},
		Details:  details,
	}
}
