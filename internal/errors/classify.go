package errors

import (
	"context"
	"errors"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
	SeverityFatal                        // Application must exit
)

// ErrorAction represents a user action that can be taken in response to an error.
type ErrorAction struct {
	Label   string
	Handler func()
}

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string        // Short user-facing title
	Message  string        // Detailed user-facing message
	Recovery []string      // Suggested actions (bullet points)
	Actions  []ErrorAction // Buttons for user actions
	Details  string        // Technical details (collapsed by default)
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// ClassifyError converts a standard error into a UIError with appropriate
// severity, title, message, and recovery suggestions.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	// Check if already a UIError
	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	// Context errors
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The server took too long to respond.",
			Recovery: []string{"Try again", "Increase the timeout setting"},
			Actions:  []ErrorAction{{Label: "Retry"}, {Label: "Settings"}},
		}

	case errors.Is(err, context.Canceled):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Request Cancelled",
			Message:  "The operation was cancelled.",
			Recovery: []string{},
		}

	case errors.Is(err, ErrAPIUnavailable):
		return &UIError{
			Err:      err,
			Severity: SeverityWarning,
			Title:    "Scoring Service Unavailable",
			Message:  "Showing the last known dashboard figures.",
			Recovery: []string{
				"Check that the scoring service is running",
				"Verify the API address in preferences",
			},
			Actions: []ErrorAction{{Label: "Retry"}},
		}

	case errors.Is(err, ErrSnapshotNotFound):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "No Cached Data",
			Message:  "No dashboard figures have been saved yet.",
			Recovery: []string{},
		}

	case errors.Is(err, ErrInvalidConfig):
		return &UIError{
			Err:      err,
			Severity: SeverityFatal,
			Title:    "Invalid Configuration",
			Message:  "The configuration file could not be applied.",
			Recovery: []string{"Fix the reported setting and restart"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrTimeout):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Operation Timeout",
			Message:  "The operation timed out.",
			Recovery: []string{"Try again"},
			Actions:  []ErrorAction{{Label: "Retry"}},
		}
	}

	// Validation errors
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the field value and try again"},
			Details:  validationErr.Error(),
		}
	}

	// Default fallback for unknown errors
	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}
