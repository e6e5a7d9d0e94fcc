package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNoCoordinator is raised when a tooltip trigger or panel is built
	// without the window's coordinator. It is a wiring bug, never a user error.
	ErrNoCoordinator = errors.New("tooltip: component must be constructed with a coordinator")

	ErrAPIUnavailable   = errors.New("scoring API unavailable")
	ErrSnapshotNotFound = errors.New("no cached dashboard snapshot")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrTimeout          = errors.New("operation timed out")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
