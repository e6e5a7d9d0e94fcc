package main

import "fmt"

// Exit codes for the aura CLI.
const (
	ExitOK             = 0 // Success.
	ExitInvalidArgs    = 1 // Invalid arguments or unreadable configuration.
	ExitMissingContent = 2 // One or more tooltip ids have no content.
)

type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
