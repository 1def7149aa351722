// Package github fetches public GitHub profile data over the REST API and
// turns it into contribution and activity analyses.
package github

import "fmt"

// ErrorKind classifies provider failures so callers can branch on the cause.
type ErrorKind string

const (
	KindNotFound    ErrorKind = "not_found"
	KindRateLimited ErrorKind = "rate_limit"
	KindTimeout     ErrorKind = "timeout"
	KindConnection  ErrorKind = "connection"
	KindNoRepos     ErrorKind = "no_repos"
	KindUnknown     ErrorKind = "unknown"
)

// Error is a provider failure with a user-facing message.
type Error struct {
	Kind     ErrorKind
	Username string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("github: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("github: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf extracts the error kind, or KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	if ghErr, ok := err.(*Error); ok {
		return ghErr.Kind
	}
	return KindUnknown
}
