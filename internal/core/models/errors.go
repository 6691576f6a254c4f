package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is reported by storage reads when the cached reference files
// are absent or unreadable. Callers fall back to a remote fetch.
var ErrNotFound = errors.New("reference data not found in storage")

// RemoteCallError is a transport-level failure (connection, DNS, non-2xx)
// against one of the remote endpoints.
type RemoteCallError struct {
	Endpoint string
	Err      error
}

func (e RemoteCallError) Error() string {
	return fmt.Sprintf("remote call to %s endpoint failed: %v", e.Endpoint, e.Err)
}

func (e RemoteCallError) Unwrap() error {
	return e.Err
}

// MalformedResponseError means the response body did not decode into the
// expected shape. Indicates an upstream API change, never defaulted over.
type MalformedResponseError struct {
	Shape string
	Err   error
}

func (e MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %v", e.Shape, e.Err)
}

func (e MalformedResponseError) Unwrap() error {
	return e.Err
}

// NoDataError means a well-formed response carried no usable data, e.g. an
// account with an empty match history. An expected outcome, not a bug.
type NoDataError struct {
	What string
}

func (e NoDataError) Error() string {
	return fmt.Sprintf("no data found: expected %s but found none", e.What)
}

// PlayerNotFoundError means the viewed account is missing from a fetched
// match's player list. Always a data-consistency bug.
type PlayerNotFoundError struct {
	AccountID int64
}

func (e PlayerNotFoundError) Error() string {
	return fmt.Sprintf("player %d not found in match players", e.AccountID)
}
