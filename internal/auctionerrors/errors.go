package auctionerrors

import (
	"errors"
	"fmt"
)

// Local errors, resolved before any network call
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidAmount      = fmt.Errorf("%w: bid amount must be a positive number", ErrInvalidInput)
	ErrInvalidDuration    = fmt.Errorf("%w: duration must be one of minute, hour, day, week, month", ErrInvalidInput)
	ErrRestartNotAllowed  = errors.New("restart not allowed for this auction")
	ErrSubmissionInFlight = errors.New("a submission for this auction is already in flight")
	ErrAuctionNotFound    = errors.New("auction not found")
)

// Remote errors
var (
	ErrRejected = errors.New("rejected by backend")
	ErrNetwork  = errors.New("network error")
)

// RejectedError carries the backend's response body verbatim
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("rejected by backend (%d): %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrRejected) match any RejectedError
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

// ServerMessage returns the backend message carried by err, if any
func ServerMessage(err error) (string, bool) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message, true
	}
	return "", false
}
