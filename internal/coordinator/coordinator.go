// Package coordinator turns bid and restart intents into backend requests
// and classifies their outcomes.
package coordinator

import (
	"errors"
	"fmt"

	"vehicle-auctions/internal/auctionerrors"
	"vehicle-auctions/internal/backend"
	"vehicle-auctions/internal/gate"
	"vehicle-auctions/internal/metrics"
)

// Action names a user intent
type Action string

const (
	ActionBid     Action = metrics.ActionBid
	ActionRestart Action = metrics.ActionRestart
)

// Submission outcomes, used as metric labels
const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeNetwork  = "network"
)

// StaleMarker is notified after a successful submission so the next read refetches
type StaleMarker interface {
	MarkStale(auctionID int64)
}

type noopMarker struct{}

func (noopMarker) MarkStale(int64) {}

type deps struct {
	inflight  *InFlight
	stale     StaleMarker
	metrics   metrics.Recorder
	evaluator *gate.Evaluator
}

// Option configures a coordinator
type Option func(*deps)

// WithInFlight shares one guard between coordinators
func WithInFlight(f *InFlight) Option {
	return func(d *deps) { d.inflight = f }
}

func WithStaleMarker(m StaleMarker) Option {
	return func(d *deps) { d.stale = m }
}

func WithMetrics(r metrics.Recorder) Option {
	return func(d *deps) { d.metrics = r }
}

// WithEvaluator sets the gate used by OpenDialog
func WithEvaluator(e *gate.Evaluator) Option {
	return func(d *deps) { d.evaluator = e }
}

func newDeps(opts []Option) deps {
	d := deps{}
	for _, opt := range opts {
		opt(&d)
	}
	if d.inflight == nil {
		d.inflight = NewInFlight()
	}
	if d.stale == nil {
		d.stale = noopMarker{}
	}
	if d.metrics == nil {
		d.metrics = metrics.NoOp{}
	}
	if d.evaluator == nil {
		d.evaluator = gate.NewEvaluator(nil)
	}
	return d
}

// classify maps a backend failure onto Rejected or Network
func classify(err error) (string, error) {
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		return outcomeRejected, &auctionerrors.RejectedError{StatusCode: statusErr.StatusCode, Message: statusErr.Body}
	}
	return outcomeNetwork, fmt.Errorf("%w: %v", auctionerrors.ErrNetwork, err)
}
