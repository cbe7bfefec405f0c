// Package gate decides which auction actions a user may currently perform.
package gate

import (
	"vehicle-auctions/internal/lifecycle"
	"vehicle-auctions/internal/models"
)

// Decision is the set of actions permitted for one (auction, user, time) input
type Decision struct {
	Phase      lifecycle.Phase `json:"phase"`
	IsOwner    bool            `json:"is_owner"`
	CanBid     bool            `json:"can_bid"`
	CanRestart bool            `json:"can_restart"`
	ViewOnly   bool            `json:"view_only"`
}

// IsOwner reports whether username sold the auction's vehicle. Exact,
// case-sensitive match; an empty username never owns anything.
func IsOwner(a models.Auction, username string) bool {
	return username != "" && a.Vehicle.SellerUsername == username
}

// Evaluate is pure and safe to call on every render. CanBid and CanRestart
// are computed independently of each other.
func Evaluate(a models.Auction, username string, nowMs int64) Decision {
	owner := IsOwner(a, username)
	phase := lifecycle.Of(a, nowMs)

	d := Decision{
		Phase:   phase,
		IsOwner: owner,
	}

	switch phase {
	case lifecycle.PhaseActive:
		d.CanBid = !owner
	case lifecycle.PhaseEnded:
		d.CanRestart = owner
	}

	d.ViewOnly = !d.CanBid && !d.CanRestart
	return d
}

// Evaluator binds Evaluate to a clock
type Evaluator struct {
	clock *lifecycle.Clock
}

func NewEvaluator(clock *lifecycle.Clock) *Evaluator {
	if clock == nil {
		clock = lifecycle.NewClock(nil)
	}
	return &Evaluator{clock: clock}
}

// EvaluateNow samples the clock and evaluates a
func (e *Evaluator) EvaluateNow(a models.Auction, username string) Decision {
	return Evaluate(a, username, e.clock.NowMillis())
}

// NowMillis exposes the evaluator's clock reading
func (e *Evaluator) NowMillis() int64 {
	return e.clock.NowMillis()
}
