package lifecycle

import "vehicle-auctions/internal/models"

// Phase is the client-side lifecycle of an auction snapshot
type Phase string

const (
	PhasePending    Phase = "pending"
	PhaseActive     Phase = "active"
	PhaseEnded      Phase = "ended"
	PhaseRestarting Phase = "restarting"
)

// Derive computes the phase from status, end time and now. An elapsed end
// time wins over any status; otherwise only STARTED is active.
func Derive(status models.AuctionStatus, endTimeMs, nowMs int64) Phase {
	switch {
	case IsEnded(float64(endTimeMs), nowMs):
		return PhaseEnded
	case status == models.StatusStarted:
		return PhaseActive
	case status == models.StatusRestarting:
		return PhaseRestarting
	default:
		return PhasePending
	}
}

// Of derives the phase of an auction snapshot
func Of(a models.Auction, nowMs int64) Phase {
	return Derive(a.Status, a.EndTime, nowMs)
}
