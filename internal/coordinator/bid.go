package coordinator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vehicle-auctions/internal/auctionerrors"
	"vehicle-auctions/internal/models"
	"vehicle-auctions/internal/session"
	"vehicle-auctions/utils"

	"github.com/shopspring/decimal"
)

// BidPlacer is the part of the backend the bid coordinator needs
type BidPlacer interface {
	PlaceBid(ctx context.Context, token string, bid models.Bid) error
}

type BidCoordinator struct {
	backend BidPlacer
	deps
}

func NewBidCoordinator(backend BidPlacer, opts ...Option) *BidCoordinator {
	return &BidCoordinator{backend: backend, deps: newDeps(opts)}
}

// ParseAmount reads a user-entered bid amount. Anything that is not a
// positive decimal number is ErrInvalidAmount.
func ParseAmount(amount string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", auctionerrors.ErrInvalidAmount, amount)
	}
	if !value.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", auctionerrors.ErrInvalidAmount, amount)
	}
	return value, nil
}

// SubmitBid places one bid for the session's user. Local checks run before
// any network call. A started request is not aborted when ctx is cancelled.
// Whether the bid beats the current maximum is the backend's call.
func (c *BidCoordinator) SubmitBid(ctx context.Context, auctionID int64, amount string, sess session.Session) error {
	if !sess.Authenticated {
		return fmt.Errorf("coordinator: submit bid on auction %d: %w", auctionID, auctionerrors.ErrUnauthenticated)
	}

	value, err := ParseAmount(amount)
	if err != nil {
		return fmt.Errorf("coordinator: submit bid on auction %d: %w", auctionID, err)
	}

	release, err := c.inflight.Acquire(sess, auctionID, ActionBid)
	if err != nil {
		return fmt.Errorf("coordinator: submit bid: %w", err)
	}
	defer release()

	start := time.Now()
	err = c.backend.PlaceBid(context.WithoutCancel(ctx), sess.Token, models.Bid{AuctionID: auctionID, Amount: value})
	if err != nil {
		outcome, classified := classify(err)
		c.metrics.RecordSubmission(string(ActionBid), outcome, time.Since(start))
		utils.Warn("coordinator: bid failed", map[string]any{
			"auction_id": auctionID,
			"username":   sess.Username,
			"outcome":    outcome,
			"error":      err.Error(),
		})
		return fmt.Errorf("coordinator: submit bid on auction %d: %w", auctionID, classified)
	}

	c.metrics.RecordSubmission(string(ActionBid), outcomeSuccess, time.Since(start))
	c.stale.MarkStale(auctionID)
	utils.Info("coordinator: bid placed", map[string]any{
		"auction_id": auctionID,
		"username":   sess.Username,
		"amount":     value.String(),
	})
	return nil
}
