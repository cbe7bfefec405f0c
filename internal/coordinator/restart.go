package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vehicle-auctions/internal/auctionerrors"
	"vehicle-auctions/internal/models"
	"vehicle-auctions/internal/session"
	"vehicle-auctions/utils"
)

// AuctionRestarter is the part of the backend the restart coordinator needs
type AuctionRestarter interface {
	RestartAuction(ctx context.Context, token string, req models.RestartRequest) error
}

type RestartCoordinator struct {
	backend AuctionRestarter
	deps
}

func NewRestartCoordinator(backend AuctionRestarter, opts ...Option) *RestartCoordinator {
	return &RestartCoordinator{backend: backend, deps: newDeps(opts)}
}

// RestartAuction asks the backend to reopen an auction for duration. The new
// end time is computed by the backend; nothing is derived locally.
func (c *RestartCoordinator) RestartAuction(ctx context.Context, auctionID int64, duration string, sess session.Session) error {
	if !sess.Authenticated {
		return fmt.Errorf("coordinator: restart auction %d: %w", auctionID, auctionerrors.ErrUnauthenticated)
	}

	d, ok := models.ParseDuration(duration)
	if !ok {
		return fmt.Errorf("coordinator: restart auction %d with %q: %w", auctionID, duration, auctionerrors.ErrInvalidDuration)
	}

	release, err := c.inflight.Acquire(sess, auctionID, ActionRestart)
	if err != nil {
		return fmt.Errorf("coordinator: restart auction: %w", err)
	}
	defer release()

	start := time.Now()
	err = c.backend.RestartAuction(context.WithoutCancel(ctx), sess.Token, models.RestartRequest{AuctionID: auctionID, Duration: d})
	if err != nil {
		outcome, classified := classify(err)
		c.metrics.RecordSubmission(string(ActionRestart), outcome, time.Since(start))
		utils.Warn("coordinator: restart failed", map[string]any{
			"auction_id": auctionID,
			"username":   sess.Username,
			"duration":   string(d),
			"outcome":    outcome,
			"error":      err.Error(),
		})
		return fmt.Errorf("coordinator: restart auction %d: %w", auctionID, classified)
	}

	c.metrics.RecordSubmission(string(ActionRestart), outcomeSuccess, time.Since(start))
	c.stale.MarkStale(auctionID)
	utils.Info("coordinator: auction restarted", map[string]any{
		"auction_id": auctionID,
		"username":   sess.Username,
		"duration":   string(d),
	})
	return nil
}

// OpenDialog returns a restart dialog for a, or ErrRestartNotAllowed when the
// gate does not grant CanRestart to the session's user right now.
func (c *RestartCoordinator) OpenDialog(a models.Auction, sess session.Session) (*RestartDialog, error) {
	decision := c.evaluator.EvaluateNow(a, sess.Username)
	if !decision.CanRestart {
		return nil, fmt.Errorf("coordinator: open restart dialog for auction %d (phase %s): %w", a.ID, decision.Phase, auctionerrors.ErrRestartNotAllowed)
	}
	return &RestartDialog{
		coordinator: c,
		auctionID:   a.ID,
		sess:        sess,
		selected:    models.DefaultDuration,
	}, nil
}

// RestartDialog holds the duration picked by the owner
type RestartDialog struct {
	coordinator *RestartCoordinator
	auctionID   int64
	sess        session.Session

	mu       sync.Mutex
	selected models.Duration
}

func (d *RestartDialog) AuctionID() int64 {
	return d.auctionID
}

// Options lists the selectable durations
func (d *RestartDialog) Options() []models.Duration {
	return models.Durations()
}

func (d *RestartDialog) Duration() models.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selected
}

// Select changes the duration; unknown values leave the selection as is
func (d *RestartDialog) Select(duration string) error {
	parsed, ok := models.ParseDuration(duration)
	if !ok {
		return fmt.Errorf("coordinator: select %q: %w", duration, auctionerrors.ErrInvalidDuration)
	}
	d.mu.Lock()
	d.selected = parsed
	d.mu.Unlock()
	return nil
}

// Submit restarts the auction with the selected duration
func (d *RestartDialog) Submit(ctx context.Context) error {
	return d.coordinator.RestartAuction(ctx, d.auctionID, string(d.Duration()), d.sess)
}
