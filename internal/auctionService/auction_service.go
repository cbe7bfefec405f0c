package auction

import (
	"context"
	"fmt"

	"vehicle-auctions/internal/auctionerrors"
	"vehicle-auctions/internal/backend"
	"vehicle-auctions/internal/coordinator"
	"vehicle-auctions/internal/gate"
	"vehicle-auctions/internal/metrics"
	"vehicle-auctions/internal/models"
	"vehicle-auctions/internal/repository"
	"vehicle-auctions/internal/session"
	"vehicle-auctions/utils"
)

// AuctionService wires the backend, the snapshot store, the gate and both
// coordinators behind the operations the collection view needs.
type AuctionService struct {
	api       backend.API
	repo      repository.SnapshotStore
	evaluator *gate.Evaluator
	bids      *coordinator.BidCoordinator
	restarts  *coordinator.RestartCoordinator
}

// NewAuctionService creates a new AuctionService. Both coordinators share one
// in-flight guard and mark the snapshot store stale on success.
func NewAuctionService(api backend.API, repo repository.SnapshotStore, evaluator *gate.Evaluator, rec metrics.Recorder) *AuctionService {
	if evaluator == nil {
		evaluator = gate.NewEvaluator(nil)
	}
	if rec == nil {
		rec = metrics.NoOp{}
	}

	opts := []coordinator.Option{
		coordinator.WithInFlight(coordinator.NewInFlight()),
		coordinator.WithStaleMarker(repo),
		coordinator.WithMetrics(rec),
		coordinator.WithEvaluator(evaluator),
	}

	return &AuctionService{
		api:       api,
		repo:      repo,
		evaluator: evaluator,
		bids:      coordinator.NewBidCoordinator(api, opts...),
		restarts:  coordinator.NewRestartCoordinator(api, opts...),
	}
}

// ListAuctions fetches a fresh listing and replaces the stored snapshots
func (s *AuctionService) ListAuctions(ctx context.Context) ([]models.Auction, error) {
	auctions, err := s.api.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch auctions: %w: %v", auctionerrors.ErrNetwork, err)
	}
	s.repo.ReplaceAuctions(auctions)
	return s.repo.ListAuctions(), nil
}

// GetAuction returns one snapshot, refetching first when it is stale or unknown
func (s *AuctionService) GetAuction(ctx context.Context, auctionID int64) (models.Auction, error) {
	if s.repo.IsStale(auctionID) {
		if _, err := s.ListAuctions(ctx); err != nil {
			return models.Auction{}, err
		}
	}

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}
	return a, nil
}

// ListVehicles returns the vehicles that have not been deleted
func (s *AuctionService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.api.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch vehicles: %w: %v", auctionerrors.ErrNetwork, err)
	}

	visible := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !v.Deleted {
			visible = append(visible, v)
		}
	}
	s.repo.ReplaceVehicles(visible)
	return visible, nil
}

// PlaceBid submits a bid. Whether it is high enough is decided by the backend.
func (s *AuctionService) PlaceBid(ctx context.Context, auctionID int64, amount string, sess session.Session) error {
	if err := s.bids.SubmitBid(ctx, auctionID, amount, sess); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

// RestartAuction goes through the restart dialog so the gate is always
// consulted. An empty duration keeps the dialog's default. Local checks run
// before the snapshot is looked up.
func (s *AuctionService) RestartAuction(ctx context.Context, auctionID int64, duration string, sess session.Session) error {
	if !sess.Authenticated {
		return fmt.Errorf("service: restart auction %d: %w", auctionID, auctionerrors.ErrUnauthenticated)
	}
	if duration != "" {
		if _, ok := models.ParseDuration(duration); !ok {
			return fmt.Errorf("service: restart auction %d with %q: %w", auctionID, duration, auctionerrors.ErrInvalidDuration)
		}
	}

	a, err := s.GetAuction(ctx, auctionID)
	if err != nil {
		return err
	}

	dialog, err := s.restarts.OpenDialog(a, sess)
	if err != nil {
		utils.Warn("service: restart refused by gate", map[string]any{
			"auction_id": auctionID,
			"username":   sess.Username,
		})
		return fmt.Errorf("service: %w", err)
	}

	if duration != "" {
		if err := dialog.Select(duration); err != nil {
			return fmt.Errorf("service: %w", err)
		}
	}

	if err := dialog.Submit(ctx); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

// Evaluate runs the gate for username at nowMs. Callers rendering several
// values for one card pass a single NowMillis reading to keep them consistent.
func (s *AuctionService) Evaluate(a models.Auction, username string, nowMs int64) gate.Decision {
	return gate.Evaluate(a, username, nowMs)
}

func (s *AuctionService) NowMillis() int64 {
	return s.evaluator.NowMillis()
}
