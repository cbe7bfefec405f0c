package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vehicle-auctions/internal/models"
	"vehicle-auctions/utils"

	"github.com/go-playground/validator/v10"
)

const (
	VehiclesEndpoint       = "/vehicles"
	AuctionsEndpoint       = "/auctions"
	BidsEndpoint           = "/bids"
	RestartAuctionEndpoint = "/auctions/restart"
)

// API is the marketplace backend as seen by the client core
type API interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	ListAuctions(ctx context.Context) ([]models.Auction, error)
	PlaceBid(ctx context.Context, token string, bid models.Bid) error
	RestartAuction(ctx context.Context, token string, req models.RestartRequest) error
}

// Client implements API over HTTP
type Client struct {
	*BaseClient
	validate *validator.Validate
}

func NewClient(baseURL string, opts ...Option) *Client {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	base := NewBaseClient(baseURL, cfg.timeout)
	for key, value := range cfg.headers {
		base.SetHeader(key, value)
	}
	return &Client{
		BaseClient: base,
		validate:   validator.New(),
	}
}

// ListVehicles fetches all vehicles. Records that fail validation are skipped.
func (c *Client) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	body, err := c.Get(ctx, VehiclesEndpoint, "")
	if err != nil {
		return nil, fmt.Errorf("backend: failed to list vehicles: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("backend: failed to decode vehicles: %w", err)
	}

	vehicles := make([]models.Vehicle, 0, len(raw))
	for i, item := range raw {
		var v models.Vehicle
		if err := json.Unmarshal(item, &v); err != nil {
			utils.Warn("backend: skipping undecodable vehicle", map[string]any{"index": i, "error": err.Error()})
			continue
		}
		if err := c.validate.Struct(v); err != nil {
			utils.Warn("backend: skipping invalid vehicle", map[string]any{"index": i, "error": err.Error()})
			continue
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// ListAuctions fetches all auctions. Each endTime is normalized here; records
// with malformed end times are dropped.
func (c *Client) ListAuctions(ctx context.Context) ([]models.Auction, error) {
	body, err := c.Get(ctx, AuctionsEndpoint, "")
	if err != nil {
		return nil, fmt.Errorf("backend: failed to list auctions: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("backend: failed to decode auctions: %w", err)
	}

	auctions := make([]models.Auction, 0, len(raw))
	for i, item := range raw {
		var a models.Auction
		if err := json.Unmarshal(item, &a); err != nil {
			if errors.Is(err, models.ErrMalformedEndTime) {
				utils.Warn("backend: skipping auction with malformed end time", map[string]any{"index": i, "error": err.Error()})
				continue
			}
			utils.Warn("backend: skipping undecodable auction", map[string]any{"index": i, "error": err.Error()})
			continue
		}
		if err := c.validate.Struct(a); err != nil {
			utils.Warn("backend: skipping invalid auction", map[string]any{"index": i, "auction_id": a.ID, "error": err.Error()})
			continue
		}
		if a.OwnerMismatch() {
			utils.Warn("backend: auction owner differs from vehicle seller", map[string]any{
				"auction_id":      a.ID,
				"auction_owner":   a.AuctionOwner,
				"seller_username": a.Vehicle.SellerUsername,
			})
		}
		auctions = append(auctions, a)
	}
	return auctions, nil
}

// PlaceBid posts {auctionId, bidValue}. The response body is ignored on success.
func (c *Client) PlaceBid(ctx context.Context, token string, bid models.Bid) error {
	if _, err := c.Post(ctx, BidsEndpoint, token, bid); err != nil {
		return fmt.Errorf("backend: failed to place bid on auction %d: %w", bid.AuctionID, err)
	}
	return nil
}

// RestartAuction posts {auctionId, duration}. The response body is ignored on success.
func (c *Client) RestartAuction(ctx context.Context, token string, req models.RestartRequest) error {
	if _, err := c.Post(ctx, RestartAuctionEndpoint, token, req); err != nil {
		return fmt.Errorf("backend: failed to restart auction %d: %w", req.AuctionID, err)
	}
	return nil
}
