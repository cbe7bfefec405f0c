package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"vehicle-auctions/internal/coordinator"
	"vehicle-auctions/internal/gate"
	"vehicle-auctions/internal/models"
	"vehicle-auctions/internal/session"
	"vehicle-auctions/services/auctions/helpers"
	"vehicle-auctions/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	ListAuctions(ctx context.Context) ([]models.Auction, error)
	GetAuction(ctx context.Context, auctionID int64) (models.Auction, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	PlaceBid(ctx context.Context, auctionID int64, amount string, sess session.Session) error
	RestartAuction(ctx context.Context, auctionID int64, duration string, sess session.Session) error
	Evaluate(a models.Auction, username string, nowMs int64) gate.Decision
	NowMillis() int64
}

type AuctionHandler struct {
	service      AuctionServiceInterface
	imageBaseURL string
}

func NewAuctionHandler(service AuctionServiceInterface, imageBaseURL string) *AuctionHandler {
	return &AuctionHandler{service: service, imageBaseURL: imageBaseURL}
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error retrieving auctions", map[string]any{"error": err.Error()})
		return
	}

	sess := helpers.CurrentSession(c)
	nowMs := h.service.NowMillis()
	cards := make([]helpers.AuctionCard, 0, len(auctions))
	for _, a := range auctions {
		cards = append(cards, helpers.NewAuctionCard(a, h.imageBaseURL, nowMs, h.service.Evaluate(a, sess.Username, nowMs)))
	}

	utils.JSONResponse(c, http.StatusOK, cards, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"username": sess.Username,
		"count":    len(cards),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid auction id")
		return
	}

	a, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	sess := helpers.CurrentSession(c)
	nowMs := h.service.NowMillis()
	card := helpers.NewAuctionCard(a, h.imageBaseURL, nowMs, h.service.Evaluate(a, sess.Username, nowMs))
	utils.JSONResponse(c, http.StatusOK, card, "auction retrieved successfully")
}

// ListVehiclesHandler handles GET /vehicles
func (h *AuctionHandler) ListVehiclesHandler(c *gin.Context) {
	vehicles, err := h.service.ListVehicles(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListVehiclesHandler: error retrieving vehicles", map[string]any{"error": err.Error()})
		return
	}

	cards := make([]helpers.VehicleCard, 0, len(vehicles))
	for _, v := range vehicles {
		cards = append(cards, helpers.NewVehicleCard(v, h.imageBaseURL))
	}

	utils.JSONResponse(c, http.StatusOK, cards, "vehicles retrieved successfully")
	helpers.LogSuccess("ListVehiclesHandler", "vehicles retrieved successfully", map[string]any{"count": len(cards)})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid auction id")
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	sess := helpers.CurrentSession(c)
	err = h.service.PlaceBid(c.Request.Context(), auctionID, string(req.Amount), sess)
	resp := helpers.ActionResponse{
		AuctionID:    auctionID,
		Notification: coordinator.Notify(coordinator.ActionBid, err),
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONErrorWithData(c, status, err, message, resp)
		utils.Warn("PlaceBidHandler: bid not placed", map[string]any{
			"auction_id": auctionID,
			"username":   sess.Username,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id": auctionID,
		"username":   sess.Username,
	})
}

// RestartAuctionHandler handles POST /auctions/:auction_id/restart. The body
// is optional; without a duration the default one is used.
func (h *AuctionHandler) RestartAuctionHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid auction id")
		return
	}

	var req helpers.RestartRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		helpers.HandleBindError(c, "RestartAuctionHandler", err)
		return
	}

	sess := helpers.CurrentSession(c)
	duration := req.Duration
	if duration == "" {
		duration = string(models.DefaultDuration)
	}

	err = h.service.RestartAuction(c.Request.Context(), auctionID, duration, sess)
	resp := helpers.ActionResponse{
		AuctionID:    auctionID,
		Duration:     duration,
		Notification: coordinator.Notify(coordinator.ActionRestart, err),
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONErrorWithData(c, status, err, message, resp)
		utils.Warn("RestartAuctionHandler: auction not restarted", map[string]any{
			"auction_id": auctionID,
			"username":   sess.Username,
			"duration":   duration,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction restarted successfully")
	helpers.LogSuccess("RestartAuctionHandler", "auction restarted successfully", map[string]any{
		"auction_id": auctionID,
		"username":   sess.Username,
		"duration":   duration,
	})
}
