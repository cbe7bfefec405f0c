package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"vehicle-auctions/internal/auctionerrors"
	"vehicle-auctions/internal/gate"
	"vehicle-auctions/internal/lifecycle"
	"vehicle-auctions/internal/models"
	"vehicle-auctions/internal/session"
	"vehicle-auctions/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, auctionerrors.ErrRestartNotAllowed):
		return http.StatusForbidden, "restart not allowed"
	case errors.Is(err, auctionerrors.ErrSubmissionInFlight):
		return http.StatusConflict, "submission already in flight"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrRejected):
		return http.StatusUnprocessableEntity, "rejected by backend"
	case errors.Is(err, auctionerrors.ErrNetwork):
		return http.StatusBadGateway, "backend unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ParseAuctionID reads the :auction_id path parameter
func ParseAuctionID(c *gin.Context) (int64, error) {
	raw := c.Param("auction_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("auction id %q: %w", raw, auctionerrors.ErrInvalidInput)
	}
	return id, nil
}

// SetSession stores the request's session in the gin context
func SetSession(c *gin.Context, sess session.Session) {
	c.Set(sessionKey, sess)
}

// CurrentSession returns the session stored by SetSession, or Anonymous
func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(session.Session); ok {
			return sess
		}
	}
	return session.Anonymous
}

// ImageURL builds <base>/<vehicleID>/<first image>, or "" without images
func ImageURL(base string, v models.Vehicle) string {
	img := v.PrimaryImage()
	if img == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%s", strings.TrimRight(base, "/"), v.ID, url.PathEscape(img))
}

// NewAuctionCard assembles the card the collection view renders
func NewAuctionCard(a models.Auction, imageBase string, nowMs int64, decision gate.Decision) AuctionCard {
	return AuctionCard{
		ID:            a.ID,
		VehicleID:     a.Vehicle.ID,
		Title:         a.Vehicle.Title(),
		ImageURL:      ImageURL(imageBase, a.Vehicle),
		Seller:        a.Vehicle.SellerUsername,
		Status:        string(a.Status),
		EndTime:       a.EndTime,
		TimeLeft:      lifecycle.TimeLeft(a.EndTime, nowMs),
		CurrentMaxBid: a.CurrentMaxBid.String(),
		Decision:      decision,
	}
}

func NewVehicleCard(v models.Vehicle, imageBase string) VehicleCard {
	return VehicleCard{
		ID:       v.ID,
		Title:    v.Title(),
		ImageURL: ImageURL(imageBase, v),
		Seller:   v.SellerUsername,
		OnSale:   v.OnSale,
	}
}
