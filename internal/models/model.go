package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrMalformedEndTime is returned when an auction's endTime cannot be normalized
// to epoch milliseconds.
var ErrMalformedEndTime = errors.New("malformed auction end time")

// AuctionStatus is the backend's lifecycle marker for an auction
type AuctionStatus string

const (
	StatusStarted    AuctionStatus = "STARTED"
	StatusRestarting AuctionStatus = "RESTARTING"
	StatusEnded      AuctionStatus = "ENDED"
)

// Vehicle represents a listed vehicle. Read-only from the client's point of view.
type Vehicle struct {
	ID             int64    `json:"id" validate:"gt=0"`
	Year           int      `json:"year"`
	Make           string   `json:"make"`
	Model          string   `json:"model"`
	SellerUsername string   `json:"sellerUsername"`
	Images         []string `json:"images"`
	OnSale         bool     `json:"onSale"`
	Deleted        bool     `json:"deleted"`
}

// Title returns the "year make model" label shown on cards
func (v Vehicle) Title() string {
	return strings.TrimSpace(fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model))
}

// PrimaryImage returns the first image reference, or "" when the vehicle has none
func (v Vehicle) PrimaryImage() string {
	if len(v.Images) == 0 {
		return ""
	}
	return v.Images[0]
}

// Auction is a snapshot of a time-bounded sale attached to one vehicle.
// EndTime is epoch milliseconds, normalized once at decode time.
type Auction struct {
	ID            int64           `json:"id" validate:"gt=0"`
	Vehicle       Vehicle         `json:"vehicle"`
	AuctionOwner  string          `json:"auctionOwner"`
	EndTime       int64           `json:"endTime"`
	CurrentMaxBid decimal.Decimal `json:"currentMaxBid"`
	Status        AuctionStatus   `json:"auctionStatus"`
}

// OwnerMismatch reports whether the vehicle seller and the auction owner disagree
func (a Auction) OwnerMismatch() bool {
	return a.Vehicle.SellerUsername != a.AuctionOwner
}

// UnmarshalJSON accepts endTime as either a JSON number or a numeric string.
func (a *Auction) UnmarshalJSON(data []byte) error {
	type plain Auction
	var raw struct {
		plain
		EndTime json.RawMessage `json:"endTime"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	endTime, err := ParseEndTime(raw.EndTime)
	if err != nil {
		return fmt.Errorf("auction %d: %w", raw.ID, err)
	}

	*a = Auction(raw.plain)
	a.EndTime = endTime
	return nil
}

// ParseEndTime normalizes a raw endTime value (number or numeric string) into
// epoch milliseconds. Non-finite or non-numeric input is rejected.
func ParseEndTime(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, fmt.Errorf("%w: missing", ErrMalformedEndTime)
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedEndTime, err)
		}
		text = strings.TrimSpace(text)
	}

	if ms, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ms, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedEndTime, text)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformedEndTime, text)
	}
	return int64(f), nil
}

// Bid is a transient command for one submission attempt
type Bid struct {
	AuctionID int64           `json:"auctionId"`
	Amount    decimal.Decimal `json:"bidValue"`
}

// Duration is the restart length selected by an auction owner
type Duration string

const (
	DurationMinute Duration = "minute"
	DurationHour   Duration = "hour"
	DurationDay    Duration = "day"
	DurationWeek   Duration = "week"
	DurationMonth  Duration = "month"

	// DefaultDuration is preselected when the restart dialog opens
	DefaultDuration = DurationWeek
)

var durations = map[Duration]time.Duration{
	DurationMinute: time.Minute,
	DurationHour:   time.Hour,
	DurationDay:    24 * time.Hour,
	DurationWeek:   7 * 24 * time.Hour,
	DurationMonth:  30 * 24 * time.Hour,
}

// Durations lists the closed set in ascending order
func Durations() []Duration {
	return []Duration{DurationMinute, DurationHour, DurationDay, DurationWeek, DurationMonth}
}

// ParseDuration returns the Duration for s, exact match only
func ParseDuration(s string) (Duration, bool) {
	d := Duration(s)
	_, ok := durations[d]
	return d, ok
}

// Approx is a display hint only; the backend computes the real end time.
func (d Duration) Approx() time.Duration {
	return durations[d]
}

// RestartRequest is a transient command for one restart attempt
type RestartRequest struct {
	AuctionID int64    `json:"auctionId"`
	Duration  Duration `json:"duration"`
}
