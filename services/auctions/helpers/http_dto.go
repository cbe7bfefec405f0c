package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"vehicle-auctions/internal/coordinator"
	"vehicle-auctions/internal/gate"
)

// Amount accepts a bid amount sent either as a JSON string or a JSON number
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// Request/Response DTOs
type PlaceBidRequest struct {
	Amount Amount `json:"amount" binding:"required"`
}

type RestartRequest struct {
	Duration string `json:"duration"`
}

type AuctionCard struct {
	ID            int64         `json:"id"`
	VehicleID     int64         `json:"vehicle_id"`
	Title         string        `json:"title"`
	ImageURL      string        `json:"image_url,omitempty"`
	Seller        string        `json:"seller"`
	Status        string        `json:"status"`
	EndTime       int64         `json:"end_time"`
	TimeLeft      string        `json:"time_left"`
	CurrentMaxBid string        `json:"current_max_bid"`
	Decision      gate.Decision `json:"decision"`
}

type VehicleCard struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url,omitempty"`
	Seller   string `json:"seller"`
	OnSale   bool   `json:"on_sale"`
}

type ActionResponse struct {
	AuctionID    int64                    `json:"auction_id"`
	Duration     string                   `json:"duration,omitempty"`
	Notification coordinator.Notification `json:"notification"`
}
