package repository

import (
	"fmt"
	"sync"

	"vehicle-auctions/internal/auctionerrors"
	"vehicle-auctions/internal/models"
)

// SnapshotStore holds the last fetched auction and vehicle snapshots
type SnapshotStore interface {
	ReplaceAuctions(auctions []models.Auction)
	GetAuction(auctionID int64) (models.Auction, error)
	ListAuctions() []models.Auction
	ReplaceVehicles(vehicles []models.Vehicle)
	ListVehicles() []models.Vehicle
	MarkStale(auctionID int64)
	IsStale(auctionID int64) bool
}

// MemoryRepo is a concurrency-safe in-memory implementation of SnapshotStore.
// Snapshots are replaced wholesale, never patched field by field.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[int64]models.Auction // key: auctionID -> value: last fetched snapshot
	order    []int64                  // backend order of auction ids
	stale    map[int64]struct{}       // auctions changed by a local submission since the last fetch
	vehicles []models.Vehicle
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[int64]models.Auction),
		stale:    make(map[int64]struct{}),
	}
}

// ReplaceAuctions swaps in a fresh listing and clears all stale marks
func (r *MemoryRepo) ReplaceAuctions(auctions []models.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.auctions = make(map[int64]models.Auction, len(auctions))
	r.order = make([]int64, 0, len(auctions))
	r.stale = make(map[int64]struct{})
	for _, a := range auctions {
		if _, dup := r.auctions[a.ID]; !dup {
			r.order = append(r.order, a.ID)
		}
		r.auctions[a.ID] = a
	}
}

// GetAuction returns the snapshot for one auction
func (r *MemoryRepo) GetAuction(auctionID int64) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("get auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// ListAuctions returns all snapshots in backend order
func (r *MemoryRepo) ListAuctions() []models.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]models.Auction, 0, len(r.order))
	for _, id := range r.order {
		auctions = append(auctions, r.auctions[id])
	}
	return auctions
}

func (r *MemoryRepo) ReplaceVehicles(vehicles []models.Vehicle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles = append([]models.Vehicle(nil), vehicles...)
}

func (r *MemoryRepo) ListVehicles() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Vehicle(nil), r.vehicles...)
}

// MarkStale flags an auction for refetch after a successful bid or restart
func (r *MemoryRepo) MarkStale(auctionID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stale[auctionID] = struct{}{}
}

// IsStale reports whether the auction needs a refetch. Unknown auctions are stale.
func (r *MemoryRepo) IsStale(auctionID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return true
	}
	_, stale := r.stale[auctionID]
	return stale
}
