package coordinator

import (
	"fmt"
	"sync"

	"vehicle-auctions/internal/auctionerrors"
	"vehicle-auctions/internal/session"
)

type pendingKey struct {
	owner     string
	auctionID int64
}

// InFlight tracks submissions awaiting the backend. At most one bid or
// restart per (session, auction) is pending at a time; other sessions are
// not affected.
type InFlight struct {
	mu      sync.Mutex
	pending map[pendingKey]Action
}

func NewInFlight() *InFlight {
	return &InFlight{pending: make(map[pendingKey]Action)}
}

// owner identifies a session by its token, or its username when it has none
func owner(sess session.Session) string {
	if sess.Token != "" {
		return sess.Token
	}
	return sess.Username
}

// Acquire claims auctionID for sess and action. The returned release must be
// called once the submission settles.
func (f *InFlight) Acquire(sess session.Session, auctionID int64, action Action) (release func(), err error) {
	key := pendingKey{owner: owner(sess), auctionID: auctionID}

	f.mu.Lock()
	defer f.mu.Unlock()

	if current, busy := f.pending[key]; busy {
		return nil, fmt.Errorf("auction %d has a pending %s: %w", auctionID, current, auctionerrors.ErrSubmissionInFlight)
	}
	f.pending[key] = action

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.pending, key)
			f.mu.Unlock()
		})
	}, nil
}

// Pending reports whether sess has a submission in flight for auctionID
func (f *InFlight) Pending(sess session.Session, auctionID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, busy := f.pending[pendingKey{owner: owner(sess), auctionID: auctionID}]
	return busy
}
