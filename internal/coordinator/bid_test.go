package coordinator

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"vehicle-auctions/internal/auctionerrors"
	"vehicle-auctions/internal/backend"
	"vehicle-auctions/internal/models"
	"vehicle-auctions/internal/repository"
	"vehicle-auctions/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	alice = session.Session{Token: "tok-alice", Username: "alice", Authenticated: true}
	bob   = session.Session{Token: "tok-bob", Username: "bob", Authenticated: true}
	carol = session.Session{Token: "tok-carol", Username: "carol", Authenticated: true}
)

// Tests SubmitBid
func TestBidCoordinator_SubmitBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := backend.NewMockAPI(ctrl)
	coord := NewBidCoordinator(mockAPI)

	// Table-driven test cases
	tests := []struct {
		name          string
		amount        string
		sess          session.Session
		mockSetup     func()
		expectedError error
		serverMessage string
	}{
		{
			name:   "accepted",
			amount: "1500",
			sess:   bob,
			mockSetup: func() {
				mockAPI.EXPECT().PlaceBid(gomock.Any(), "tok-bob", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, bid models.Bid) error {
						require.Equal(t, int64(42), bid.AuctionID)
						require.True(t, bid.Amount.Equal(decimal.NewFromInt(1500)))
						return nil
					})
			},
		},
		{
			name:   "fractional_amount_with_spaces",
			amount: " 99.95 ",
			sess:   bob,
			mockSetup: func() {
				mockAPI.EXPECT().PlaceBid(gomock.Any(), "tok-bob", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, bid models.Bid) error {
						require.Equal(t, "99.95", bid.Amount.String())
						return nil
					})
			},
		},
		{
			name:          "unauthenticated_never_calls_backend",
			amount:        "100",
			sess:          session.Session{Username: "bob"},
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrUnauthenticated,
		},
		{
			name:          "zero_amount",
			amount:        "0",
			sess:          bob,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "negative_amount",
			amount:        "-5",
			sess:          bob,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "non_numeric_amount",
			amount:        "lots",
			sess:          bob,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidAmount,
		},
		{
			name:          "empty_amount",
			amount:        "",
			sess:          bob,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidAmount,
		},
		{
			name:   "rejected_bid_too_low",
			amount: "10",
			sess:   bob,
			mockSetup: func() {
				mockAPI.EXPECT().PlaceBid(gomock.Any(), "tok-bob", gomock.Any()).
					Return(&backend.StatusError{Method: http.MethodPost, Endpoint: backend.BidsEndpoint, StatusCode: http.StatusBadRequest, Body: "Bid too low"})
			},
			expectedError: auctionerrors.ErrRejected,
			serverMessage: "Bid too low",
		},
		{
			name:   "rejected_unauthorized_by_backend",
			amount: "10",
			sess:   bob,
			mockSetup: func() {
				mockAPI.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&backend.StatusError{StatusCode: http.StatusUnauthorized, Body: ""})
			},
			expectedError: auctionerrors.ErrRejected,
			serverMessage: "",
		},
		{
			name:   "network_failure",
			amount: "10",
			sess:   bob,
			mockSetup: func() {
				mockAPI.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&backend.TransportError{Method: http.MethodPost, Endpoint: backend.BidsEndpoint, Err: errors.New("connection refused")})
			},
			expectedError: auctionerrors.ErrNetwork,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			err := coord.SubmitBid(context.Background(), 42, tc.amount, tc.sess)
			if tc.expectedError == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.expectedError), "got %v", err)

			msg, ok := auctionerrors.ServerMessage(err)
			require.Equal(t, errors.Is(err, auctionerrors.ErrRejected), ok)
			if ok {
				require.Equal(t, tc.serverMessage, msg)
			}
		})
	}
}

func TestBidCoordinator_MarksSnapshotStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := backend.NewMockAPI(ctrl)
	repo := repository.NewMemoryRepo()
	repo.ReplaceAuctions([]models.Auction{{ID: 1}, {ID: 2}})
	coord := NewBidCoordinator(mockAPI, WithStaleMarker(repo))

	mockAPI.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, coord.SubmitBid(context.Background(), 1, "10", bob))
	require.True(t, repo.IsStale(1))
	require.False(t, repo.IsStale(2))

	// Failures leave the snapshot alone
	mockAPI.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).Return(&backend.StatusError{StatusCode: http.StatusBadRequest})
	require.Error(t, coord.SubmitBid(context.Background(), 2, "10", bob))
	require.False(t, repo.IsStale(2))
}

func TestBidCoordinator_CallerCancellationDoesNotAbortRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := backend.NewMockAPI(ctrl)
	coord := NewBidCoordinator(mockAPI)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockAPI.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ models.Bid) error {
			require.NoError(t, ctx.Err())
			return nil
		})

	require.NoError(t, coord.SubmitBid(ctx, 1, "10", bob))
}

func TestBidCoordinator_InFlightGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := backend.NewMockAPI(ctrl)
	guard := NewInFlight()
	bids := NewBidCoordinator(mockAPI, WithInFlight(guard))
	restarts := NewRestartCoordinator(mockAPI, WithInFlight(guard))

	entered := make(chan struct{})
	unblock := make(chan struct{})
	mockAPI.EXPECT().PlaceBid(gomock.Any(), "tok-bob", gomock.Any()).
		DoAndReturn(func(context.Context, string, models.Bid) error {
			close(entered)
			<-unblock
			return nil
		}).Times(1)

	done := make(chan error, 1)
	go func() {
		done <- bids.SubmitBid(context.Background(), 7, "100", bob)
	}()
	<-entered

	// Same session, same auction: a second bid and a restart are refused without a call
	err := bids.SubmitBid(context.Background(), 7, "200", bob)
	require.True(t, errors.Is(err, auctionerrors.ErrSubmissionInFlight))
	err = restarts.RestartAuction(context.Background(), 7, "day", bob)
	require.True(t, errors.Is(err, auctionerrors.ErrSubmissionInFlight))
	require.True(t, guard.Pending(bob, 7))
	require.False(t, guard.Pending(carol, 7))

	close(unblock)
	require.NoError(t, <-done)
	require.False(t, guard.Pending(bob, 7))

	// Guard is released; a new submission goes through
	mockAPI.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, bids.SubmitBid(context.Background(), 7, "300", bob))
}

func TestBidCoordinator_OtherSessionsBidConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := backend.NewMockAPI(ctrl)
	bids := NewBidCoordinator(mockAPI)

	entered := make(chan struct{})
	unblock := make(chan struct{})
	mockAPI.EXPECT().PlaceBid(gomock.Any(), "tok-bob", gomock.Any()).
		DoAndReturn(func(context.Context, string, models.Bid) error {
			close(entered)
			<-unblock
			return nil
		}).Times(1)
	mockAPI.EXPECT().PlaceBid(gomock.Any(), "tok-carol", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, bid models.Bid) error {
			require.Equal(t, int64(7), bid.AuctionID)
			require.Equal(t, "150", bid.Amount.String())
			return nil
		}).Times(1)

	done := make(chan error, 1)
	go func() {
		done <- bids.SubmitBid(context.Background(), 7, "120", bob)
	}()
	<-entered

	// bob's bid is still pending; carol's goes straight to the backend
	require.NoError(t, bids.SubmitBid(context.Background(), 7, "150", carol))

	close(unblock)
	require.NoError(t, <-done)
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		amount  string
		want    string
		wantErr bool
	}{
		{name: "integer", amount: "100", want: "100"},
		{name: "decimal", amount: "100.25", want: "100.25"},
		{name: "padded", amount: "  7 ", want: "7"},
		{name: "smallest_positive", amount: "0.01", want: "0.01"},
		{name: "zero", amount: "0", wantErr: true},
		{name: "negative_zero", amount: "-0.00", wantErr: true},
		{name: "negative", amount: "-5", wantErr: true},
		{name: "text", amount: "ten", wantErr: true},
		{name: "empty", amount: "", wantErr: true},
		{name: "nan", amount: "NaN", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseAmount(tc.amount)
			if tc.wantErr {
				require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestInFlight_ReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	guard := NewInFlight()
	release, err := guard.Acquire(bob, 1, ActionBid)
	require.NoError(t, err)

	_, err = guard.Acquire(bob, 1, ActionRestart)
	require.True(t, errors.Is(err, auctionerrors.ErrSubmissionInFlight))

	// Other auctions and other sessions are independent
	releaseOther, err := guard.Acquire(bob, 2, ActionBid)
	require.NoError(t, err)
	releaseOther()
	releaseCarol, err := guard.Acquire(carol, 1, ActionBid)
	require.NoError(t, err)
	releaseCarol()

	release()
	release()
	require.False(t, guard.Pending(bob, 1))

	_, err = guard.Acquire(bob, 1, ActionBid)
	require.NoError(t, err)
}

func TestInFlight_KeysSessionsWithoutTokenByUsername(t *testing.T) {
	t.Parallel()

	guard := NewInFlight()
	_, err := guard.Acquire(session.Session{Username: "dave"}, 3, ActionBid)
	require.NoError(t, err)
	require.True(t, guard.Pending(session.Session{Username: "dave"}, 3))
	require.False(t, guard.Pending(session.Session{Username: "erin"}, 3))
}

func TestBidCoordinator_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := backend.NewMockAPI(ctrl)
	rec := &recordingMetrics{}
	coord := NewBidCoordinator(mockAPI, WithMetrics(rec))

	mockAPI.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockAPI.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).Return(&backend.StatusError{StatusCode: http.StatusBadRequest})
	mockAPI.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).Return(&backend.TransportError{Err: errors.New("timeout")})

	_ = coord.SubmitBid(context.Background(), 1, "10", bob)
	_ = coord.SubmitBid(context.Background(), 1, "10", bob)
	_ = coord.SubmitBid(context.Background(), 1, "10", bob)
	_ = coord.SubmitBid(context.Background(), 1, "0", bob)

	require.Equal(t, []string{"bid/success", "bid/rejected", "bid/network"}, rec.submissions)
}

type recordingMetrics struct {
	submissions []string
}

func (r *recordingMetrics) RecordSubmission(action, outcome string, _ time.Duration) {
	r.submissions = append(r.submissions, action+"/"+outcome)
}

func (r *recordingMetrics) RecordHTTPRequest(string, string, int, time.Duration) {}
