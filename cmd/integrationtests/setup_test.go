package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	auction "vehicle-auctions/internal/auctionService"
	"vehicle-auctions/internal/backend"
	"vehicle-auctions/internal/gate"
	"vehicle-auctions/internal/metrics"
	"vehicle-auctions/internal/models"
	"vehicle-auctions/internal/repository"
	"vehicle-auctions/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const imageBase = "http://images.test/display"

// fakeMarketplace is an in-memory stand-in for the marketplace backend
type fakeMarketplace struct {
	mu       sync.Mutex
	auctions []map[string]any
	vehicles []map[string]any

	bidCalls     int
	restartCalls int
	lastRestart  models.RestartRequest
}

func (f *fakeMarketplace) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/auctions":
		writeJSON(w, http.StatusOK, f.auctions)
	case r.Method == http.MethodGet && r.URL.Path == "/vehicles":
		writeJSON(w, http.StatusOK, f.vehicles)
	case r.Method == http.MethodPost && r.URL.Path == "/bids":
		f.bidCalls++
		f.placeBid(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/auctions/restart":
		f.restartCalls++
		f.restart(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeMarketplace) placeBid(w http.ResponseWriter, r *http.Request) {
	if bearer(r) == "" {
		writeText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var bid models.Bid
	if err := json.NewDecoder(r.Body).Decode(&bid); err != nil {
		writeText(w, http.StatusBadRequest, "Malformed bid")
		return
	}
	a := f.find(bid.AuctionID)
	if a == nil {
		writeText(w, http.StatusNotFound, "Auction not found")
		return
	}
	current := decimal.RequireFromString(a["currentMaxBid"].(string))
	if !bid.Amount.GreaterThan(current) {
		writeText(w, http.StatusBadRequest, "Bid too low")
		return
	}
	a["currentMaxBid"] = bid.Amount.String()
	w.WriteHeader(http.StatusCreated)
}

func (f *fakeMarketplace) restart(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimPrefix(bearer(r), "tok-")
	var req models.RestartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "Malformed restart")
		return
	}
	a := f.find(req.AuctionID)
	if a == nil {
		writeText(w, http.StatusNotFound, "Auction not found")
		return
	}
	if a["vehicle"].(map[string]any)["sellerUsername"] != user {
		writeText(w, http.StatusForbidden, "Not your auction")
		return
	}
	f.lastRestart = req
	a["auctionStatus"] = string(models.StatusStarted)
	a["endTime"] = time.Now().Add(req.Duration.Approx()).UnixMilli()
	w.WriteHeader(http.StatusOK)
}

func (f *fakeMarketplace) find(id int64) map[string]any {
	for _, a := range f.auctions {
		if a["id"].(int64) == id {
			return a
		}
	}
	return nil
}

func (f *fakeMarketplace) calls() (bids, restarts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bidCalls, f.restartCalls
}

func (f *fakeMarketplace) restarted() models.RestartRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastRestart
}

func bearer(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func vehicleJSON(id int64, seller string, deleted bool) map[string]any {
	return map[string]any{
		"id":             id,
		"year":           2019,
		"make":           "Audi",
		"model":          "A4",
		"sellerUsername": seller,
		"images":         []string{"front.jpg"},
		"onSale":         !deleted,
		"deleted":        deleted,
	}
}

// newMarketplace seeds: 1 = alice's running auction, 2 = alice's ended auction
// (end time sent as a string), 3 = bob's running auction
func newMarketplace() *fakeMarketplace {
	now := time.Now()
	return &fakeMarketplace{
		auctions: []map[string]any{
			{"id": int64(1), "auctionOwner": "alice", "endTime": now.Add(time.Hour).UnixMilli(), "currentMaxBid": "100", "auctionStatus": "STARTED", "vehicle": vehicleJSON(11, "alice", false)},
			{"id": int64(2), "auctionOwner": "alice", "endTime": strconv.FormatInt(now.Add(-time.Hour).UnixMilli(), 10), "currentMaxBid": "900", "auctionStatus": "ENDED", "vehicle": vehicleJSON(12, "alice", false)},
			{"id": int64(3), "auctionOwner": "bob", "endTime": now.Add(24 * time.Hour).UnixMilli(), "currentMaxBid": "50", "auctionStatus": "STARTED", "vehicle": vehicleJSON(13, "bob", false)},
		},
		vehicles: []map[string]any{
			vehicleJSON(11, "alice", false),
			vehicleJSON(12, "alice", false),
			vehicleJSON(14, "carol", true),
		},
	}
}

// SetupTestRouter wires the real client stack against a fake marketplace
func SetupTestRouter(t *testing.T, market *fakeMarketplace) (*gin.Engine, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(market)
	t.Cleanup(srv.Close)

	api := backend.NewClient(srv.URL, backend.WithTimeout(5*time.Second))
	repo := repository.NewMemoryRepo()
	prom := metrics.NewPrometheus()
	service := auction.NewAuctionService(api, repo, gate.NewEvaluator(nil), prom)
	router := server.SetupRouter(service, imageBase, prom)
	return router, srv
}

// ExecuteRequestAndParse executes an HTTP request as username (empty for
// anonymous) and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, username string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if username != "" {
		req.Header.Set("Authorization", "Bearer tok-"+username)
		req.Header.Set("X-Username", username)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
