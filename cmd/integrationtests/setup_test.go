package integrationtests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	arbitration "live-auction/internal/arbitrationService"
	"live-auction/internal/broadcast"
	"live-auction/internal/clock"
	"live-auction/internal/event"
	model "live-auction/internal/models"
	"live-auction/internal/registry"
	"live-auction/internal/server"
	"live-auction/internal/sweeper"
	"live-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// Stack is the fully wired system under test.
type Stack struct {
	Server   *httptest.Server
	Registry *registry.MemoryRegistry
	Clock    *clock.Mock
	Sweeper  *sweeper.Sweeper
}

// SetupStack wires registry, arbitration, hub and router behind a test
// server, seeded with the given auctions.
func SetupStack(t *testing.T, now time.Time, auctions ...model.Auction) *Stack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.NewMock(now)
	hub := broadcast.NewHub()
	reg := registry.NewMemoryRegistry(hub, clk)
	for _, a := range auctions {
		reg.Add(a)
	}

	arbitrationSvc := arbitration.NewArbitrationService(reg, clk)
	router := server.SetupRouter(arbitrationSvc, reg, hub, clk)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &Stack{
		Server:   srv,
		Registry: reg,
		Clock:    clk,
		Sweeper:  sweeper.New(reg, clk, time.Millisecond),
	}
}

// GetSnapshot fetches and parses GET /items.
func (s *Stack) GetSnapshot(t *testing.T) helpers.SnapshotResponse {
	t.Helper()
	resp, err := http.Get(s.Server.URL + "/items")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap helpers.SnapshotResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	return snap
}

// Dial opens a client connection on the real-time surface.
func (s *Stack) Dial(t *testing.T) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(s.Server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// SendBid submits a BidSubmitted envelope over conn.
func SendBid(t *testing.T, conn *websocket.Conn, itemID string, amount float64, bidderID string) {
	t.Helper()
	data, err := json.Marshal(event.BidSubmitted{ItemID: itemID, Amount: amount, BidderID: bidderID})
	require.NoError(t, err)
	env, err := json.Marshal(event.Envelope{Type: event.TypeBidSubmitted, Data: data})
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, env))
}

// ReadEnvelope reads the next event envelope from conn.
func ReadEnvelope(t *testing.T, conn *websocket.Conn) event.Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var env event.Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}
