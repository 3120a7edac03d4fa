package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"live-auction/internal/broadcast"
	"live-auction/internal/event"
	model "live-auction/internal/models"
	"live-auction/services/auction/helpers"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Observers connect from any origin, as with the original dashboard.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Arbitrator is the subset of the arbitration service the socket needs.
type Arbitrator interface {
	Submit(req model.BidRequest) (model.BidOutcome, error)
}

// SocketHandler upgrades clients onto the real-time event surface:
// inbound BidSubmitted events feed the arbitrator, outbound events
// arrive through the client's hub subscription.
type SocketHandler struct {
	arbitrator Arbitrator
	hub        *broadcast.Hub
}

func NewSocketHandler(arbitrator Arbitrator, hub *broadcast.Hub) *SocketHandler {
	return &SocketHandler{arbitrator: arbitrator, hub: hub}
}

// ServeWS handles GET /ws
func (h *SocketHandler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("ServeWS: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	sub := h.hub.Subscribe()
	utils.Info("observer connected", map[string]any{"subscriber_id": sub.ID})

	go h.writePump(conn, sub)
	go h.readPump(conn, sub)
}

// readPump decodes inbound envelopes until the connection drops. It
// owns teardown: unsubscribing stops the write pump via channel close.
func (h *SocketHandler) readPump(conn *websocket.Conn, sub *broadcast.Subscriber) {
	defer func() {
		h.hub.Unsubscribe(sub.ID)
		conn.Close()
		utils.Info("observer disconnected", map[string]any{"subscriber_id": sub.ID})
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				utils.Warn("websocket read error", map[string]any{
					"subscriber_id": sub.ID,
					"error":         err.Error(),
				})
			}
			return
		}

		var env event.Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			h.hub.Notify(sub.ID, event.BidRejected{Reason: string(model.ReasonInvalidBid)})
			continue
		}

		switch env.Type {
		case event.TypeBidSubmitted:
			var msg event.BidSubmitted
			if err := json.Unmarshal(env.Data, &msg); err != nil {
				h.hub.Notify(sub.ID, event.BidRejected{Reason: string(model.ReasonInvalidBid)})
				continue
			}
			h.handleBid(sub, msg)
		default:
			// Unknown inbound types are ignored.
		}
	}
}

func (h *SocketHandler) handleBid(sub *broadcast.Subscriber, msg event.BidSubmitted) {
	outcome, err := h.arbitrator.Submit(model.BidRequest{
		ItemID:   msg.ItemID,
		Amount:   msg.Amount,
		BidderID: msg.BidderID,
	})
	if err != nil {
		// Rejections are private: only the submitter hears about them.
		h.hub.Notify(sub.ID, event.BidRejected{Reason: string(outcome.Reason)})
		utils.Info("bid rejected", map[string]any{
			"subscriber_id": sub.ID,
			"item_id":       msg.ItemID,
			"reason":        string(outcome.Reason),
		})
		return
	}

	// Acceptance reaches everyone, submitter included, via the broadcast.
	helpers.LogSuccess("SocketHandler", "bid accepted", map[string]any{
		"item_id":        outcome.ItemID,
		"current_bid":    outcome.NewCurrentBid,
		"highest_bidder": outcome.HighestBidder,
	})
}

// writePump drains the subscription onto the connection and keeps the
// peer alive with pings. A failed write abandons the connection; the
// registry remains authoritative and the client resyncs on reconnect.
func (h *SocketHandler) writePump(conn *websocket.Conn, sub *broadcast.Subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case ev, ok := <-sub.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			payload, err := event.Marshal(ev)
			if err != nil {
				utils.Error("failed to marshal event", map[string]any{
					"type":  string(ev.EventType()),
					"error": err.Error(),
				})
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
