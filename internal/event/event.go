package event

import "encoding/json"

// Type tags every event on the wire.
type Type string

const (
	TypeBidSubmitted Type = "BidSubmitted"
	TypeBidAccepted  Type = "BidAccepted"
	TypeBidRejected  Type = "BidRejected"
	TypeAuctionEnded Type = "AuctionEnded"
)

// Event is implemented by every outbound event kind. The set is closed:
// observers can handle it exhaustively.
type Event interface {
	EventType() Type
}

// BidAccepted is broadcast to all observers after a commit.
type BidAccepted struct {
	ItemID        string  `json:"itemId"`
	CurrentBid    float64 `json:"currentBid"`
	HighestBidder string  `json:"highestBidder"`
}

// EventType returns TypeBidAccepted.
func (BidAccepted) EventType() Type { return TypeBidAccepted }

// BidRejected is delivered privately to the submitting client only.
type BidRejected struct {
	Reason string `json:"reason"`
}

// EventType returns TypeBidRejected.
func (BidRejected) EventType() Type { return TypeBidRejected }

// AuctionEnded is broadcast once when an auction's deadline transition fires.
type AuctionEnded struct {
	ItemID string `json:"itemId"`
}

// EventType returns TypeAuctionEnded.
func (AuctionEnded) EventType() Type { return TypeAuctionEnded }

// BidSubmitted is the inbound bid payload from a client.
type BidSubmitted struct {
	ItemID   string  `json:"itemId"`
	Amount   float64 `json:"amount"`
	BidderID string  `json:"bidderId"`
}

// Envelope is the wire framing shared by inbound and outbound events.
type Envelope struct {
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Marshal wraps an event in its tagged envelope.
func Marshal(ev Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: ev.EventType(), Data: data})
}

// Publisher delivers an event to every currently connected subscriber.
type Publisher interface {
	Publish(ev Event)
}

// Notifier delivers an event to a single subscriber only.
type Notifier interface {
	Notify(subscriberID string, ev Event)
}
