package models

import "time"

// Status is the lifecycle state of an auction. Ended is terminal.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// Auction is the authoritative state of one item under bid
type Auction struct {
	ID            string
	Title         string
	StartingPrice float64
	CurrentBid    float64
	HighestBidder string // empty until the first accepted bid
	EndsAt        time.Time
	Status        Status
}

// ExpireIfDue flips an active auction to ended once its deadline has
// passed. It returns true only when the transition actually fired, so
// callers emit the ended event exactly once per item.
func (a *Auction) ExpireIfDue(now time.Time) bool {
	if a.Status != StatusActive || now.Before(a.EndsAt) {
		return false
	}
	a.Status = StatusEnded
	return true
}

// Projected returns a copy of the auction whose Status reflects the
// deadline as of now, without mutating the live record. Reads use this
// so a past-deadline record never shows as active before a sweep.
func (a Auction) Projected(now time.Time) Auction {
	if a.Status == StatusActive && !now.Before(a.EndsAt) {
		a.Status = StatusEnded
	}
	return a
}

// BidRequest is a client's transient bid submission
type BidRequest struct {
	ItemID   string
	Amount   float64
	BidderID string
}

// RejectReason classifies why arbitration turned a bid down
type RejectReason string

const (
	ReasonUnknownItem  RejectReason = "unknown-item"
	ReasonAuctionEnded RejectReason = "auction-ended"
	ReasonBidTooLow    RejectReason = "bid-too-low"
	ReasonInvalidBid   RejectReason = "invalid-bid"

	// ReasonContended is reserved for a bounded-wait policy (e.g. a
	// queue-depth cap). Ordinary lock contention never produces it:
	// contenders queue and are re-evaluated against fresh state.
	ReasonContended RejectReason = "contended"
)

// BidOutcome is the transient result of arbitrating one bid
type BidOutcome struct {
	Accepted      bool
	ItemID        string
	NewCurrentBid float64
	HighestBidder string
	Reason        RejectReason
}

// AcceptedOutcome builds the outcome for a committed bid
func AcceptedOutcome(itemID string, currentBid float64, highestBidder string) BidOutcome {
	return BidOutcome{
		Accepted:      true,
		ItemID:        itemID,
		NewCurrentBid: currentBid,
		HighestBidder: highestBidder,
	}
}

// RejectedOutcome builds the outcome for a turned-down bid
func RejectedOutcome(itemID string, reason RejectReason) BidOutcome {
	return BidOutcome{
		ItemID: itemID,
		Reason: reason,
	}
}
