package helpers

import (
	model "live-auction/internal/models"
)

// AuctionProjection is the read model served to listing observers.
// Field names and types are the wire contract; endsAt and serverTime
// are epoch milliseconds.
type AuctionProjection struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	StartingPrice float64 `json:"startingPrice"`
	CurrentBid    float64 `json:"currentBid"`
	HighestBidder *string `json:"highestBidder"`
	EndsAt        int64   `json:"endsAt"`
	Status        string  `json:"status"`
}

// SnapshotResponse is the full listing payload.
type SnapshotResponse struct {
	ServerTime int64               `json:"serverTime"`
	Items      []AuctionProjection `json:"items"`
}

// ProjectAuction maps an auction record onto its wire projection.
func ProjectAuction(a model.Auction) AuctionProjection {
	p := AuctionProjection{
		ID:            a.ID,
		Title:         a.Title,
		StartingPrice: a.StartingPrice,
		CurrentBid:    a.CurrentBid,
		EndsAt:        a.EndsAt.UnixMilli(),
		Status:        string(a.Status),
	}
	if a.HighestBidder != "" {
		bidder := a.HighestBidder
		p.HighestBidder = &bidder
	}
	return p
}

// ProjectAuctions maps a snapshot onto its wire projections, preserving order.
func ProjectAuctions(auctions []model.Auction) []AuctionProjection {
	items := make([]AuctionProjection, 0, len(auctions))
	for _, a := range auctions {
		items = append(items, ProjectAuction(a))
	}
	return items
}
