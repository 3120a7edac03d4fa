package sweeper

import (
	"context"
	"time"

	"live-auction/internal/clock"
	"live-auction/internal/event"
	model "live-auction/internal/models"
	"live-auction/internal/registry"
	"live-auction/utils"
)

// Sweeper eagerly transitions auctions from active to ended once their
// deadline passes. It shares the registry's exclusive-section discipline
// with bid commits, so a sweep can never race a commit into an
// inconsistent state.
type Sweeper struct {
	store    registry.AuctionStore
	clk      clock.Clock
	interval time.Duration
}

// New creates a Sweeper that sweeps every interval.
func New(store registry.AuctionStore, clk clock.Clock, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		clk:      clk,
		interval: interval,
	}
}

// Sweep performs one pass over all records and ends those whose
// deadline has passed. It returns the number of auctions it actually
// transitioned; redundant detections produce no event and no change.
func (s *Sweeper) Sweep() int {
	ended := 0
	for _, a := range s.store.Snapshot() {
		// Snapshot already projects expired records as ended, so only
		// those need an exclusive section at all.
		if a.Status != model.StatusEnded {
			continue
		}

		flipped := false
		err := s.store.WithExclusive(a.ID, func(rec *model.Auction) ([]event.Event, error) {
			if !rec.ExpireIfDue(s.clk.Now()) {
				return nil, nil
			}
			flipped = true
			return []event.Event{event.AuctionEnded{ItemID: rec.ID}}, nil
		})
		if err != nil {
			utils.Warn("sweep: failed to end auction", map[string]any{
				"item_id": a.ID,
				"error":   err.Error(),
			})
			continue
		}
		if flipped {
			ended++
			utils.Info("auction ended", map[string]any{
				"item_id":        a.ID,
				"current_bid":    a.CurrentBid,
				"highest_bidder": a.HighestBidder,
			})
		}
	}
	return ended
}

// Run drives periodic sweeps until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
