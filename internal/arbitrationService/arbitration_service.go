package arbitration

import (
	"errors"
	"fmt"
	"math"

	"live-auction/internal/auctionerrors"
	"live-auction/internal/clock"
	"live-auction/internal/event"
	model "live-auction/internal/models"
	"live-auction/internal/registry"
)

// ArbitrationService makes the race-critical decision of whether a bid
// wins. All record mutation goes through the registry's exclusive
// sections, so concurrent submissions for the same item serialize and
// each is evaluated against the previously committed state.
type ArbitrationService struct {
	store registry.AuctionStore
	clk   clock.Clock
}

// NewArbitrationService creates a new ArbitrationService instance
func NewArbitrationService(store registry.AuctionStore, clk clock.Clock) *ArbitrationService {
	return &ArbitrationService{
		store: store,
		clk:   clk,
	}
}

// Submit evaluates a bid request and returns its outcome. The outcome
// always carries either the committed values or a rejection reason; the
// error wraps the matching sentinel for rejections so callers can use
// errors.Is. A submission that arrives while another is mid-arbitration
// for the same item queues behind it and is evaluated fresh against the
// post-commit state, never bounced for ordinary lock contention.
func (s *ArbitrationService) Submit(req model.BidRequest) (model.BidOutcome, error) {
	if err := s.validateBid(req); err != nil {
		return model.RejectedOutcome(req.ItemID, model.ReasonInvalidBid), err
	}

	var outcome model.BidOutcome
	err := s.store.WithExclusive(req.ItemID, func(a *model.Auction) ([]event.Event, error) {
		var events []event.Event

		// Re-check the deadline inside the section. A lazy flip here
		// stages the ended event exactly once; the sweeper's eager pass
		// uses the same idempotent transition.
		if a.ExpireIfDue(s.clk.Now()) {
			events = append(events, event.AuctionEnded{ItemID: a.ID})
		}
		if a.Status == model.StatusEnded {
			outcome = model.RejectedOutcome(a.ID, model.ReasonAuctionEnded)
			return events, fmt.Errorf("bid on auction %s: %w", a.ID, auctionerrors.ErrAuctionEnded)
		}

		// Strict inequality: a bid equal to the current price never wins.
		if req.Amount <= a.CurrentBid {
			outcome = model.RejectedOutcome(a.ID, model.ReasonBidTooLow)
			return events, fmt.Errorf("bid of %.2f on auction %s: %w - current bid is %.2f",
				req.Amount, a.ID, auctionerrors.ErrBidTooLow, a.CurrentBid)
		}

		a.CurrentBid = req.Amount
		a.HighestBidder = req.BidderID
		outcome = model.AcceptedOutcome(a.ID, a.CurrentBid, a.HighestBidder)
		events = append(events, event.BidAccepted{
			ItemID:        a.ID,
			CurrentBid:    a.CurrentBid,
			HighestBidder: a.HighestBidder,
		})
		return events, nil
	})

	if err != nil {
		if errors.Is(err, auctionerrors.ErrItemNotFound) {
			return model.RejectedOutcome(req.ItemID, model.ReasonUnknownItem), err
		}
		return outcome, err
	}
	return outcome, nil
}

// validateBid checks input validity before any state is touched
func (s *ArbitrationService) validateBid(req model.BidRequest) error {
	if req.ItemID == "" || req.BidderID == "" {
		return fmt.Errorf("service: %w - missing itemId or bidderId", auctionerrors.ErrInvalidBid)
	}
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return fmt.Errorf("service: %w - amount must be a finite positive number", auctionerrors.ErrInvalidBid)
	}
	return nil
}
