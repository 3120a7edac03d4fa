package auctionerrors

import "errors"

// Registry-level errors
var (
	ErrItemNotFound = errors.New("auction item not found")
)

// Arbitration rejections. These are valid outcomes of bid evaluation,
// not exceptional failures.
var (
	ErrInvalidBid   = errors.New("invalid bid")
	ErrBidTooLow    = errors.New("bid amount too low")
	ErrAuctionEnded = errors.New("auction has ended")
)
