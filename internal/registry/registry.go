package registry

//go:generate mockgen -source=registry.go -destination=mock_registry.go -package=registry

import (
	"fmt"
	"sort"
	"sync"

	"live-auction/internal/auctionerrors"
	"live-auction/internal/clock"
	"live-auction/internal/event"
	model "live-auction/internal/models"
)

// ExclusiveFunc runs against the live record inside its exclusive
// section. It must not do external I/O; events it returns are published
// by the registry in commit order once the section is handed off.
type ExclusiveFunc func(a *model.Auction) ([]event.Event, error)

// AuctionStore defines the synchronized access surface for auction state
type AuctionStore interface {
	Get(itemID string) (model.Auction, error)
	WithExclusive(itemID string, fn ExclusiveFunc) error
	Snapshot() []model.Auction
}

// entry pairs a record with its locks. mu guards the record; emitMu is
// acquired before mu is released so publication order always matches
// commit order for the item.
type entry struct {
	mu     sync.Mutex
	emitMu sync.Mutex
	a      model.Auction
}

// MemoryRegistry is a concurrency-safe in-memory implementation of
// AuctionStore. Exclusion is per item: sections on the same item never
// interleave, sections on different items proceed fully in parallel.
type MemoryRegistry struct {
	mu       sync.RWMutex
	auctions map[string]*entry // key: itemID -> value: record + its locks

	pub event.Publisher
	clk clock.Clock
}

// NewMemoryRegistry creates a new in-memory registry. Events staged by
// exclusive sections are delivered through pub; pub may be nil in tests
// that do not observe fan-out.
func NewMemoryRegistry(pub event.Publisher, clk clock.Clock) *MemoryRegistry {
	return &MemoryRegistry{
		auctions: make(map[string]*entry),
		pub:      pub,
		clk:      clk,
	}
}

// Add seeds an auction record. Used at process start and by tests.
func (r *MemoryRegistry) Add(a model.Auction) {
	if a.Status == "" {
		a.Status = model.StatusActive
	}
	if a.CurrentBid < a.StartingPrice {
		a.CurrentBid = a.StartingPrice
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.ID] = &entry{a: a}
}

func (r *MemoryRegistry) lookup(itemID string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.auctions[itemID]
	return e, ok
}

// Get returns a read-time snapshot of one record. Status is recomputed
// against the current clock, so a past-deadline record never reads as
// active even before the sweeper has run.
func (r *MemoryRegistry) Get(itemID string) (model.Auction, error) {
	e, ok := r.lookup(itemID)
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	e.mu.Lock()
	a := e.a
	e.mu.Unlock()
	return a.Projected(r.clk.Now()), nil
}

// WithExclusive acquires itemID's exclusive section and applies fn to
// the live record. Contending callers on the same item queue here and
// each observe the previous caller's committed state. Events returned
// by fn are published before the next section on the same item can
// publish; the record lock itself is released first, so the critical
// section never contains fan-out work.
func (r *MemoryRegistry) WithExclusive(itemID string, fn ExclusiveFunc) error {
	e, ok := r.lookup(itemID)
	if !ok {
		return fmt.Errorf("exclusive section for auction %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	e.mu.Lock()
	events, err := fn(&e.a)

	// Hand off to the emit lock before releasing the record lock: the
	// next contender may commit immediately, but cannot publish until
	// this section's events are enqueued.
	e.emitMu.Lock()
	e.mu.Unlock()
	if r.pub != nil {
		for _, ev := range events {
			r.pub.Publish(ev)
		}
	}
	e.emitMu.Unlock()

	return err
}

// Snapshot returns a point-in-time listing of all records ordered by
// ID. Each record's status reflects its deadline as of the capture
// time, whether or not the sweeper has caught up.
func (r *MemoryRegistry) Snapshot() []model.Auction {
	r.mu.RLock()
	entries := make([]*entry, 0, len(r.auctions))
	for _, e := range r.auctions {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	now := r.clk.Now()
	out := make([]model.Auction, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		a := e.a
		e.mu.Unlock()
		out = append(out, a.Projected(now))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
