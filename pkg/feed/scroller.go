package feed

import (
	"context"
	"sync"
	"time"

	"github.com/priyansh004/DevShare/pkg/types"
)

type State int

const (
	// StateIdle waits for the next proximity trigger.
	StateIdle State = iota
	// StateLoading has a page fetch in flight; triggers are no-ops.
	StateLoading
	// StateEnd saw a short page; no further pages exist.
	StateEnd
	// StateError keeps the cursor where it was; the next trigger retries the
	// same page.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateEnd:
		return "end"
	case StateError:
		return "error"
	}
	return "unknown"
}

const DefaultFetchTimeout = 10 * time.Second

// FetchFunc loads one page of the feed under the scroller's current filters.
// Requesting the same page again must return the same content while the
// underlying data is unchanged.
type FetchFunc func(ctx context.Context, page uint64) ([]types.ResourceTransport, error)

// Scroller accumulates feed pages behind an intersection-style trigger. It is
// seeded with the server-rendered first page and fetches page N+1 whenever
// the trigger fires while idle. A page shorter than the limit ends the
// scroll; pages are flattened in fetch order with no de-duplication, so
// offset-pagination drift under concurrent writes can surface duplicated or
// skipped items.
type Scroller struct {
	mu      sync.Mutex
	fetch   FetchFunc
	limit   int
	timeout time.Duration

	state State
	page  uint64 // highest page merged so far
	gen   uint64 // bumped on Reset to discard late fetches
	items []types.ResourceTransport
}

func NewScroller(fetch FetchFunc, limit int, timeout time.Duration) *Scroller {
	if limit <= 0 {
		limit = types.FeedPageSize
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Scroller{
		fetch:   fetch,
		limit:   limit,
		timeout: timeout,
		state:   StateIdle,
	}
}

// Seed installs the externally supplied first page without re-fetching it.
func (s *Scroller) Seed(firstPage []types.ResourceTransport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked(firstPage)
}

func (s *Scroller) seedLocked(firstPage []types.ResourceTransport) {
	s.items = append([]types.ResourceTransport(nil), firstPage...)
	s.page = 1
	if len(firstPage) < s.limit {
		s.state = StateEnd
	} else {
		s.state = StateIdle
	}
}

// Reset discards every accumulated page after a filter change and re-seeds
// from the new page 1. A fetch still in flight when Reset runs is dropped on
// arrival instead of being merged into the new list.
func (s *Scroller) Reset(firstPage []types.ResourceTransport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.seedLocked(firstPage)
}

// Trigger is the sentinel-visibility event. It fetches the next page when the
// scroller is idle, retries the same page after an error, and is a no-op in
// every other state. The fetch runs under a bounded timeout so a hung request
// surfaces as StateError rather than wedging the scroller.
func (s *Scroller) Trigger(ctx context.Context) State {
	s.mu.Lock()
	if s.state != StateIdle && s.state != StateError {
		state := s.state
		s.mu.Unlock()
		return state
	}
	next := s.page + 1
	gen := s.gen
	s.state = StateLoading
	s.mu.Unlock()

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	pageItems, err := s.fetch(fetchCtx, next)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		// filters changed mid-flight; the result belongs to a stale query
		return s.state
	}

	if err != nil {
		s.state = StateError
		return s.state
	}

	s.items = append(s.items, pageItems...)
	s.page = next
	if len(pageItems) < s.limit {
		s.state = StateEnd
	} else {
		s.state = StateIdle
	}
	return s.state
}

func (s *Scroller) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scroller) Page() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Items returns the flattened pages in fetch order.
func (s *Scroller) Items() []types.ResourceTransport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.ResourceTransport(nil), s.items...)
}
