package feed

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh004/DevShare/pkg/types"
)

func makeItems(prefix string, n int) []types.ResourceTransport {
	items := make([]types.ResourceTransport, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, types.ResourceTransport{ID: fmt.Sprintf("%s-%d", prefix, i)})
	}
	return items
}

// pagedFetch serves pages out of a fixed dataset the way the API would.
func pagedFetch(data []types.ResourceTransport, limit int, calls *int) FetchFunc {
	return func(ctx context.Context, page uint64) ([]types.ResourceTransport, error) {
		if calls != nil {
			*calls++
		}
		start := int(page-1) * limit
		if start >= len(data) {
			return nil, nil
		}
		end := start + limit
		if end > len(data) {
			end = len(data)
		}
		return data[start:end], nil
	}
}

func TestScrollerWalksToEnd(t *testing.T) {
	data := makeItems("r", 15)
	var calls int
	s := NewScroller(pagedFetch(data, 10, &calls), 10, 0)

	s.Seed(data[:10])
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, uint64(1), s.Page())
	assert.Len(t, s.Items(), 10)

	// second page is short, so the scroll ends
	state := s.Trigger(context.Background())
	assert.Equal(t, StateEnd, state)
	assert.Equal(t, uint64(2), s.Page())
	assert.Len(t, s.Items(), 15)
	assert.Equal(t, 1, calls)

	// order is flat fetch order
	items := s.Items()
	assert.Equal(t, "r-0", items[0].ID)
	assert.Equal(t, "r-14", items[14].ID)
}

func TestScrollerShortSeedEndsImmediately(t *testing.T) {
	var calls int
	s := NewScroller(pagedFetch(makeItems("r", 3), 10, &calls), 10, 0)

	s.Seed(makeItems("r", 3))
	assert.Equal(t, StateEnd, s.State())

	// at the end the trigger never fetches again
	for i := 0; i < 3; i++ {
		assert.Equal(t, StateEnd, s.Trigger(context.Background()))
	}
	assert.Equal(t, 0, calls)
}

func TestScrollerEmptyPageEndsScroll(t *testing.T) {
	data := makeItems("r", 10)
	s := NewScroller(pagedFetch(data, 10, nil), 10, 0)

	s.Seed(data)
	require.Equal(t, StateIdle, s.State())

	assert.Equal(t, StateEnd, s.Trigger(context.Background()))
	assert.Len(t, s.Items(), 10)
}

func TestScrollerErrorRetriesSamePage(t *testing.T) {
	data := makeItems("r", 15)
	fail := true
	var requested []uint64
	fetch := func(ctx context.Context, page uint64) ([]types.ResourceTransport, error) {
		requested = append(requested, page)
		if fail {
			return nil, fmt.Errorf("network down")
		}
		return data[10:15], nil
	}

	s := NewScroller(fetch, 10, 0)
	s.Seed(data[:10])

	assert.Equal(t, StateError, s.Trigger(context.Background()))
	assert.Len(t, s.Items(), 10, "nothing appended on failure")
	assert.Equal(t, uint64(1), s.Page(), "cursor stays put on failure")

	fail = false
	// the retried page is short, so the scroll ends there
	assert.Equal(t, StateEnd, s.Trigger(context.Background()))
	assert.Equal(t, []uint64{2, 2}, requested, "retry refetches the failed page")
	assert.Len(t, s.Items(), 15)
}

func TestScrollerErrorRetryWithFullPageStaysIdle(t *testing.T) {
	data := makeItems("r", 30)
	fail := true
	fetch := func(ctx context.Context, page uint64) ([]types.ResourceTransport, error) {
		if fail {
			return nil, fmt.Errorf("network down")
		}
		start := int(page-1) * 10
		return data[start : start+10], nil
	}

	s := NewScroller(fetch, 10, 0)
	s.Seed(data[:10])

	assert.Equal(t, StateError, s.Trigger(context.Background()))

	fail = false
	// a full retried page means more pages may exist
	assert.Equal(t, StateIdle, s.Trigger(context.Background()))
	assert.Equal(t, uint64(2), s.Page())
	assert.Len(t, s.Items(), 20)
}

func TestScrollerTriggerWhileLoadingIsNoop(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context, page uint64) ([]types.ResourceTransport, error) {
		close(started)
		<-release
		return makeItems("late", 10), nil
	}

	s := NewScroller(fetch, 10, 0)
	s.Seed(makeItems("r", 10))

	done := make(chan State, 1)
	go func() {
		done <- s.Trigger(context.Background())
	}()

	<-started
	assert.Equal(t, StateLoading, s.State())
	// a second trigger while a fetch is in flight does nothing
	assert.Equal(t, StateLoading, s.Trigger(context.Background()))

	close(release)
	assert.Equal(t, StateIdle, <-done)
	assert.Len(t, s.Items(), 20)
}

func TestScrollerResetDiscardsInflightFetch(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context, page uint64) ([]types.ResourceTransport, error) {
		close(started)
		<-release
		return makeItems("stale", 10), nil
	}

	s := NewScroller(fetch, 10, 0)
	s.Seed(makeItems("old", 10))

	done := make(chan State, 1)
	go func() {
		done <- s.Trigger(context.Background())
	}()

	<-started
	s.Reset(makeItems("new", 4))
	close(release)
	<-done

	// the late result of the old filters never reaches the new list
	items := s.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "new-0", items[0].ID)
	assert.Equal(t, StateEnd, s.State())
	assert.Equal(t, uint64(1), s.Page())
}

func TestScrollerDefaults(t *testing.T) {
	s := NewScroller(nil, 0, 0)
	assert.Equal(t, types.FeedPageSize, s.limit)
	assert.Equal(t, DefaultFetchTimeout, s.timeout)
	assert.Equal(t, StateIdle, s.State())
}
