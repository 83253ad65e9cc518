package igf_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ririf4/IGF/pkg/igf"
)

func pageItems(n int) []*igf.Item {
	items := make([]*igf.Item, n)
	for i := range items {
		items[i] = igf.NewItem("entry", fmt.Sprintf("item-%d", i), igf.AutoPosition)
	}
	return items
}

func buildPaged(t *testing.T, host *memHost, slots []int, items []*igf.Item) *igf.PagedView {
	t.Helper()
	d := newDispatcher(t, host)
	v := igf.NewPagedView(d, testViewer("a")).
		SetTitle("Browser").
		SetSlots(slots...).
		SetPageItems(items)
	require.NoError(t, v.SetSize(27))
	require.NoError(t, v.Build())
	return v
}

func TestTotalPagesRoundTrip(t *testing.T) {
	d := newDispatcher(t, newMemHost())

	for _, perPage := range []int{1, 9, 100} {
		for _, count := range []int{0, 1, 9, 10, 100} {
			v := igf.NewPagedView(d, testViewer("a"))
			require.NoError(t, v.SetItemsPerPage(perPage))
			v.SetPageItems(pageItems(count))

			want := (count + perPage - 1) / perPage
			if want < 1 {
				want = 1
			}
			assert.Equalf(t, want, v.TotalPages(), "perPage=%d count=%d", perPage, count)
		}
	}
}

func TestItemsPerPageValidation(t *testing.T) {
	d := newDispatcher(t, newMemHost())
	v := igf.NewPagedView(d, testViewer("a"))

	err := v.SetItemsPerPage(0)
	assert.True(t, igf.IsInvalidConfiguration(err))
	assert.ErrorIs(t, err, igf.ErrItemsPerPageInvalid)
}

func TestPaginationWindowing(t *testing.T) {
	host := newMemHost()
	slots := []int{10, 11, 12, 13, 14, 15, 16}
	v := buildPaged(t, host, slots, pageItems(21))

	require.Equal(t, 3, v.TotalPages())

	// Page 0: the first 7 items fill the slots; items 7 and 8 of the
	// 9-item window are beyond the slot positions and dropped.
	surface := host.lastSurface()
	for i, slot := range slots {
		assert.Equalf(t, fmt.Sprintf("item-%d", i), surface.labelAt(slot), "slot %d", slot)
	}

	// Last page: three remaining items, trailing slots empty.
	require.NoError(t, v.SwitchPage(2))
	assert.Equal(t, "item-18", surface.labelAt(10))
	assert.Equal(t, "item-20", surface.labelAt(12))
	assert.Equal(t, "", surface.labelAt(13))
}

func TestNavVisibility(t *testing.T) {
	host := newMemHost()
	v := buildPaged(t, host, []int{0, 1, 2, 3, 4, 5, 6}, pageItems(21))
	surface := host.lastSurface()

	prevSlot, nextSlot := 27-9, 27-1

	// Page 0 of 3: only next.
	assert.Equal(t, "", surface.labelAt(prevSlot))
	assert.Equal(t, "Next Page", surface.labelAt(nextSlot))

	// Middle page: both.
	require.NoError(t, v.NextPage())
	assert.Equal(t, "Previous Page", surface.labelAt(prevSlot))
	assert.Equal(t, "Next Page", surface.labelAt(nextSlot))

	// Last page: only prev.
	require.NoError(t, v.NextPage())
	assert.Equal(t, "Previous Page", surface.labelAt(prevSlot))
	assert.Equal(t, "", surface.labelAt(nextSlot))
}

func TestNavHandlersTurnPages(t *testing.T) {
	host := newMemHost()
	v := buildPaged(t, host, []int{0, 1, 2}, pageItems(9))
	require.NoError(t, v.SetItemsPerPage(3))
	require.NoError(t, v.Render())
	require.Equal(t, 3, v.TotalPages())

	next := v.Resolve(27 - 1)
	require.NotNil(t, next)
	require.NotNil(t, next.Handler())
	next.Handler()(testViewer("a"), v)
	assert.Equal(t, 1, v.Page())

	prev := v.Resolve(27 - 9)
	require.NotNil(t, prev)
	prev.Handler()(testViewer("a"), v)
	assert.Equal(t, 0, v.Page())
}

func TestSwitchPageClampsAndSkipsNoopRenders(t *testing.T) {
	host := newMemHost()
	v := buildPaged(t, host, []int{0, 1, 2, 3, 4, 5, 6}, pageItems(21))
	surface := host.lastSurface()

	require.NoError(t, v.SwitchPage(99))
	assert.Equal(t, 2, v.Page())

	require.NoError(t, v.SwitchPage(-5))
	assert.Equal(t, 0, v.Page())

	clears := surface.clears
	require.NoError(t, v.SwitchPage(0))
	assert.Equal(t, clears, surface.clears, "no-op switch must not re-render")
}

func TestEmptyCollectionShowsPlaceholder(t *testing.T) {
	host := newMemHost()
	d := newDispatcher(t, host)

	v := igf.NewPagedView(d, testViewer("a")).
		SetTitle("Browser").
		SetSlots(0, 1, 2).
		SetPlaceholder(d.EmptyPlaceholder(13))
	require.NoError(t, v.SetSize(27))
	require.NoError(t, v.Build())

	surface := host.lastSurface()
	assert.Equal(t, "Nothing here yet", surface.labelAt(13))
	// No navigation on an empty collection.
	assert.Equal(t, "", surface.labelAt(27-1))
	assert.Equal(t, 1, v.TotalPages())
}

func TestShrinkingCollectionClampsLazily(t *testing.T) {
	host := newMemHost()
	v := buildPaged(t, host, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, pageItems(36))
	require.NoError(t, v.SwitchPage(3))
	require.Equal(t, 3, v.Page())

	// Direct replacement bypasses the clamp: the stored page reads out
	// of range until the next render.
	v.SetPageItems(pageItems(5))
	assert.Equal(t, 1, v.TotalPages())
	assert.Equal(t, 3, v.Page())

	// Routing still reflects what a render would show.
	require.NotNil(t, v.Resolve(0))
	assert.Equal(t, "item-0", v.Resolve(0).Label())

	require.NoError(t, v.Render())
	assert.Equal(t, 0, v.Page())
	assert.Equal(t, "item-4", host.lastSurface().labelAt(4))
}

func TestDuplicateSlotPositionsLastItemWins(t *testing.T) {
	host := newMemHost()
	v := buildPaged(t, host, []int{0, 1, 1}, pageItems(3))

	surface := host.lastSurface()
	assert.Equal(t, "item-0", surface.labelAt(0))
	assert.Equal(t, "item-2", surface.labelAt(1))
	require.NotNil(t, v.Resolve(1))
	assert.Equal(t, "item-2", v.Resolve(1).Label())
}

func TestCustomNavigationItems(t *testing.T) {
	host := newMemHost()
	d := newDispatcher(t, host)

	v := igf.NewPagedView(d, testViewer("a")).
		SetTitle("Browser").
		SetSlots(0, 1, 2).
		SetPageItems(pageItems(9)).
		SetNavigation(
			igf.NewItem("arrow", "back", 18),
			igf.NewItem("arrow", "forward", 20),
		)
	require.NoError(t, v.SetItemsPerPage(3))
	require.NoError(t, v.SetSize(27))
	require.NoError(t, v.Build())

	surface := host.lastSurface()
	assert.Equal(t, "forward", surface.labelAt(20))
	forward := v.Resolve(20)
	require.NotNil(t, forward)
	forward.Handler()(testViewer("a"), v)
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, "back", surface.labelAt(18))
}
