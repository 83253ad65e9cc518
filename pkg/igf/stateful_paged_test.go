package igf_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ririf4/IGF/pkg/igf"
)

func buildStatefulPaged(t *testing.T, host *memHost) *igf.StatefulPagedView[shopTab] {
	t.Helper()
	d := newDispatcher(t, host)
	v := igf.NewStatefulPagedView(d, testViewer("a"), []shopTab{tabWeapons, tabArmor, tabPotions}).
		SetTitle("Shop").
		AddItems(igf.NewItem("tab", "header", 0)).
		SetStateItems(tabWeapons, igf.NewItem("entry", "banner", 9)).
		SetStateItems(tabArmor, igf.NewItem("entry", "rack", 9)).
		SetSlots(10, 11, 12).
		EnablePagination(tabWeapons)
	require.NoError(t, v.SetItemsPerPage(3))
	require.NoError(t, v.SetSize(27))
	return v
}

func TestPaginationGatingPerState(t *testing.T) {
	host := newMemHost()
	v := buildStatefulPaged(t, host).
		SetStateMappings(map[shopTab][]*igf.Item{
			tabWeapons: pageItems(9),
			tabArmor:   pageItems(9),
		})
	require.NoError(t, v.Build())
	surface := host.lastSurface()

	// Weapons is pagination-enabled: page 0 plus next arrow.
	require.NoError(t, v.SwitchState(tabWeapons))
	assert.Equal(t, "item-0", surface.labelAt(10))
	assert.Equal(t, "Next Page", surface.labelAt(27-1))

	// Armor holds page content too, but pagination is not enabled for
	// it: only base and fixed items render, no pages, no nav.
	require.NoError(t, v.SwitchState(tabArmor))
	assert.Equal(t, map[int]string{0: "header", 9: "rack"}, surface.snapshot())
	assert.Nil(t, v.Resolve(10))
	assert.Nil(t, v.Resolve(27-1))
}

func TestSwitchStateResetsPageOnlyOnChange(t *testing.T) {
	host := newMemHost()
	calls := 0
	v := buildStatefulPaged(t, host).
		SetProvider(func(s shopTab) []*igf.Item {
			calls++
			return pageItems(9)
		})
	require.NoError(t, v.Build())

	require.NoError(t, v.SwitchState(tabWeapons))
	require.NoError(t, v.SwitchPage(2))
	require.Equal(t, 2, v.Page())

	// Re-entering the current state keeps the page but still refreshes
	// the provider content.
	before := calls
	require.NoError(t, v.SwitchState(tabWeapons))
	assert.Equal(t, 2, v.Page())
	assert.Equal(t, before+1, calls)

	// A real state change resets to page 0.
	require.NoError(t, v.SwitchState(tabArmor))
	require.NoError(t, v.SwitchState(tabWeapons))
	assert.Equal(t, 0, v.Page())
}

func TestStaticMappingsLoadPerState(t *testing.T) {
	host := newMemHost()
	v := buildStatefulPaged(t, host).
		EnablePagination(tabArmor).
		SetStateMappings(map[shopTab][]*igf.Item{
			tabWeapons: {igf.NewItem("entry", "sword", igf.AutoPosition)},
			tabArmor:   {igf.NewItem("entry", "shield", igf.AutoPosition)},
		})
	require.NoError(t, v.Build())
	surface := host.lastSurface()

	require.NoError(t, v.SwitchState(tabWeapons))
	assert.Equal(t, "sword", surface.labelAt(10))

	require.NoError(t, v.SwitchState(tabArmor))
	assert.Equal(t, "shield", surface.labelAt(10))

	// Unmapped state pages over an empty collection.
	v.EnablePagination(tabPotions)
	require.NoError(t, v.SwitchState(tabPotions))
	assert.Equal(t, "", surface.labelAt(10))
}

func TestRenderPrecedenceLayers(t *testing.T) {
	host := newMemHost()
	d := newDispatcher(t, host)

	// base, fixed, paged, and nav all target overlapping slots; the
	// higher layer must win both on the surface and in routing.
	v := igf.NewStatefulPagedView(d, testViewer("a"), []shopTab{tabWeapons}).
		SetTitle("Shop").
		SetBackground(igf.KindFiller).
		AddItems(igf.NewItem("tab", "base", 10), igf.NewItem("tab", "base-only", 1)).
		SetStateItems(tabWeapons, igf.NewItem("entry", "fixed", 10), igf.NewItem("entry", "fixed-only", 2)).
		SetSlots(10).
		EnablePagination(tabWeapons).
		SetProvider(func(shopTab) []*igf.Item {
			return pageItems(6)
		})
	require.NoError(t, v.SetItemsPerPage(3))
	require.NoError(t, v.SetSize(27))
	require.NoError(t, v.Build())
	require.NoError(t, v.SwitchState(tabWeapons))

	surface := host.lastSurface()
	assert.Equal(t, "item-0", surface.labelAt(10), "paged beats fixed and base")
	assert.Equal(t, "base-only", surface.labelAt(1))
	assert.Equal(t, "fixed-only", surface.labelAt(2))
	assert.Equal(t, "Next Page", surface.labelAt(27-1))

	require.NotNil(t, v.Resolve(10))
	assert.Equal(t, "item-0", v.Resolve(10).Label())
}

func TestPlaceholderOnlyWhenEnabledAndEmpty(t *testing.T) {
	host := newMemHost()
	d := newDispatcher(t, host)

	v := igf.NewStatefulPagedView(d, testViewer("a"), []shopTab{tabWeapons, tabArmor}).
		SetTitle("Shop").
		SetSlots(10, 11, 12).
		SetPlaceholder(d.EmptyPlaceholder(13)).
		EnablePagination(tabWeapons)
	require.NoError(t, v.SetSize(27))
	require.NoError(t, v.Build())
	surface := host.lastSurface()

	require.NoError(t, v.SwitchState(tabWeapons))
	assert.Equal(t, "Nothing here yet", surface.labelAt(13))

	// Disabled state: no placeholder even though the collection is empty.
	require.NoError(t, v.SwitchState(tabArmor))
	assert.Equal(t, "", surface.labelAt(13))
}

func TestBuildLoadsProviderForPresetState(t *testing.T) {
	host := newMemHost()
	v := buildStatefulPaged(t, host).
		SetProvider(func(s shopTab) []*igf.Item {
			return []*igf.Item{igf.NewItem("entry", fmt.Sprintf("loaded-%d", s), igf.AutoPosition)}
		})
	require.NoError(t, v.SetState(tabWeapons))
	require.NoError(t, v.Build())

	assert.Equal(t, fmt.Sprintf("loaded-%d", tabWeapons), host.lastSurface().labelAt(10))
}
