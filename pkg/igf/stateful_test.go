package igf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ririf4/IGF/pkg/igf"
)

type shopTab int

const (
	tabWeapons shopTab = iota
	tabArmor
	tabPotions
)

func buildStateful(t *testing.T, host *memHost) *igf.StatefulView[shopTab] {
	t.Helper()
	d := newDispatcher(t, host)
	v := igf.NewStatefulView(d, testViewer("a"), []shopTab{tabWeapons, tabArmor, tabPotions}).
		SetTitle("Shop").
		AddItems(igf.NewItem("tab", "header", 0)).
		SetStateItems(tabWeapons, igf.NewItem("entry", "sword", 3)).
		SetStateItems(tabArmor, igf.NewItem("entry", "shield", 5))
	require.NoError(t, v.SetSize(9))
	require.NoError(t, v.Build())
	return v
}

func TestStateIsolation(t *testing.T) {
	host := newMemHost()
	v := buildStateful(t, host)
	surface := host.lastSurface()

	require.NoError(t, v.SwitchState(tabWeapons))
	assert.Equal(t, "sword", surface.labelAt(3))
	assert.Equal(t, "", surface.labelAt(5))

	require.NoError(t, v.SwitchState(tabArmor))
	assert.Equal(t, "", surface.labelAt(3))
	assert.Equal(t, "shield", surface.labelAt(5))
	assert.Nil(t, v.Resolve(3))
	require.NotNil(t, v.Resolve(5))
	assert.Equal(t, "shield", v.Resolve(5).Label())

	// Base items survive every switch.
	assert.Equal(t, "header", surface.labelAt(0))
}

func TestSwitchToCurrentStateIsNoop(t *testing.T) {
	host := newMemHost()
	v := buildStateful(t, host)
	surface := host.lastSurface()

	require.NoError(t, v.SwitchState(tabWeapons))
	clears := surface.clears

	require.NoError(t, v.SwitchState(tabWeapons))
	assert.Equal(t, clears, surface.clears)
}

func TestSetStateDoesNotRender(t *testing.T) {
	host := newMemHost()
	v := buildStateful(t, host)
	surface := host.lastSurface()
	clears := surface.clears

	require.NoError(t, v.SetState(tabWeapons))
	assert.Equal(t, clears, surface.clears)
	// The surface still shows the stateless layout until a render.
	assert.Equal(t, "", surface.labelAt(3))

	require.NoError(t, v.Render())
	assert.Equal(t, "sword", surface.labelAt(3))
}

func TestSwitchStateRejectsValuesOutsideTheSet(t *testing.T) {
	host := newMemHost()
	v := buildStateful(t, host)

	err := v.SwitchState(shopTab(42))
	assert.True(t, igf.IsInvalidConfiguration(err))
	assert.ErrorIs(t, err, igf.ErrUnknownState)

	_, has := v.State()
	assert.False(t, has)
}

func TestUnmappedStateRendersBaseOnly(t *testing.T) {
	host := newMemHost()
	v := buildStateful(t, host)
	surface := host.lastSurface()

	require.NoError(t, v.SwitchState(tabPotions))
	assert.Equal(t, map[int]string{0: "header"}, surface.snapshot())
}
