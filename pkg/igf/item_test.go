package igf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ririf4/IGF/pkg/igf"
)

func TestItemCopyOnWrite(t *testing.T) {
	original := igf.NewItem(igf.KindFiller, "gem", 4).WithMetadata("rarity", "epic")

	moved := original.WithPosition(8)
	renamed := original.WithLabel("rock")
	rekinded := original.WithKind("stone")

	assert.NotSame(t, original, moved)
	assert.Equal(t, 4, original.Position())
	assert.Equal(t, 8, moved.Position())
	assert.Equal(t, "gem", original.Label())
	assert.Equal(t, "rock", renamed.Label())
	assert.Equal(t, igf.KindFiller, original.Kind())
	assert.Equal(t, igf.VisualKind("stone"), rekinded.Kind())

	// Copies carry the metadata forward.
	v, ok := moved.Metadata("rarity")
	require.True(t, ok)
	assert.Equal(t, "epic", v)
}

func TestItemMetadataIsolation(t *testing.T) {
	original := igf.NewItem(igf.KindFiller, "gem", 0).WithMetadata("count", 1)
	updated := original.WithMetadata("count", 2)

	v, _ := original.Metadata("count")
	assert.Equal(t, 1, v)
	v, _ = updated.Metadata("count")
	assert.Equal(t, 2, v)

	_, ok := original.Metadata("missing")
	assert.False(t, ok)
	assert.ElementsMatch(t, []igf.MetadataKey{"count"}, updated.MetadataKeys())
}

func TestItemOnClickMutatesSharedReference(t *testing.T) {
	item := igf.NewItem(igf.KindFiller, "button", 0)
	require.Nil(t, item.Handler())

	returned := item.OnClick(func(igf.Viewer, igf.View) {})

	assert.Same(t, item, returned)
	assert.NotNil(t, item.Handler())

	// A copy keeps the handler.
	placed := item.WithPosition(3)
	assert.NotNil(t, placed.Handler())
}
