package igf

// VisualKind identifies the visual appearance of an item. The core never
// interprets kinds; the host maps them to colors, icons, or textures.
type VisualKind string

// Conventional kinds used by the framework's default items. Hosts may
// define any number of additional kinds.
const (
	KindNone      VisualKind = ""
	KindFiller    VisualKind = "filler"
	KindPrevArrow VisualKind = "arrow-prev"
	KindNextArrow VisualKind = "arrow-next"
	KindEmpty     VisualKind = "empty"
)

// AutoPosition marks an item whose slot is assigned by the view at render
// time (used by the default navigation items).
const AutoPosition = -1

// MetadataKey identifies a typed metadata value attached to an item.
type MetadataKey string

// ClickHandler is invoked when a viewer clicks the slot an item occupies.
// It runs synchronously on the host's dispatch thread and must not block.
type ClickHandler func(viewer Viewer, view View)

// Item describes one placeable, clickable unit: its slot position, visual
// kind, display label, attached metadata, and optional click handler.
//
// Items are copy-on-write: every With* method returns a new Item with one
// field replaced, so an Item already placed in a rendered view is never
// mutated. The single exception is OnClick, which attaches the handler in
// place on the shared reference as a fluent builder step. Attach handlers
// before the item is shared.
type Item struct {
	position int
	kind     VisualKind
	label    string
	metadata map[MetadataKey]any
	handler  ClickHandler
}

// NewItem creates an Item of the given kind and label at the given slot.
func NewItem(kind VisualKind, label string, position int) *Item {
	return &Item{
		position: position,
		kind:     kind,
		label:    label,
	}
}

// Position returns the slot index the item is declared at.
func (it *Item) Position() int { return it.position }

// Kind returns the item's visual kind.
func (it *Item) Kind() VisualKind { return it.kind }

// Label returns the item's display text.
func (it *Item) Label() string { return it.label }

// Handler returns the attached click handler, or nil.
func (it *Item) Handler() ClickHandler { return it.handler }

// Metadata returns the value attached under key, if any.
func (it *Item) Metadata(key MetadataKey) (any, bool) {
	v, ok := it.metadata[key]
	return v, ok
}

// MetadataKeys returns the keys of all attached metadata values.
func (it *Item) MetadataKeys() []MetadataKey {
	if len(it.metadata) == 0 {
		return nil
	}
	keys := make([]MetadataKey, 0, len(it.metadata))
	for k := range it.metadata {
		keys = append(keys, k)
	}
	return keys
}

// WithPosition returns a copy of the item at a different slot.
func (it *Item) WithPosition(position int) *Item {
	c := it.clone()
	c.position = position
	return c
}

// WithKind returns a copy of the item with a different visual kind.
func (it *Item) WithKind(kind VisualKind) *Item {
	c := it.clone()
	c.kind = kind
	return c
}

// WithLabel returns a copy of the item with a different display label.
func (it *Item) WithLabel(label string) *Item {
	c := it.clone()
	c.label = label
	return c
}

// WithMetadata returns a copy of the item with an additional metadata
// entry. Existing entries are preserved; the same key is overwritten.
func (it *Item) WithMetadata(key MetadataKey, value any) *Item {
	c := it.clone()
	if c.metadata == nil {
		c.metadata = make(map[MetadataKey]any, 1)
	}
	c.metadata[key] = value
	return c
}

// OnClick attaches a click handler to this item and returns the same
// item for chaining. Unlike the With* methods this mutates the shared
// reference; it is safe only before the item is placed into a view,
// under the host's single-thread delivery guarantee.
func (it *Item) OnClick(handler ClickHandler) *Item {
	it.handler = handler
	return it
}

func (it *Item) clone() *Item {
	c := &Item{
		position: it.position,
		kind:     it.kind,
		label:    it.label,
		handler:  it.handler,
	}
	if len(it.metadata) > 0 {
		c.metadata = make(map[MetadataKey]any, len(it.metadata))
		for k, v := range it.metadata {
			c.metadata[k] = v
		}
	}
	return c
}
