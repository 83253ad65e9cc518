package igf

import (
	"log/slog"

	"github.com/ririf4/IGF/pkg/igf/constants"
)

// View is the common contract of every view kind. All mutation, render,
// and resolution happens on the host's serial event thread; views carry
// no internal locking.
//
// AllItems returns every item currently eligible for click routing, in
// ascending render precedence order. Resolve agrees with the renderer's
// last-write-wins rule by picking the last matching item in that order.
type View interface {
	Title() string
	Size() int
	Viewer() Viewer
	// Surface returns the backing surface, or nil before Build.
	Surface() Surface
	AllItems() []*Item
	Resolve(slot int) *Item

	notifyOpen()
	notifyClose(reason CloseReason)
}

// baseView holds the configuration and render plumbing shared by every
// view kind: title, size, background fill, base items, lifecycle
// callbacks, and the surface allocated at Build.
type baseView struct {
	d      *Dispatcher
	viewer Viewer
	log    *slog.Logger

	title         string
	size          int
	background    VisualKind
	hasBackground bool
	baseItems     []*Item

	surface Surface

	onOpen  func(Viewer)
	onClose func(Viewer, CloseReason)
}

func newBaseView(d *Dispatcher, viewer Viewer) baseView {
	return baseView{
		d:      d,
		viewer: viewer,
		log:    d.log,
	}
}

// Title returns the view title shown on the surface.
func (b *baseView) Title() string { return b.title }

// Size returns the configured grid size, or 0 if unset.
func (b *baseView) Size() int { return b.size }

// Viewer returns the viewer this view was constructed for.
func (b *baseView) Viewer() Viewer { return b.viewer }

// Surface returns the backing surface, or nil before Build.
func (b *baseView) Surface() Surface { return b.surface }

func (b *baseView) setTitle(title string) { b.title = title }

func (b *baseView) setSize(op string, n int) error {
	if n <= 0 || n%constants.RowWidth != 0 {
		return &ConfigError{Op: op, Err: ErrSizeNotMultipleOfRow}
	}
	b.size = n
	return nil
}

func (b *baseView) setBackground(kind VisualKind) {
	b.background = kind
	b.hasBackground = true
}

func (b *baseView) setItems(items []*Item)   { b.baseItems = items }
func (b *baseView) addItems(items ...*Item)  { b.baseItems = append(b.baseItems, items...) }
func (b *baseView) setOnOpen(f func(Viewer)) { b.onOpen = f }
func (b *baseView) setOnClose(f func(Viewer, CloseReason)) {
	b.onClose = f
}

// create allocates the surface exactly once and registers the owning
// view with the dispatcher so notifications can be routed back to it.
func (b *baseView) create(owner View) error {
	const op = "build"
	if b.surface != nil {
		return &StateError{Op: op, Err: ErrAlreadyBuilt}
	}
	if b.title == "" {
		return &StateError{Op: op, Err: ErrMissingTitle}
	}
	if b.size == 0 {
		return &StateError{Op: op, Err: ErrMissingSize}
	}
	if err := b.d.checkOpen(op); err != nil {
		return err
	}
	surface, err := b.d.host.CreateSurface(owner, b.size, b.title)
	if err != nil {
		return err
	}
	b.surface = surface
	b.d.register(owner)
	b.log.Debug("surface created", "title", b.title, "size", b.size)
	return nil
}

// paint performs one full render pass: clear, background fill, then the
// given item layers in ascending precedence. A later write to a slot
// always replaces an earlier one. Items whose position falls outside the
// grid are silently dropped.
func (b *baseView) paint(layers ...[]*Item) {
	s := b.surface
	s.Clear()
	if b.hasBackground {
		fill := NewItem(b.background, "", AutoPosition)
		for i := 0; i < b.size; i++ {
			s.SetSlot(i, fill)
		}
	}
	for _, layer := range layers {
		for _, it := range layer {
			if it == nil {
				continue
			}
			p := it.Position()
			if p < 0 || p >= b.size {
				continue
			}
			s.SetSlot(p, it)
		}
	}
}

func (b *baseView) requireBuilt(op string) error {
	if b.surface == nil {
		return &StateError{Op: op, Err: ErrNotBuilt}
	}
	return nil
}

// Open schedules the surface to be shown to the view's viewer.
func (b *baseView) Open() error {
	if err := b.requireBuilt("open"); err != nil {
		return err
	}
	b.d.host.Open(b.viewer, b.surface)
	return nil
}

// Close asks the host to close the surface. The close callback fires
// when the host delivers the resulting CloseNotification.
func (b *baseView) Close() error {
	if err := b.requireBuilt("close"); err != nil {
		return err
	}
	b.d.host.Close(b.surface)
	return nil
}

func (b *baseView) notifyOpen() {
	if b.onOpen != nil {
		b.onOpen(b.viewer)
	}
}

func (b *baseView) notifyClose(reason CloseReason) {
	if b.onClose != nil {
		b.onClose(b.viewer, reason)
	}
}

// resolveIn scans items in reverse so the last logical writer of a slot,
// the one the renderer left visible, is the one that wins.
func resolveIn(items []*Item, slot int) *Item {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] != nil && items[i].Position() == slot {
			return items[i]
		}
	}
	return nil
}
