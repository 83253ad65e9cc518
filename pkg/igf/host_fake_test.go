package igf_test

import (
	"github.com/ririf4/IGF/pkg/igf"
)

// memSurface is an in-memory recording surface for tests.
type memSurface struct {
	title  string
	slots  []*igf.Item
	clears int
}

func (s *memSurface) Size() int     { return len(s.slots) }
func (s *memSurface) Title() string { return s.title }

func (s *memSurface) SetSlot(index int, item *igf.Item) {
	if index < 0 || index >= len(s.slots) {
		return
	}
	s.slots[index] = item
}

func (s *memSurface) Clear() {
	s.clears++
	for i := range s.slots {
		s.slots[i] = nil
	}
}

// labelAt returns the label of the item shown in a slot, or "" when the
// slot is empty.
func (s *memSurface) labelAt(slot int) string {
	if s.slots[slot] == nil {
		return ""
	}
	return s.slots[slot].Label()
}

// snapshot returns the current slot -> label mapping, skipping empty
// slots.
func (s *memSurface) snapshot() map[int]string {
	m := make(map[int]string)
	for i, it := range s.slots {
		if it != nil {
			m[i] = it.Label()
		}
	}
	return m
}

// memHost is an in-memory igf.Host recording open/close calls.
type memHost struct {
	created   []*memSurface
	opened    []igf.Surface
	closed    []igf.Surface
	createErr error
}

func newMemHost() *memHost { return &memHost{} }

func (h *memHost) CreateSurface(owner igf.View, size int, title string) (igf.Surface, error) {
	if h.createErr != nil {
		return nil, h.createErr
	}
	s := &memSurface{title: title, slots: make([]*igf.Item, size)}
	h.created = append(h.created, s)
	return s, nil
}

func (h *memHost) Open(viewer igf.Viewer, surface igf.Surface) {
	h.opened = append(h.opened, surface)
}

func (h *memHost) Close(surface igf.Surface) {
	h.closed = append(h.closed, surface)
}

// lastSurface returns the most recently created surface.
func (h *memHost) lastSurface() *memSurface {
	if len(h.created) == 0 {
		return nil
	}
	return h.created[len(h.created)-1]
}

type testViewer string

func (v testViewer) Name() string { return string(v) }

func newDispatcher(t interface{ Fatalf(string, ...any) }, host igf.Host) *igf.Dispatcher {
	d, err := igf.New(host, igf.Options{})
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	return d
}
