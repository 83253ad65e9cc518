package sdlhost

import "github.com/ririf4/IGF/pkg/igf"

// gridSurface is the SDL-backed slot grid. Slots are written by view
// renders and read by the frame renderer; both run on the host's event
// thread, so no locking is needed.
type gridSurface struct {
	owner igf.View
	title string
	slots []*igf.Item
}

func newGridSurface(owner igf.View, size int, title string) *gridSurface {
	return &gridSurface{
		owner: owner,
		title: title,
		slots: make([]*igf.Item, size),
	}
}

func (s *gridSurface) Size() int { return len(s.slots) }

func (s *gridSurface) Title() string { return s.title }

func (s *gridSurface) SetSlot(index int, item *igf.Item) {
	if index < 0 || index >= len(s.slots) {
		return
	}
	s.slots[index] = item
}

func (s *gridSurface) Clear() {
	for i := range s.slots {
		s.slots[i] = nil
	}
}

func (s *gridSurface) itemAt(index int) *igf.Item {
	if index < 0 || index >= len(s.slots) {
		return nil
	}
	return s.slots[index]
}
