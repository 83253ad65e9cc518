package igf

// Viewer is the end user a surface is displayed to.
type Viewer interface {
	Name() string
}

// Surface is the fixed-size addressable slot grid backing one view.
// Implementations are provided by the host; the core only clears it and
// writes items into slots during render.
type Surface interface {
	// Size returns the number of slots.
	Size() int
	// SetSlot places an item into a slot. Out-of-range indexes are
	// silently ignored.
	SetSlot(index int, item *Item)
	// Clear empties every slot.
	Clear()
	// Title returns the title the surface was created with.
	Title() string
}

// Host is the display collaborator the framework renders through.
//
// Open is a cross-thread hand-off: implementations must schedule the
// actual display onto their serial event thread rather than block the
// caller.
type Host interface {
	CreateSurface(owner View, size int, title string) (Surface, error)
	Open(viewer Viewer, surface Surface)
	Close(surface Surface)
}

// CloseReason tells a close callback why its surface went away.
type CloseReason int

const (
	CloseReasonUnknown  CloseReason = iota
	CloseReasonViewer               // the viewer dismissed the surface
	CloseReasonHost                 // the host shut the surface down
	CloseReasonPowerKey             // a hardware power key forced the close
)

func (r CloseReason) String() string {
	switch r {
	case CloseReasonViewer:
		return "viewer"
	case CloseReasonHost:
		return "host"
	case CloseReasonPowerKey:
		return "power-key"
	default:
		return "unknown"
	}
}

// ClickNotification is delivered by the host when a viewer clicks a slot.
// The dispatcher always cancels the host's default interaction.
type ClickNotification struct {
	Surface Surface
	Slot    int
	Viewer  Viewer

	cancelled bool
}

// Cancel vetoes the host's default interaction for this click.
func (n *ClickNotification) Cancel() { n.cancelled = true }

// Cancelled reports whether the default interaction was vetoed.
func (n *ClickNotification) Cancelled() bool { return n.cancelled }

// OpenNotification is delivered when a surface is shown to its viewer.
type OpenNotification struct {
	Surface Surface
}

// CloseNotification is delivered when a surface is closed.
type CloseNotification struct {
	Surface Surface
	Reason  CloseReason
}
