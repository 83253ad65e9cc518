// Package igf provides a framework for composing stateful, paginated,
// grid-based selection interfaces and routing viewer clicks back to
// per-item handlers.
//
// A Dispatcher is constructed once around a Host and passed to every
// view constructor. Views are configured through chained setters, built,
// and opened; the host delivers click/open/close notifications to the
// dispatcher, which resolves the clicked slot through the owning view
// and invokes the matched item's handler.
package igf

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/ririf4/IGF/pkg/igf/internal"
)

// Options configures a Dispatcher.
type Options struct {
	Logger    *slog.Logger // Custom logger; defaults to the framework logger
	Languages []string     // Preferred locales for default item labels (BCP 47)
	LogPath   string       // Full path for the framework log file (optional)
}

// Dispatcher routes host notifications to the views that own their
// surfaces. It is the framework's explicit context object: construct it
// once at startup and hand it to every view constructor.
//
// All Handle methods are synchronous re-entries from the host's serial
// event thread and never block.
type Dispatcher struct {
	host      Host
	log       *slog.Logger
	localizer localizer
	open      *atomic.Bool
	views     map[Surface]View
}

// New creates a Dispatcher bound to the given host.
func New(host Host, opts Options) (*Dispatcher, error) {
	if host == nil {
		return nil, &ConfigError{Op: "new_dispatcher", Err: ErrNilHost}
	}
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}
	log := opts.Logger
	if log == nil {
		log = internal.GetLogger()
	}
	return &Dispatcher{
		host:      host,
		log:       log,
		localizer: newLocalizer(opts.Languages...),
		open:      atomic.NewBool(true),
		views:     make(map[Surface]View),
	}, nil
}

// Close detaches the dispatcher. Subsequent Handle calls and view
// builds fail with a StateError.
func (d *Dispatcher) Close() {
	if !d.open.CompareAndSwap(true, false) {
		return
	}
	d.views = make(map[Surface]View)
	d.log.Debug("dispatcher closed")
}

func (d *Dispatcher) checkOpen(op string) error {
	if !d.open.Load() {
		return &StateError{Op: op, Err: ErrDispatcherClosed}
	}
	return nil
}

func (d *Dispatcher) register(view View) {
	d.views[view.Surface()] = view
}

// ViewCount returns the number of registered (built, not yet closed)
// views.
func (d *Dispatcher) ViewCount() int { return len(d.views) }

// HandleClick routes a click notification. The default host interaction
// is always cancelled, whether or not the slot resolves to an item; a
// click on an empty slot, or on an item with no handler, does nothing.
func (d *Dispatcher) HandleClick(n *ClickNotification) error {
	if err := d.checkOpen("handle_click"); err != nil {
		return err
	}
	if n == nil {
		return nil
	}
	n.Cancel()
	view, ok := d.views[n.Surface]
	if !ok {
		d.log.Debug("click on unknown surface", "slot", n.Slot)
		return nil
	}
	item := view.Resolve(n.Slot)
	if item == nil || item.Handler() == nil {
		return nil
	}
	item.Handler()(n.Viewer, view)
	return nil
}

// HandleOpen invokes the owning view's open callback, if any.
func (d *Dispatcher) HandleOpen(n OpenNotification) error {
	if err := d.checkOpen("handle_open"); err != nil {
		return err
	}
	if view, ok := d.views[n.Surface]; ok {
		view.notifyOpen()
	}
	return nil
}

// HandleClose invokes the owning view's close callback with the close
// reason and unregisters the view.
func (d *Dispatcher) HandleClose(n CloseNotification) error {
	if err := d.checkOpen("handle_close"); err != nil {
		return err
	}
	view, ok := d.views[n.Surface]
	if !ok {
		return nil
	}
	delete(d.views, n.Surface)
	view.notifyClose(n.Reason)
	return nil
}
