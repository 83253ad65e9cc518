package sdlhost

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/ririf4/IGF/pkg/igf"
	"github.com/ririf4/IGF/pkg/igf/constants"
	"github.com/ririf4/IGF/pkg/igf/internal"
)

// ErrSurfaceTooLarge indicates a requested grid exceeds the host's
// 6-row maximum.
var ErrSurfaceTooLarge = errors.New("sdlhost: surface exceeds host maximum size")

// localViewer is the user sitting at the SDL window.
type localViewer struct {
	name string
}

func (v localViewer) Name() string { return v.name }

// Viewer returns a Viewer for the local user of this host.
func Viewer(name string) igf.Viewer { return localViewer{name: name} }

// Host is an SDL2-backed display host. Create it with New, attach a
// dispatcher, then call Run from the main goroutine; Run owns the
// serial event thread all notifications are delivered on. Open and
// Close may be called from any goroutine and are handed off onto that
// thread.
type Host struct {
	opts  Options
	theme Theme
	log   *slog.Logger

	window    *sdl.Window
	renderer  *sdl.Renderer
	font      *ttf.Font
	titleFont *ttf.Font
	icons     *iconCache

	dispatcher *igf.Dispatcher
	jobs       chan func()

	active       *gridSurface
	activeViewer igf.Viewer
	hoverSlot    int
	running      bool

	lastPresent uint64
}

// New initializes SDL and creates the host window. Call Destroy when
// done to release SDL resources.
func New(opts Options) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdlhost: sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("sdlhost: ttf init: %w", err)
	}

	theme := DefaultTheme()
	if opts.ThemePath != "" {
		loaded, err := LoadTheme(opts.ThemePath)
		if err != nil {
			return nil, err
		}
		theme = loaded
	}

	h := &Host{
		opts:      opts,
		theme:     theme,
		log:       internal.GetLogger(),
		icons:     newIconCache(),
		jobs:      make(chan func(), 64),
		hoverSlot: -1,
	}

	width, height := h.windowSize(constants.MaxRows * constants.RowWidth)
	title := opts.WindowTitle
	if title == "" {
		title = "IGF"
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, opts.Window.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("sdlhost: create window: %w", err)
	}
	h.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("sdlhost: create renderer: %w", err)
	}
	h.renderer = renderer

	if theme.FontPath != "" {
		if font, err := ttf.OpenFont(theme.FontPath, theme.fontSize()); err == nil {
			h.font = font
		} else {
			h.log.Warn("font unavailable, labels disabled", "path", theme.FontPath, "error", err)
		}
		if font, err := ttf.OpenFont(theme.FontPath, theme.fontSize()*3/2); err == nil {
			h.titleFont = font
		}
	}

	h.log.Debug("sdl host initialized", "width", width, "height", height)
	return h, nil
}

// Attach binds the dispatcher notifications are delivered to. Must be
// called before Run.
func (h *Host) Attach(d *igf.Dispatcher) { h.dispatcher = d }

// CreateSurface implements igf.Host.
func (h *Host) CreateSurface(owner igf.View, size int, title string) (igf.Surface, error) {
	if size > constants.MaxRows*constants.RowWidth {
		return nil, ErrSurfaceTooLarge
	}
	return newGridSurface(owner, size, title), nil
}

// Open implements igf.Host. The display switch is handed off onto the
// event thread; at most one surface is shown at a time and opening a
// new one closes the previous surface first.
func (h *Host) Open(viewer igf.Viewer, surface igf.Surface) {
	h.schedule(func() {
		grid, ok := surface.(*gridSurface)
		if !ok {
			h.log.Warn("open with foreign surface", "title", surface.Title())
			return
		}
		if h.active != nil && h.active != grid {
			h.closeActive(igf.CloseReasonHost)
		}
		h.active = grid
		h.activeViewer = viewer
		h.hoverSlot = -1
		if h.dispatcher != nil {
			if err := h.dispatcher.HandleOpen(igf.OpenNotification{Surface: grid}); err != nil {
				h.log.Error("open notification rejected", "error", err)
			}
		}
	})
}

// Close implements igf.Host.
func (h *Host) Close(surface igf.Surface) {
	h.schedule(func() {
		if h.active == nil || igf.Surface(h.active) != surface {
			return
		}
		h.closeActive(igf.CloseReasonHost)
	})
}

// schedule hands a job off onto the event thread.
func (h *Host) schedule(job func()) {
	h.jobs <- job
}

func (h *Host) closeActive(reason igf.CloseReason) {
	if h.active == nil {
		return
	}
	surface := h.active
	h.active = nil
	h.activeViewer = nil
	h.hoverSlot = -1
	if h.dispatcher != nil {
		if err := h.dispatcher.HandleClose(igf.CloseNotification{Surface: surface, Reason: reason}); err != nil {
			h.log.Error("close notification rejected", "error", err)
		}
	}
}

// Run drives the event loop until Stop is called or the window closes.
// It must run on the main goroutine.
func (h *Host) Run() error {
	h.running = true
	if h.opts.PowerKey.DevicePath != "" {
		go h.watchPowerKey(h.opts.PowerKey)
	}

	for h.running {
	drain:
		for {
			select {
			case job := <-h.jobs:
				job()
			default:
				break drain
			}
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			h.handleEvent(event)
		}

		h.renderFrame()
		h.present()
	}

	h.closeActive(igf.CloseReasonHost)
	return nil
}

// Stop ends the Run loop from any goroutine.
func (h *Host) Stop() {
	h.schedule(func() { h.running = false })
}

func (h *Host) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		h.running = false

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
			h.closeActive(igf.CloseReasonViewer)
		}

	case *sdl.MouseMotionEvent:
		h.hoverSlot = h.slotAt(e.X, e.Y)

	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN || e.Button != sdl.BUTTON_LEFT {
			return
		}
		if h.active == nil || h.dispatcher == nil {
			return
		}
		slot := h.slotAt(e.X, e.Y)
		if slot < 0 {
			return
		}
		n := &igf.ClickNotification{
			Surface: h.active,
			Slot:    slot,
			Viewer:  h.activeViewer,
		}
		if err := h.dispatcher.HandleClick(n); err != nil {
			h.log.Error("click rejected", "slot", slot, "error", err)
		}
	}
}

// present swaps the render buffer with ~60fps pacing for renderers
// without vsync.
func (h *Host) present() {
	h.renderer.Present()
	now := sdl.GetTicks64()
	if elapsed := now - h.lastPresent; elapsed < 16 {
		sdl.Delay(uint32(16 - elapsed))
	}
	h.lastPresent = sdl.GetTicks64()
}

// Destroy releases all SDL resources.
func (h *Host) Destroy() {
	h.icons.destroy()
	if h.font != nil {
		h.font.Close()
	}
	if h.titleFont != nil {
		h.titleFont.Close()
	}
	if h.renderer != nil {
		h.renderer.Destroy()
	}
	if h.window != nil {
		h.window.Destroy()
	}
	ttf.Quit()
	sdl.Quit()
	internal.CloseLogger()
}
