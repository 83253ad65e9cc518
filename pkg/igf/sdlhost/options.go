// Package sdlhost provides a reference Host implementation for the IGF
// framework on SDL2. It owns the window, renders the active surface as
// a 9-column slot grid, maps mouse clicks to slot indexes, and delivers
// notifications to the attached dispatcher on its serial event thread.
package sdlhost

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// Padding defines spacing on all four sides of the grid.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// WindowOptions controls SDL window flags.
type WindowOptions struct {
	Borderless  bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable   bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen  bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	AlwaysOnTop bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden      bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}

// PowerKeyOptions configures the hardware power-key watcher. Leave
// DevicePath empty to disable it.
type PowerKeyOptions struct {
	DevicePath string        // Input device path (e.g., /dev/input/event1)
	KeyCode    uint16        // evdev key code; 0 means KEY_POWER
	CoolDown   time.Duration // Minimum gap between accepted presses
}

// Options configures the SDL host.
type Options struct {
	WindowTitle string
	ThemePath   string // TOML theme file; empty uses the built-in theme
	SlotSize    int32  // Pixel size of one slot square; 0 means 96
	SlotGap     int32  // Pixel gap between slots; 0 means 8
	Margins     Padding
	Window      WindowOptions
	PowerKey    PowerKeyOptions
}

func (o Options) slotSize() int32 {
	if o.SlotSize <= 0 {
		return 96
	}
	return o.SlotSize
}

func (o Options) slotGap() int32 {
	if o.SlotGap <= 0 {
		return 8
	}
	return o.SlotGap
}
