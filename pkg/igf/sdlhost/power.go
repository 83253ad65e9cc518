package sdlhost

import (
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/ririf4/IGF/pkg/igf"
)

// watchPowerKey reads a Linux input device and force-closes the active
// surface when the configured key is pressed. Runs on its own goroutine;
// the close itself is handed off onto the event thread.
func (h *Host) watchPowerKey(opts PowerKeyOptions) {
	device, err := evdev.Open(opts.DevicePath)
	if err != nil {
		h.log.Warn("power key watcher disabled", "device", opts.DevicePath, "error", err)
		return
	}
	defer device.Close()

	keyCode := evdev.EvCode(opts.KeyCode)
	if opts.KeyCode == 0 {
		keyCode = evdev.KEY_POWER
	}
	coolDown := opts.CoolDown
	if coolDown <= 0 {
		coolDown = time.Second
	}

	h.log.Debug("power key watcher started", "device", opts.DevicePath, "code", keyCode)

	var lastPress time.Time
	for {
		event, err := device.ReadOne()
		if err != nil {
			h.log.Warn("power key watcher stopped", "error", err)
			return
		}
		if event.Type != evdev.EV_KEY || event.Code != keyCode || event.Value != 1 {
			continue
		}
		if time.Since(lastPress) < coolDown {
			continue
		}
		lastPress = time.Now()
		h.schedule(func() {
			h.closeActive(igf.CloseReasonPowerKey)
		})
	}
}
