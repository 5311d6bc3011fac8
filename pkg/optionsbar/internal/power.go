package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig describes the hardware power button of a handheld device
// and the actions bound to short and long presses.
type PowerButtonConfig struct {
	ButtonCode      uint16        // evdev key code, typically KEY_POWER (116)
	DevicePath      string        // Input device to watch, e.g. /dev/input/event1
	ShortPressMax   time.Duration // Presses at or above this length shut down instead of suspending
	CoolDownTime    time.Duration // Minimum time between two accepted presses
	SuspendScript   string        // Command run on short press
	ShutdownCommand string        // Command run on long press
}

var powerWatcherStopped = atomic.NewBool(false)

// PowerButtonHandler watches the configured input device and runs the
// suspend script on a short press or the shutdown command when the button
// is held past ShortPressMax. Runs until StopPowerButtonHandler is called
// or the device goes away.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	defer wg.Done()

	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		return
	}
	defer device.Close()

	var pressedAt time.Time
	var lastAction time.Time

	for !powerWatcherStopped.Load() {
		event, err := device.ReadOne()
		if err != nil {
			GetInternalLogger().Debug("Power button device read ended", "error", err)
			return
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != pbc.ButtonCode {
			continue
		}

		switch event.Value {
		case 1: // press
			pressedAt = time.Now()
		case 0: // release
			if pressedAt.IsZero() {
				continue
			}
			held := time.Since(pressedAt)
			pressedAt = time.Time{}

			if pbc.CoolDownTime > 0 && time.Since(lastAction) < pbc.CoolDownTime {
				continue
			}
			lastAction = time.Now()

			command := pbc.SuspendScript
			if held >= pbc.ShortPressMax {
				command = pbc.ShutdownCommand
			}
			if command == "" {
				continue
			}

			GetInternalLogger().Info("Power button action", "command", command, "held", held)
			if err := exec.Command(command).Run(); err != nil {
				GetInternalLogger().Error("Power button command failed", "command", command, "error", err)
			}
		}
	}
}

// StopPowerButtonHandler signals the watcher goroutine to exit after its
// next event.
func StopPowerButtonHandler() {
	powerWatcherStopped.Store(true)
}
