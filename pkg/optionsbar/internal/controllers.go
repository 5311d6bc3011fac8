package internal

import "github.com/veandco/go-sdl2/sdl"

// controllers tracks every opened game controller by joystick instance id.
// SDL only delivers ControllerButtonEvents for opened controllers, so the
// library opens everything it finds at Init and whatever shows up later.
var controllers = make(map[sdl.JoystickID]*sdl.GameController)

func initControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		OpenController(i)
	}
}

// OpenController opens the game controller at the given joystick device
// index. Devices without a controller mapping are skipped.
func OpenController(index int) {
	if !sdl.IsGameController(index) {
		return
	}

	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}

	id := controller.Joystick().InstanceID()
	controllers[id] = controller
	GetInternalLogger().Debug("Opened game controller", "index", index, "name", controller.Name())
}

// CloseController releases the controller with the given joystick instance
// id, typically after SDL reports it removed.
func CloseController(id sdl.JoystickID) {
	controller, ok := controllers[id]
	if !ok {
		return
	}
	controller.Close()
	delete(controllers, id)
}

// HandleControllerDeviceEvent keeps the opened-controller set in sync with
// hotplug events. Widgets forward device events here so pads paired after
// startup begin delivering button events.
func HandleControllerDeviceEvent(event *sdl.ControllerDeviceEvent) {
	switch event.Type {
	case sdl.CONTROLLERDEVICEADDED:
		OpenController(int(event.Which))
	case sdl.CONTROLLERDEVICEREMOVED:
		CloseController(sdl.JoystickID(event.Which))
	}
}

// CloseAllControllers releases every opened controller.
func CloseAllControllers() {
	for id, controller := range controllers {
		controller.Close()
		delete(controllers, id)
	}
}
