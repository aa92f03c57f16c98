package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/constants"
)

// Event is a virtual button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

var controllers = map[sdl.JoystickID]*sdl.GameController{}

// ButtonForKey maps keyboard keys onto virtual buttons.
func ButtonForKey(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_RETURN, sdl.K_KP_ENTER, sdl.K_SPACE:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		return constants.VirtualButtonB
	case sdl.K_q:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

// ButtonForController maps game controller buttons onto virtual buttons.
func ButtonForController(button sdl.GameControllerButton) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_START, sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

// ProcessSDLEvent turns keyboard and controller events into virtual button
// events. It returns nil for everything else, including key auto-repeat,
// which DirectionalInput handles itself.
func ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		return newEvent(ButtonForKey(e.Keysym.Sym), e.State == sdl.PRESSED)
	case *sdl.ControllerButtonEvent:
		return newEvent(ButtonForController(sdl.GameControllerButton(e.Button)), e.State == sdl.PRESSED)
	case *sdl.ControllerDeviceEvent:
		handleControllerDevice(e)
	}
	return nil
}

func newEvent(button constants.VirtualButton, pressed bool) *Event {
	if button == constants.VirtualButtonUnassigned {
		return nil
	}
	return &Event{Button: button, Pressed: pressed}
}

func handleControllerDevice(e *sdl.ControllerDeviceEvent) {
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		index := int(e.Which)
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
		GetInternalLogger().Debug("Game controller connected", "name", controller.Name(), "id", id)
	case sdl.CONTROLLERDEVICEREMOVED:
		if controller, ok := controllers[e.Which]; ok {
			controller.Close()
			delete(controllers, e.Which)
		}
	}
}

// CloseAllControllers closes every controller opened by ProcessSDLEvent.
func CloseAllControllers() {
	for id, controller := range controllers {
		controller.Close()
		delete(controllers, id)
	}
}
