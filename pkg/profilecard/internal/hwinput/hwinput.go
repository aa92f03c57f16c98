// Package hwinput reads key events straight from an evdev device, for
// handhelds whose buttons are not exposed to SDL as a game controller.
package hwinput

import (
	"errors"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/constants"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("hwinput: evdev is only available on linux")

// Event is a virtual button press or release read from the device.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

const eventBuffer = 16
