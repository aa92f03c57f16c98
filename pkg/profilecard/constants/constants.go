// Package constants defines shared constants, types, and environment
// variable names used throughout profilecard.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at start-up.
const (
	EnvironmentEnvVar    = "ENVIRONMENT"        // "DEV" for a windowed desktop session
	ConfigPathEnvVar     = "PROFILECARD_CONFIG" // config file when -config is not given
	WindowWidthEnvVar    = "WINDOW_WIDTH"       // dev-mode window width
	WindowHeightEnvVar   = "WINDOW_HEIGHT"      // dev-mode window height
	LogLevelEnvVar       = "LOG_LEVEL"
	LocaleEnvVar         = "PROFILECARD_LOCALE" // message language; English when unset
	BackgroundPathEnvVar = "BACKGROUND_PATH" // custom background image path
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton is an abstract input, mapped from keyboard keys, controller
// buttons and raw evdev codes.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonA // select
	VirtualButtonB // back
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Default timing constants.
const (
	DefaultInputDelay     = 20 * time.Millisecond  // Debounce delay between input events
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before the first repeat
	DefaultRepeatInterval = 80 * time.Millisecond  // Time between repeats while held
	FrameInterval         = 16 * time.Millisecond  // ~60 fps
)

// WheelScrollStep is the scroll distance of one mouse wheel notch in pixels.
const WheelScrollStep int32 = 48
