package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/constants"
)

// WindowOptions describes the window to create.
type WindowOptions struct {
	Title          string
	Width          int32 // 0 uses the current display mode
	Height         int32 // 0 uses the current display mode
	Borderless     bool  // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Fullscreen     bool  // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	Hidden         bool  // Start hidden (omits SDL_WINDOW_SHOWN)
	ShowBackground bool  // Draw the theme background image behind the screens
}

// ToSDLFlags maps the options onto SDL window flags. Dev mode windows are
// always decorated and resizable.
func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if constants.IsDevMode() {
		return flags | sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}
