package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
)

var currentTheme theme.Theme

// SetTheme sets the active theme for the backend.
func SetTheme(t theme.Theme) {
	currentTheme = t
}

// GetTheme returns the currently active theme.
func GetTheme() theme.Theme {
	return currentTheme
}

// SDLColor converts a theme token into an SDL color.
func SDLColor(c theme.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
