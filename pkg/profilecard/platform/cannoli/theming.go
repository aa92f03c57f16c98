// Package cannoli provides the default theme used on the Cannoli custom
// firmware and in desktop dev mode.
package cannoli

import (
	"maps"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
)

// DefaultFontPath is where Cannoli ships its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// LightGreen is the online accent.
const LightGreen = 0x8BC34A

// InitCannoliTheme creates the theme with Cannoli's colors and the given font.
func InitCannoliTheme(fontPath string) theme.Theme {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}
	return theme.Theme{
		OnlineColor:      theme.Hex(LightGreen),
		OfflineColor:     theme.Hex(0xFF0000),
		SurfaceColor:     theme.Hex(0x1E2A2A),
		HighlightColor:   theme.Hex(0x2F4F4F),
		BackgroundColor:  theme.Hex(0x101818),
		AppBarColor:      theme.Hex(0x008080),
		OnAppBarColor:    theme.Hex(0xFFFFFF),
		TextColor:        theme.Hex(0xFFFFFF),
		PlaceholderColor: theme.Hex(0x3A4A4A),
		FontPath:         fontPath,
		FontSizes:        maps.Clone(theme.DefaultFontSizes),
	}
}
