// Package theme defines the color tokens and type scales consumed by the
// presentation components. Both rendering backends read from it; neither
// writes to it after start-up.
package theme

import "fmt"

// Color is a straight (non-premultiplied) RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Hex converts 0xRRGGBB into an opaque Color.
func Hex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// WithAlpha returns the color with its alpha channel scaled by alpha (0..1).
func (c Color) WithAlpha(alpha float32) Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float32(c.A)*alpha + 0.5)
	return c
}

// String renders the color as #RRGGBB, the form lipgloss accepts.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Scale names a typography level.
type Scale int

const (
	ScaleTitleLarge Scale = iota // app bar titles
	ScaleLabelLarge              // profile names
	ScaleBodyMedium              // status labels
)

// Content alpha levels applied to text.
const (
	AlphaHigh   float32 = 1.0
	AlphaMedium float32 = 0.74
)

// Theme is the full set of tokens.
type Theme struct {
	OnlineColor         Color // avatar border when online
	OfflineColor        Color // avatar border when offline
	SurfaceColor        Color // card background
	HighlightColor      Color // focused card background
	BackgroundColor     Color // screen background
	AppBarColor         Color
	OnAppBarColor       Color // app bar title and icon
	TextColor           Color
	PlaceholderColor    Color // avatar while its image is pending or failed
	FontPath            string
	BackgroundImagePath string
	FontSizes           map[Scale]int
}

// DefaultFontSizes are pixel sizes for each scale.
var DefaultFontSizes = map[Scale]int{
	ScaleTitleLarge: 30,
	ScaleLabelLarge: 26,
	ScaleBodyMedium: 22,
}

// FontSize returns the pixel size for a scale, falling back to the defaults.
func (t Theme) FontSize(s Scale) int {
	if size, ok := t.FontSizes[s]; ok && size > 0 {
		return size
	}
	return DefaultFontSizes[s]
}

// StatusColor picks the avatar border color for an online flag.
func (t Theme) StatusColor(online bool) Color {
	if online {
		return t.OnlineColor
	}
	return t.OfflineColor
}

// StatusAlpha picks the text alpha for an online flag.
func StatusAlpha(online bool) float32 {
	if online {
		return AlphaHigh
	}
	return AlphaMedium
}
