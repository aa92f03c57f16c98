// Package icons rasterizes the app bar glyphs from embedded SVG sources.
// Glyphs are drawn white so a backend can tint them with a color mod.
package icons

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/view"
)

//go:embed svg/*.svg
var sources embed.FS

var files = map[view.Icon]string{
	view.IconHome:      "svg/home.svg",
	view.IconArrowBack: "svg/arrow_back.svg",
}

// Glyph is the text fallback used where bitmaps cannot be drawn.
func Glyph(icon view.Icon) string {
	switch icon {
	case view.IconHome:
		return "⌂"
	case view.IconArrowBack:
		return "←"
	default:
		return " "
	}
}

// Rasterize renders icon into a size x size RGBA image.
func Rasterize(icon view.Icon, size int) (*image.RGBA, error) {
	name, ok := files[icon]
	if !ok {
		return nil, fmt.Errorf("icons: no source for icon %d", icon)
	}
	if size <= 0 {
		return nil, fmt.Errorf("icons: invalid size %d", size)
	}

	data, err := sources.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("icons: read %s: %w", name, err)
	}

	svg, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("icons: parse %s: %w", name, err)
	}
	svg.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	svg.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return img, nil
}
