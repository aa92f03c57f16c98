package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
)

var scales = []theme.Scale{theme.ScaleTitleLarge, theme.ScaleLabelLarge, theme.ScaleBodyMedium}

// FontSet holds one opened font per typography scale. It implements view.Measurer.
type FontSet struct {
	fonts map[theme.Scale]*ttf.Font
}

func openFonts(t theme.Theme) (*FontSet, error) {
	fs := &FontSet{fonts: make(map[theme.Scale]*ttf.Font, len(scales))}

	for _, s := range scales {
		font, err := ttf.OpenFont(t.FontPath, t.FontSize(s))
		if err != nil {
			fs.close()
			return nil, fmt.Errorf("open font %s at %dpx: %w", t.FontPath, t.FontSize(s), err)
		}
		fs.fonts[s] = font
	}

	return fs, nil
}

// Font returns the font for a scale, falling back to body text.
func (fs *FontSet) Font(s theme.Scale) *ttf.Font {
	if f, ok := fs.fonts[s]; ok {
		return f
	}
	return fs.fonts[theme.ScaleBodyMedium]
}

func (fs *FontSet) MeasureText(text string, scale theme.Scale) (int32, int32) {
	font := fs.Font(scale)
	if text == "" {
		return 0, int32(font.Height())
	}

	w, h, err := font.SizeUTF8(text)
	if err != nil {
		GetInternalLogger().Error("Failed to measure text", "text", text, "error", err)
		return 0, int32(font.Height())
	}
	return int32(w), int32(h)
}

func (fs *FontSet) close() {
	for s, f := range fs.fonts {
		f.Close()
		delete(fs.fonts, s)
	}
}
