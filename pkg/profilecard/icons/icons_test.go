package icons

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/view"
)

func opaquePixels(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestRasterize(t *testing.T) {
	t.Parallel()

	for _, icon := range []view.Icon{view.IconHome, view.IconArrowBack} {
		img, err := Rasterize(icon, 48)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 48, 48), img.Bounds())

		painted := opaquePixels(img)
		assert.Greater(t, painted, 48*48/20, "icon %d draws something", icon)
		assert.Less(t, painted, 48*48, "icon %d leaves background transparent", icon)
	}
}

func TestRasterize_Errors(t *testing.T) {
	t.Parallel()

	_, err := Rasterize(view.IconNone, 24)
	require.Error(t, err)

	_, err = Rasterize(view.IconHome, 0)
	require.Error(t, err)
}

func TestGlyph(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "⌂", Glyph(view.IconHome))
	assert.Equal(t, "←", Glyph(view.IconArrowBack))
	assert.Equal(t, " ", Glyph(view.IconNone))
}
