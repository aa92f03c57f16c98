package internal

import (
	"errors"
	"fmt"
	"image"
	"math"
	"runtime"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/icons"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/imageloader"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/view"
)

// ImageSource is the part of the image loader the painter needs.
type ImageSource interface {
	Load(url string) imageloader.Result
}

// Painter draws laid-out frames with the SDL renderer.
type Painter struct {
	window    *Window
	renderer  *sdl.Renderer
	fonts     *FontSet
	images    ImageSource
	crossfade time.Duration
	now       func() time.Time

	text    *TextureCache
	glyphs  *TextureCache
	avatars *TextureCache
}

func newPainter(window *Window, fonts *FontSet, images ImageSource, crossfade time.Duration) *Painter {
	return &Painter{
		window:    window,
		renderer:  window.Renderer,
		fonts:     fonts,
		images:    images,
		crossfade: crossfade,
		now:       time.Now,
		text:      NewTextureCacheWithSize(128),
		glyphs:    NewTextureCacheWithSize(8),
		avatars:   NewTextureCacheWithSize(48),
	}
}

func (p *Painter) MeasureText(text string, scale theme.Scale) (int32, int32) {
	return p.fonts.MeasureText(text, scale)
}

// Paint clears the screen and draws every box of the frame in order. It
// reports whether an avatar is still fading in, in which case the caller
// should keep drawing frames.
func (p *Painter) Paint(frame *view.Frame) bool {
	bg := GetTheme().BackgroundColor
	p.renderer.SetClipRect(nil)
	p.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	p.renderer.Clear()

	animating := false

	for _, box := range frame.Boxes {
		clip := toSDLRect(box.Clip)
		p.renderer.SetClipRect(&clip)

		n := box.Node
		switch n.Kind {
		case view.KindScaffold:
			if p.window.DisplayBackground && p.window.Background != nil {
				p.window.RenderBackground()
			} else {
				p.fillRect(box.Rect, n.Background)
			}
		case view.KindAppBar, view.KindCard:
			p.fillRect(box.Rect, n.Background)
		case view.KindText:
			p.drawText(box.Rect, n)
		case view.KindIcon:
			p.drawIcon(box.Rect, n)
		case view.KindAvatar:
			if p.drawAvatar(box.Rect, n) {
				animating = true
			}
		}
	}

	p.renderer.SetClipRect(nil)
	return animating
}

func (p *Painter) fillRect(r view.Rect, c theme.Color) {
	if c.A == 0 {
		return
	}
	rect := toSDLRect(r)
	p.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	p.renderer.FillRect(&rect)
}

// fillCircle fills the circle inscribed in the square at (x, y) one scanline at a time.
func (p *Painter) fillCircle(x, y, diameter int32, c theme.Color) {
	if c.A == 0 || diameter <= 0 {
		return
	}
	p.renderer.SetDrawColor(c.R, c.G, c.B, c.A)

	r := float64(diameter) / 2
	for row := int32(0); row < diameter; row++ {
		dy := float64(row) + 0.5 - r
		half := int32(math.Sqrt(r*r-dy*dy) + 0.5)
		if half <= 0 {
			continue
		}
		cx := x + diameter/2
		p.renderer.FillRect(&sdl.Rect{X: cx - half, Y: y + row, W: 2 * half, H: 1})
	}
}

// drawText renders white glyphs once per scale and string, then tints them at draw time.
func (p *Painter) drawText(r view.Rect, n *view.Node) {
	if n.Text == "" {
		return
	}

	key := fmt.Sprintf("%d|%s", n.Style.Scale, n.Text)
	texture := p.text.Get(key)
	if texture == nil {
		texture = p.renderText(n.Text, n.Style.Scale)
		if texture == nil {
			return
		}
		p.text.Set(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}
	w = min(w, r.W)

	c := n.Style.Color
	texture.SetColorMod(c.R, c.G, c.B)
	texture.SetAlphaMod(c.A)
	p.renderer.Copy(texture, &sdl.Rect{W: w, H: h}, &sdl.Rect{X: r.X, Y: r.Y, W: w, H: h})
}

func (p *Painter) renderText(text string, scale theme.Scale) *sdl.Texture {
	surface, err := p.fonts.Font(scale).RenderUTF8Blended(text, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := p.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Error("Failed to create text texture", "error", err)
		return nil
	}
	return texture
}

func (p *Painter) drawIcon(r view.Rect, n *view.Node) {
	key := fmt.Sprintf("%d|%d", n.Icon, n.Size)
	texture := p.glyphs.Get(key)
	if texture == nil {
		img, err := icons.Rasterize(n.Icon, int(n.Size))
		if err != nil {
			GetInternalLogger().Error("Failed to rasterize icon", "icon", n.Icon, "error", err)
			return
		}
		texture, err = p.textureFromRGBA(img)
		if err != nil {
			GetInternalLogger().Error("Failed to create icon texture", "error", err)
			return
		}
		p.glyphs.Set(key, texture)
	}

	c := n.Background
	texture.SetColorMod(c.R, c.G, c.B)
	texture.SetAlphaMod(c.A)
	dst := toSDLRect(r)
	p.renderer.Copy(texture, nil, &dst)
}

// drawAvatar draws the status ring, then the placeholder, then the image
// fading in over it. It reports whether the fade is still running.
func (p *Painter) drawAvatar(r view.Rect, n *view.Node) bool {
	p.fillCircle(r.X, r.Y, n.Size, n.Border)

	inset := n.BorderWidth
	inner := n.Size - 2*inset
	x, y := r.X+inset, r.Y+inset
	p.fillCircle(x, y, inner, n.Background)

	res := p.images.Load(n.ImageURL)
	if res.State != imageloader.StateReady {
		return false
	}

	key := fmt.Sprintf("%s|%d", n.ImageURL, inner)
	texture := p.avatars.Get(key)
	if texture == nil {
		var err error
		texture, err = p.textureFromRGBA(imageloader.CircleCrop(res.Image, int(inner)))
		if err != nil {
			GetInternalLogger().Error("Failed to create avatar texture", "url", n.ImageURL, "error", err)
			return false
		}
		p.avatars.Set(key, texture)
	}

	alpha := imageloader.CrossfadeAlpha(res.ReadyAt, p.now(), p.crossfade)
	texture.SetAlphaMod(alpha)
	p.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: inner, H: inner})

	return alpha < 255
}

func (p *Painter) textureFromRGBA(img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.New("empty image")
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := p.renderer.CreateTextureFromSurface(surface)
	runtime.KeepAlive(img)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// Destroy frees every cached texture.
func (p *Painter) Destroy() {
	p.text.Destroy()
	p.glyphs.Destroy()
	p.avatars.Destroy()
}

func toSDLRect(r view.Rect) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
