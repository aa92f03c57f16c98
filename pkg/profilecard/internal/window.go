package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/constants"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	width, height     int32
	hasVSync          bool
	lastPresentTime   uint64
}

func initWindow(opts WindowOptions) (*Window, error) {
	width, height := opts.Width, opts.Height

	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = 1024, 768
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	x, y := int32(0), int32(0)
	if constants.IsDevMode() {
		x, y = 50, 50
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:            window,
		Renderer:          renderer,
		Title:             opts.Title,
		DisplayBackground: opts.ShowBackground,
		width:             width,
		height:            height,
		hasVSync:          vsync,
	}

	win.loadBackground()

	return win, nil
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if !window.DisplayBackground || path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Failed to load background image", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
		window.Background = nil
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

// GetWidth is the logical width everything is laid out in.
func (window *Window) GetWidth() int32 {
	return window.width
}

// GetHeight is the logical height everything is laid out in.
func (window *Window) GetHeight() int32 {
	return window.height
}

func (window *Window) RenderBackground() {
	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.width, H: window.height})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		frame := uint64(constants.FrameInterval.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
