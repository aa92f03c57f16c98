package internal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/internal/logging"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
)

// InitOptions is everything the backend needs to come up.
type InitOptions struct {
	Window    WindowOptions
	Theme     theme.Theme
	Images    ImageSource
	Crossfade time.Duration
}

var (
	window        *Window
	fonts         *FontSet
	painter       *Painter
	wakeEventType atomic.Uint32 // zero while SDL is down
)

// Init brings up SDL, the window, fonts and the painter. On failure
// everything already initialized is torn down again.
func Init(opts InitOptions) (err error) {
	SetTheme(opts.Theme)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	defer func() {
		if err != nil {
			SDLCleanup()
		}
	}()

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP); err != nil {
		GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	wakeEventType.Store(sdl.RegisterEvents(1))

	if window, err = initWindow(opts.Window); err != nil {
		return err
	}

	if fonts, err = openFonts(opts.Theme); err != nil {
		return err
	}

	painter = newPainter(window, fonts, opts.Images, opts.Crossfade)

	return nil
}

// SDLCleanup releases everything Init created. Safe to call after a partial Init.
func SDLCleanup() {
	resetWakeEvent()
	if painter != nil {
		painter.Destroy()
		painter = nil
	}
	if fonts != nil {
		fonts.close()
		fonts = nil
	}
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	if ttf.WasInit() {
		ttf.Quit()
	}
	img.Quit()
	sdl.Quit()
}

func GetWindow() *Window {
	return window
}

func GetPainter() *Painter {
	return painter
}

// Wake pushes an event that makes a blocked event wait return. Safe to call
// from any goroutine.
func Wake() {
	eventType := wakeEventType.Load()
	if eventType == 0 || eventType == ^uint32(0) {
		return
	}
	if _, err := sdl.PushEvent(&sdl.UserEvent{Type: eventType}); err != nil {
		GetInternalLogger().Debug("Failed to push wake event", "error", err)
	}
}

// IsWakeEvent reports whether event was pushed by Wake.
func IsWakeEvent(event sdl.Event) bool {
	e, ok := event.(*sdl.UserEvent)
	eventType := wakeEventType.Load()
	return ok && eventType != 0 && e.Type == eventType
}

func resetWakeEvent() {
	wakeEventType.Store(0)
}

func GetInternalLogger() *slog.Logger {
	return logging.GetInternalLogger()
}
