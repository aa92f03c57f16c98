package profilecard

import (
	"context"
	"errors"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/constants"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/imageloader"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/internal"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/internal/hwinput"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/tui"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/view"
)

// Run drives the selected backend until the user quits or ctx is cancelled.
// Leaving by back or quit returns nil; a missing profile and backend
// failures are returned.
func (a *App) Run(ctx context.Context) error {
	var err error
	if a.options.Terminal {
		err = a.runTerminal(ctx)
	} else {
		err = a.runSDL(ctx)
	}

	if IsQuit(err) || errors.Is(err, context.Canceled) {
		a.logger.Info("Exiting", "route", a.router.Current().String())
		return nil
	}
	return err
}

func (a *App) runTerminal(ctx context.Context) error {
	m, err := tui.New(a.session, a.catalog)
	if err != nil {
		return err
	}
	return tui.Run(ctx, m)
}

// sdlLoop is the state of one SDL session.
type sdlLoop struct {
	app      *App
	window   *internal.Window
	painter  *internal.Painter
	dir      internal.DirectionalInput
	frame    *view.Frame
	hw       <-chan hwinput.Event
	dirty    bool
	fadingIn bool
	wheeled  bool // list last moved by the wheel; don't snap back to focus

	lastActionTime time.Time
}

func (a *App) runSDL(ctx context.Context) error {
	cfg := a.options.Config

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loader := imageloader.New(ctx, imageloader.Options{
		Timeout:   cfg.Images.Timeout.Duration,
		CacheSize: cfg.Images.CacheSize,
		Notify:    func(string) { internal.Wake() },
		Logger:    a.logger,
	})

	err := internal.Init(internal.InitOptions{
		Window: internal.WindowOptions{
			Title:          cfg.Window.Title,
			Width:          cfg.Window.Width,
			Height:         cfg.Window.Height,
			Borderless:     cfg.Window.Borderless,
			Fullscreen:     cfg.Window.Fullscreen,
			ShowBackground: cfg.Window.ShowBackground,
		},
		Theme:     a.theme,
		Images:    loader,
		Crossfade: cfg.Images.Crossfade.Duration,
	})
	if err != nil {
		loader.Close()
		return NewInfrastructureError("init_sdl", err)
	}
	defer internal.SDLCleanup()
	// Stop fetches before SDL goes away; their Notify pushes SDL events.
	defer loader.Close()

	loop := &sdlLoop{
		app:     a,
		window:  internal.GetWindow(),
		painter: internal.GetPainter(),
		dir:     internal.NewDirectionalInput(),
		dirty:   true,
	}
	loop.hw = a.startHardwareInput(ctx)

	return loop.run(ctx)
}

// startHardwareInput starts the evdev reader when a device is configured.
// It returns nil when there is none.
func (a *App) startHardwareInput(ctx context.Context) <-chan hwinput.Event {
	device := a.options.Config.Input.EvdevDevice
	if device == "" || constants.IsDevMode() {
		return nil
	}

	reader, err := hwinput.Open(device, a.logger)
	if err != nil {
		a.logger.Warn("Hardware input unavailable", "device", device, "error", err)
		return nil
	}

	go reader.Run(ctx)
	return reader.Events()
}

func (l *sdlLoop) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := l.handleEvents(); err != nil {
			return err
		}
		if err := l.drainHardware(); err != nil {
			return err
		}

		if d := l.dir.Update(); d != internal.DirectionNone {
			l.wheeled = false
			l.dirty = l.app.session.Move(d.Step()) || l.dirty
		}

		if l.dirty || l.fadingIn {
			if err := l.render(); err != nil {
				return err
			}
		}
	}
}

// handleEvents waits up to one frame for SDL events and applies all pending ones.
func (l *sdlLoop) handleEvents() error {
	event := sdl.WaitEventTimeout(int(constants.FrameInterval.Milliseconds()))
	for ; event != nil; event = sdl.PollEvent() {
		if err := l.handleEvent(event); err != nil {
			return err
		}
	}
	return nil
}

func (l *sdlLoop) handleEvent(event sdl.Event) error {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return ErrQuit
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_EXPOSED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			l.dirty = true
		}
	case *sdl.MouseButtonEvent:
		if e.Button == sdl.BUTTON_LEFT && e.State == sdl.RELEASED && l.frame != nil {
			if n := l.frame.HitTest(e.X, e.Y); n != nil {
				n.OnClick()
				l.dirty = true
			}
		}
	case *sdl.MouseWheelEvent:
		l.app.session.SetScrollY(l.app.session.ScrollY() - e.Y*constants.WheelScrollStep)
		l.wheeled = true
		l.dirty = true
	default:
		if internal.IsWakeEvent(event) {
			l.dirty = true
			return nil
		}
		if input := internal.ProcessSDLEvent(event); input != nil {
			return l.handleButton(input.Button, input.Pressed)
		}
	}
	return nil
}

func (l *sdlLoop) drainHardware() error {
	for l.hw != nil {
		select {
		case ev, ok := <-l.hw:
			if !ok {
				l.hw = nil
				return nil
			}
			if err := l.handleButton(ev.Button, ev.Pressed); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// handleButton applies one virtual button press or release.
func (l *sdlLoop) handleButton(button constants.VirtualButton, pressed bool) error {
	if pressed {
		l.wheeled = false
	}

	if l.dir.SetHeld(button, pressed) {
		if pressed {
			step := 1
			if button == constants.VirtualButtonUp {
				step = -1
			}
			l.dirty = l.app.session.Move(step) || l.dirty
		}
		return nil
	}

	if !pressed || !l.isActionAllowed() {
		return nil
	}

	l.app.logger.Debug("Button pressed", "button", button.GetName(), "route", l.app.router.Current().String())
	l.lastActionTime = time.Now()
	l.dirty = true

	switch button {
	case constants.VirtualButtonA:
		l.app.session.Select()
	case constants.VirtualButtonB:
		if !l.app.session.Back() {
			return ErrQuit
		}
	case constants.VirtualButtonMenu:
		return ErrQuit
	}
	return nil
}

// isActionAllowed debounces select and back.
func (l *sdlLoop) isActionAllowed() bool {
	return time.Since(l.lastActionTime) >= constants.DefaultInputDelay
}

// render lays out the current tree, scrolls the focused row into view and
// paints it. A missing profile surfaces here as an error.
func (l *sdlLoop) render() error {
	tree, err := l.app.session.Render()
	if err != nil {
		return err
	}

	vp := view.Viewport{W: l.window.GetWidth(), H: l.window.GetHeight(), ScrollY: l.app.session.ScrollY()}
	frame := view.Layout(tree, vp, l.painter)
	if y := frame.RevealFocus(); y != frame.ScrollY && !l.wheeled {
		vp.ScrollY = y
		frame = view.Layout(tree, vp, l.painter)
	}
	l.app.session.SetScrollY(frame.ScrollY)

	l.fadingIn = l.painter.Paint(frame)
	l.window.Present()

	l.frame = frame
	l.dirty = false
	return nil
}
