//go:build linux

package hwinput

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/constants"
)

const (
	valueRelease = 0
	valuePress   = 1
)

type source interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Reader delivers mapped key events from one device on a channel.
type Reader struct {
	src    source
	path   string
	events chan Event
	logger *slog.Logger
	once   sync.Once
}

// Open opens the evdev device at path.
func Open(path string, logger *slog.Logger) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hwinput: open %s: %w", path, err)
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if name, err := dev.Name(); err == nil {
		logger.Debug("Opened input device", "path", path, "name", name)
	}

	return newReader(dev, path, logger), nil
}

func newReader(src source, path string, logger *slog.Logger) *Reader {
	return &Reader{
		src:    src,
		path:   path,
		events: make(chan Event, eventBuffer),
		logger: logger,
	}
}

// Events is closed once Run returns.
func (r *Reader) Events() <-chan Event {
	return r.events
}

// Run reads until ctx is cancelled or the device fails. Closing the device
// is what unblocks the pending read on cancellation.
func (r *Reader) Run(ctx context.Context) {
	defer close(r.events)

	stop := context.AfterFunc(ctx, r.close)
	defer stop()
	defer r.close()

	for {
		ev, err := r.src.ReadOne()
		if err != nil {
			if ctx.Err() == nil {
				r.logger.Warn("Input device read failed", "path", r.path, "error", err)
			}
			return
		}

		mapped, ok := Translate(ev)
		if !ok {
			continue
		}

		select {
		case r.events <- mapped:
		case <-ctx.Done():
			return
		}
	}
}

func (r *Reader) close() {
	r.once.Do(func() {
		if err := r.src.Close(); err != nil {
			r.logger.Debug("Input device close failed", "path", r.path, "error", err)
		}
	})
}

// Translate maps a raw key event onto a virtual button. Auto-repeat and
// non-key events are dropped.
func Translate(ev *evdev.InputEvent) (Event, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY {
		return Event{}, false
	}
	if ev.Value != valuePress && ev.Value != valueRelease {
		return Event{}, false
	}

	button := ButtonForCode(ev.Code)
	if button == constants.VirtualButtonUnassigned {
		return Event{}, false
	}
	return Event{Button: button, Pressed: ev.Value == valuePress}, true
}

// ButtonForCode maps evdev key codes onto virtual buttons.
func ButtonForCode(code evdev.EvCode) constants.VirtualButton {
	switch code {
	case evdev.KEY_UP, evdev.BTN_DPAD_UP:
		return constants.VirtualButtonUp
	case evdev.KEY_DOWN, evdev.BTN_DPAD_DOWN:
		return constants.VirtualButtonDown
	case evdev.KEY_ENTER, evdev.KEY_SELECT, evdev.BTN_SOUTH:
		return constants.VirtualButtonA
	case evdev.KEY_BACK, evdev.KEY_ESC, evdev.BTN_EAST:
		return constants.VirtualButtonB
	case evdev.KEY_MENU, evdev.BTN_START:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}
