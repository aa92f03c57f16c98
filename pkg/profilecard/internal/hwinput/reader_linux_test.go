//go:build linux

package hwinput

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/constants"
)

// fakeSource replays a fixed script, then blocks until closed.
type fakeSource struct {
	script []*evdev.InputEvent
	closed chan struct{}
}

func newFakeSource(script ...*evdev.InputEvent) *fakeSource {
	return &fakeSource{script: script, closed: make(chan struct{})}
}

func (f *fakeSource) ReadOne() (*evdev.InputEvent, error) {
	if len(f.script) > 0 {
		ev := f.script[0]
		f.script = f.script[1:]
		return ev, nil
	}
	<-f.closed
	return nil, errors.New("device closed")
}

func (f *fakeSource) Close() error {
	close(f.closed)
	return nil
}

func key(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *evdev.InputEvent
		want Event
		ok   bool
	}{
		{"up press", key(evdev.KEY_UP, 1), Event{constants.VirtualButtonUp, true}, true},
		{"down release", key(evdev.KEY_DOWN, 0), Event{constants.VirtualButtonDown, false}, true},
		{"enter", key(evdev.KEY_ENTER, 1), Event{constants.VirtualButtonA, true}, true},
		{"select", key(evdev.KEY_SELECT, 1), Event{constants.VirtualButtonA, true}, true},
		{"south", key(evdev.BTN_SOUTH, 1), Event{constants.VirtualButtonA, true}, true},
		{"back", key(evdev.KEY_BACK, 1), Event{constants.VirtualButtonB, true}, true},
		{"esc", key(evdev.KEY_ESC, 1), Event{constants.VirtualButtonB, true}, true},
		{"east", key(evdev.BTN_EAST, 1), Event{constants.VirtualButtonB, true}, true},
		{"auto repeat", key(evdev.KEY_UP, 2), Event{}, false},
		{"unmapped", key(evdev.KEY_A, 1), Event{}, false},
		{"not a key", &evdev.InputEvent{Type: evdev.EV_ABS, Code: evdev.ABS_X, Value: 1}, Event{}, false},
		{"nil", nil, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_DeliversMappedEvents(t *testing.T) {
	t.Parallel()

	src := newFakeSource(
		key(evdev.KEY_DOWN, 1),
		key(evdev.KEY_DOWN, 2),
		key(evdev.KEY_DOWN, 0),
		key(evdev.KEY_A, 1),
		key(evdev.KEY_ENTER, 1),
	)
	r := newReader(src, "/dev/input/fake", discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	var got []Event
	for range 3 {
		select {
		case ev := <-r.Events():
			got = append(got, ev)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}

	assert.Equal(t, []Event{
		{constants.VirtualButtonDown, true},
		{constants.VirtualButtonDown, false},
		{constants.VirtualButtonA, true},
	}, got)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	_, open := <-r.Events()
	require.False(t, open)
}
