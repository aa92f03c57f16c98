//go:build !linux

package hwinput

import (
	"context"
	"log/slog"
)

// Reader is never constructed on this platform.
type Reader struct {
	events chan Event
}

// Open always fails with ErrUnsupported.
func Open(string, *slog.Logger) (*Reader, error) {
	return nil, ErrUnsupported
}

func (r *Reader) Events() <-chan Event {
	return r.events
}

func (r *Reader) Run(context.Context) {}
