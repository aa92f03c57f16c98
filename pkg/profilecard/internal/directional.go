package internal

import (
	"time"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/constants"
)

// Direction is a vertical focus movement.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// DirectionalInput tracks held up/down buttons and decides when a held
// button repeats.
type DirectionalInput struct {
	held struct {
		up, down bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with the default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval, time.Now)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing and clock.
func NewDirectionalInputWithTiming(delay, interval time.Duration, now func() time.Time) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: now(),
		now:            now,
	}
}

// SetHeld updates the held state for a virtual button and restarts the
// repeat timer on a fresh press. Returns true if the button was directional.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonUp:
		d.held.up = held
	case constants.VirtualButtonDown:
		d.held.down = held
	default:
		return false
	}

	d.hasRepeated = false
	d.lastRepeatTime = d.now()
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down
}

// HeldDirection returns the held direction, up winning over down.
func (d *DirectionalInput) HeldDirection() Direction {
	switch {
	case d.held.up:
		return DirectionUp
	case d.held.down:
		return DirectionDown
	default:
		return DirectionNone
	}
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. The first repeat occurs after repeatDelay,
// subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()

	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.up = false
	d.held.down = false
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

// Step is the focus delta for a direction.
func (d Direction) Step() int {
	switch d {
	case DirectionUp:
		return -1
	case DirectionDown:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return ""
	}
}
