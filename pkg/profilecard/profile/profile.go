// Package profile holds the user profile records shown by the application and
// the read-only store they are served from.
package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Store.ByID when no record has the requested id.
	ErrNotFound = errors.New("profile not found")

	// ErrDuplicateID is returned when two seed records share an id.
	ErrDuplicateID = errors.New("duplicate profile id")

	// ErrInvalidProfile is returned for records with a negative id, an empty or
	// missing name, a missing id or keys the seed format does not define.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Profile is a single user entry. Values are immutable once placed in a Store.
type Profile struct {
	ID         int    `toml:"id"`
	Name       string `toml:"name"`
	PictureURL string `toml:"picture_url"`
	Status     bool   `toml:"online"` // true when the user is online
}

// Online reports the status flag under a readable name.
func (p Profile) Online() bool {
	return p.Status
}

func (p Profile) validate() error {
	if p.ID < 0 {
		return fmt.Errorf("%w: id %d is negative", ErrInvalidProfile, p.ID)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: id %d has an empty name", ErrInvalidProfile, p.ID)
	}
	return nil
}
