package profile

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed seed.toml
var seedData []byte

// Store is a fixed, ordered sequence of profiles. It has no mutation API.
type Store struct {
	profiles []Profile
	index    map[int]int // id -> position in profiles
}

// NewStore validates the records and builds a store that keeps their order.
func NewStore(profiles []Profile) (*Store, error) {
	s := &Store{
		profiles: make([]Profile, len(profiles)),
		index:    make(map[int]int, len(profiles)),
	}

	for i, p := range profiles {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, exists := s.index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		s.profiles[i] = p
		s.index[p.ID] = i
	}

	return s, nil
}

type seedFile struct {
	Profiles []seedRecord `toml:"profile"`
}

// seedRecord uses pointers for the keys a record must carry.
type seedRecord struct {
	ID         *int    `toml:"id"`
	Name       *string `toml:"name"`
	PictureURL string  `toml:"picture_url"`
	Online     bool    `toml:"online"`
}

func (r seedRecord) profile(i int) (Profile, error) {
	switch {
	case r.ID == nil:
		return Profile{}, fmt.Errorf("%w: profile %d has no id", ErrInvalidProfile, i)
	case r.Name == nil:
		return Profile{}, fmt.Errorf("%w: profile %d has no name", ErrInvalidProfile, i)
	}
	return Profile{ID: *r.ID, Name: *r.Name, PictureURL: r.PictureURL, Status: r.Online}, nil
}

// Decode reads a seed document of [[profile]] tables. Unknown keys and
// records without an id or name are rejected.
func Decode(r io.Reader) (*Store, error) {
	var file seedFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidProfile, strings.Join(keys, ", "))
	}

	profiles := make([]Profile, len(file.Profiles))
	for i, rec := range file.Profiles {
		if profiles[i], err = rec.profile(i); err != nil {
			return nil, err
		}
	}
	return NewStore(profiles)
}

// Load reads a seed document from disk.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profiles: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

var seed = sync.OnceValue(func() *Store {
	s, err := Decode(bytes.NewReader(seedData))
	if err != nil {
		panic(fmt.Sprintf("profile: embedded seed data is invalid: %v", err))
	}
	return s
})

// Seed returns the store built from the embedded seed list.
// It is parsed once and shared for the lifetime of the process.
func Seed() *Store {
	return seed()
}

// All returns every profile in seed order. The returned slice is a copy.
func (s *Store) All() []Profile {
	out := make([]Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// ByID returns the profile with the given id.
func (s *Store) ByID(id int) (Profile, error) {
	i, ok := s.index[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return s.profiles[i], nil
}

// Len returns the number of profiles.
func (s *Store) Len() int {
	return len(s.profiles)
}

// At returns the profile at position i in seed order.
func (s *Store) At(i int) (Profile, bool) {
	if i < 0 || i >= len(s.profiles) {
		return Profile{}, false
	}
	return s.profiles[i], true
}

// IndexOf returns the seed position of the profile with the given id.
func (s *Store) IndexOf(id int) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}
