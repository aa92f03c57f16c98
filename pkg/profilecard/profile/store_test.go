package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore([]Profile{
		{ID: 0, Name: "Alice", PictureURL: "https://example.com/a.png", Status: true},
		{ID: 1, Name: "Bob", PictureURL: "https://example.com/b.png", Status: false},
	})
	require.NoError(t, err)
	return s
}

func TestStore_ByIDReturnsEveryRecord(t *testing.T) {
	t.Parallel()

	for _, s := range []*Store{scenarioStore(t), Seed()} {
		for _, p := range s.All() {
			got, err := s.ByID(p.ID)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	}
}

func TestStore_AllIsStable(t *testing.T) {
	t.Parallel()

	s := scenarioStore(t)
	first := s.All()
	second := s.All()
	require.Equal(t, first, second)
	assert.Equal(t, "Alice", first[0].Name)
	assert.Equal(t, "Bob", first[1].Name)

	first[0].Name = "changed"
	assert.Equal(t, "Alice", s.All()[0].Name, "callers must not be able to mutate the store")
}

func TestStore_ByIDMiss(t *testing.T) {
	t.Parallel()

	_, err := scenarioStore(t).ByID(99)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "99")
}

func TestNewStore_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		profiles []Profile
		wantErr  error
	}{
		{
			name:     "duplicate id",
			profiles: []Profile{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}},
			wantErr:  ErrDuplicateID,
		},
		{
			name:     "negative id",
			profiles: []Profile{{ID: -1, Name: "a"}},
			wantErr:  ErrInvalidProfile,
		},
		{
			name:     "empty name",
			profiles: []Profile{{ID: 2}},
			wantErr:  ErrInvalidProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewStore(tt.profiles)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewStore_Empty(t *testing.T) {
	t.Parallel()

	s, err := NewStore(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}

func TestDecode(t *testing.T) {
	t.Parallel()

	doc := `
[[profile]]
id = 4
name = "Dana"
picture_url = "file:///tmp/dana.png"
online = true

[[profile]]
id = 2
name = "Eli"
picture_url = "https://example.com/eli.jpg"
`
	s, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	all := s.All()
	assert.Equal(t, 4, all[0].ID)
	assert.True(t, all[0].Online())
	assert.Equal(t, 2, all[1].ID)
	assert.False(t, all[1].Online())
}

func TestDecode_Broken(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("[[profile]\nid = "))
	require.Error(t, err)
}

func TestDecode_Rejects(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown key":  "[[profile]]\nid = 0\nname = \"Alice\"\npicture_url = \"a.png\"\nstatus = true\n",
		"missing id":   "[[profile]]\nname = \"Alice\"\npicture_url = \"a.png\"\n",
		"missing name": "[[profile]]\nid = 0\n\n[[profile]]\nid = 1\npicture_url = \"b.png\"\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestDecode_UnknownKeyIsNamed(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("[[profile]]\nid = 0\nname = \"Alice\"\nstatus = true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[profile]]\nid = 0\nname = \"Alice\"\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestSeed(t *testing.T) {
	t.Parallel()

	s := Seed()
	require.Greater(t, s.Len(), 0)
	assert.Same(t, s, Seed())

	for _, p := range s.All() {
		assert.NotEmpty(t, p.PictureURL, "profile %d", p.ID)
	}
}

func TestStore_AtAndIndexOf(t *testing.T) {
	t.Parallel()

	s := scenarioStore(t)

	p, ok := s.At(1)
	require.True(t, ok)
	assert.Equal(t, "Bob", p.Name)

	_, ok = s.At(2)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)

	i, ok := s.IndexOf(1)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = s.IndexOf(99)
	assert.False(t, ok)
}
