package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/i18n"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/platform/cannoli"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/profile"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/router"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/screens"
)

func newModel(t *testing.T, start router.Route) (*Model, *router.Router) {
	t.Helper()

	store, err := profile.NewStore([]profile.Profile{
		{ID: 0, Name: "Alice", PictureURL: "https://example.com/alice.png", Status: true},
		{ID: 1, Name: "Bob", PictureURL: "https://example.com/bob.png", Status: false},
		{ID: 2, Name: "Carol", PictureURL: "https://example.com/carol.png", Status: true},
	})
	require.NoError(t, err)

	catalog, err := i18n.New("en")
	require.NoError(t, err)

	r := router.New(nil)
	r.Start(start)
	session := screens.NewSession(store, r, catalog, cannoli.InitCannoliTheme(""))

	m, err := New(session, catalog)
	require.NoError(t, err)
	return m, r
}

func press(t *testing.T, m *Model, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ListView(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, router.List())
	out := m.View()

	assert.Contains(t, out, "Messaging Application Users")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Active Now")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "Offline")
	assert.Contains(t, out, "quit")
}

func TestModel_SelectAndBack(t *testing.T) {
	t.Parallel()

	m, r := newModel(t, router.List())

	assert.Nil(t, press(t, m, tea.KeyMsg{Type: tea.KeyDown}))
	assert.Nil(t, press(t, m, runes("j")))
	assert.Nil(t, press(t, m, runes("k")))
	assert.Nil(t, press(t, m, tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, router.Detail(1), r.Current())
	out := m.View()
	assert.Contains(t, out, "User Detail")
	assert.Contains(t, out, "Bob")
	assert.NotContains(t, out, "Alice")

	assert.Nil(t, press(t, m, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, router.List(), r.Current())

	assert.True(t, isQuit(press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})), "back on the list exits")
	assert.NoError(t, m.Err())
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, router.Detail(2))
	assert.True(t, isQuit(press(t, m, runes("q"))))

	m, _ = newModel(t, router.List())
	assert.True(t, isQuit(press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})))
}

func TestModel_WindowSizeKeepsFocusVisible(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, router.List())
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 60, Height: 8})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Carol")
	assert.NotContains(t, m.View(), "Alice", "first card scrolled out of the short viewport")
}

func TestNew_MissingProfile(t *testing.T) {
	t.Parallel()

	store, err := profile.NewStore(nil)
	require.NoError(t, err)
	catalog, err := i18n.New("en")
	require.NoError(t, err)

	r := router.New(nil)
	r.Start(router.Detail(99))

	_, err = New(screens.NewSession(store, r, catalog, cannoli.InitCannoliTheme("")), catalog)
	require.Error(t, err)
	assert.True(t, errors.Is(err, profile.ErrNotFound))
}
