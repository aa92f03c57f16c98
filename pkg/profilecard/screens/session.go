package screens

import (
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/router"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/view"
)

// Router is the navigator plus the state a backend needs to drive it.
type Router interface {
	Navigator
	Current() router.Route
	CanGoBack() bool
	Remember(resume any)
	Resume() any
}

// ListResume is what the list screen gets back after returning from a detail.
type ListResume struct {
	Focus   int
	ScrollY int32
}

// Session is the input side shared by every backend: list focus, scroll
// position and back handling. It is the Navigator handed to its screens,
// so clicks and key presses go through the same resume bookkeeping.
type Session struct {
	store   Store
	router  Router
	screens *Screens

	focus   int
	scrollY int32
}

// NewSession binds a router to a fresh screen set. A nil store falls back
// to the embedded seed list.
func NewSession(store Store, r Router, text view.Translator, th theme.Theme) *Session {
	s := &Session{router: r}
	s.screens = New(store, s, text, th)
	s.store = s.screens.store
	return s
}

// State is the state of the next frame. Focus is -1 off the list.
func (s *Session) State() State {
	st := State{Route: s.router.Current(), Focus: -1}
	if st.Route.Screen == router.ScreenList && s.store.Len() > 0 {
		st.Focus = s.focus
	}
	return st
}

// Render builds the tree for the current state.
func (s *Session) Render() (*view.Node, error) {
	return s.screens.Render(s.State())
}

// Focus returns the focused list row.
func (s *Session) Focus() int {
	return s.focus
}

// ScrollY returns the list scroll offset.
func (s *Session) ScrollY() int32 {
	return s.scrollY
}

// SetScrollY records the list scroll offset a backend settled on.
func (s *Session) SetScrollY(y int32) {
	if s.router.Current().Screen == router.ScreenList {
		s.scrollY = max(y, 0)
	}
}

// Move shifts list focus by delta, clamped to the list. It reports whether
// the focus changed.
func (s *Session) Move(delta int) bool {
	if s.router.Current().Screen != router.ScreenList {
		return false
	}
	n := s.store.Len()
	if n == 0 {
		return false
	}
	next := min(max(s.focus+delta, 0), n-1)
	if next == s.focus {
		return false
	}
	s.focus = next
	return true
}

// Select opens the focused profile. It does nothing off the list.
func (s *Session) Select() {
	if s.router.Current().Screen != router.ScreenList {
		return
	}
	p, ok := s.store.At(s.focus)
	if !ok {
		return
	}
	s.NavigateToDetail(p.ID)
}

// Back goes to the previous route. It returns false on the root, which
// is where the application should exit.
func (s *Session) Back() bool {
	if !s.router.CanGoBack() {
		return false
	}
	s.NavigateBack()
	return true
}

// NavigateToDetail remembers the list position and shows the profile.
func (s *Session) NavigateToDetail(id int) {
	if s.router.Current().Screen == router.ScreenList {
		if i, ok := s.store.IndexOf(id); ok {
			s.focus = i
		}
		s.router.Remember(ListResume{Focus: s.focus, ScrollY: s.scrollY})
	}
	s.router.NavigateToDetail(id)
}

// NavigateBack returns to the previous route and restores its list position.
func (s *Session) NavigateBack() {
	s.router.NavigateBack()
	if resume, ok := s.router.Resume().(ListResume); ok {
		s.focus = resume.Focus
		s.scrollY = resume.ScrollY
	}
}
