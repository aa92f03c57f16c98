// Package screens composes the presentation components into the list and
// detail screens and maps navigator state onto a view tree.
package screens

import (
	"fmt"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/i18n"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/profile"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/router"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/view"
)

// Navigator is the only navigation surface screens get to see.
type Navigator interface {
	NavigateToDetail(id int)
	NavigateBack()
}

// Store is the read side of the profile store.
type Store interface {
	All() []profile.Profile
	ByID(id int) (profile.Profile, error)
	At(i int) (profile.Profile, bool)
	IndexOf(id int) (int, bool)
	Len() int
}

// State is everything a frame depends on besides the static inputs.
type State struct {
	Route router.Route
	Focus int // focused list row, -1 for none
}

// Screens binds the static inputs shared by every frame.
type Screens struct {
	store Store
	nav   Navigator
	text  view.Translator
	theme theme.Theme
}

// New creates the screen set. A nil store falls back to the embedded seed list.
func New(store Store, nav Navigator, text view.Translator, th theme.Theme) *Screens {
	if store == nil {
		store = profile.Seed()
	}
	return &Screens{
		store: store,
		nav:   nav,
		text:  text,
		theme: th,
	}
}

// Render builds the tree for the current state.
func (s *Screens) Render(state State) (*view.Node, error) {
	switch state.Route.Screen {
	case router.ScreenList:
		return s.List(s.store.All(), state.Focus), nil
	case router.ScreenDetail:
		return s.Detail(state.Route.ID)
	default:
		return nil, fmt.Errorf("%w: %s", router.ErrInvalidRoute, state.Route)
	}
}

// List renders all profiles in the given order. Activating a card navigates
// to that profile's detail route; the home icon does nothing.
func (s *Screens) List(profiles []profile.Profile, focus int) *view.Node {
	cards := make([]*view.Node, 0, len(profiles))
	for i, p := range profiles {
		id := p.ID
		cards = append(cards, view.ProfileCard(
			p.Name,
			p.PictureURL,
			p.Status,
			i == focus,
			s.text,
			s.theme,
			func() { s.nav.NavigateToDetail(id) },
		))
	}

	return view.Scaffold(
		view.AppBar(s.text.T(i18n.ListTitle), view.IconHome, s.theme, func() {}),
		&view.Node{
			Kind:     view.KindLazyColumn,
			Children: cards,
		},
		s.theme,
	)
}

// Detail renders one profile. A missing id is returned as an error wrapping
// profile.ErrNotFound.
func (s *Screens) Detail(id int) (*view.Node, error) {
	p, err := s.store.ByID(id)
	if err != nil {
		return nil, fmt.Errorf("detail screen: %w", err)
	}

	return view.Scaffold(
		view.AppBar(s.text.T(i18n.DetailTitle), view.IconArrowBack, s.theme, s.nav.NavigateBack),
		&view.Node{
			Kind:  view.KindColumn,
			Fill:  true,
			Align: view.AlignCenter,
			Children: []*view.Node{
				view.ProfilePicture(p.PictureURL, p.Status, view.DetailAvatarSize, s.theme),
				view.ProfileContent(p.Name, p.Status, view.AlignCenter, s.text, s.theme),
			},
		},
		s.theme,
	), nil
}
