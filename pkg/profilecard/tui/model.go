// Package tui is the terminal backend: a bubbletea program driving the same
// session and screens as the SDL backend, rendered with lipgloss.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/i18n"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/router"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/screens"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newKeyMap(t view.Translator) keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", t.T(i18n.HelpMove))),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", t.T(i18n.HelpMove))),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", t.T(i18n.HelpSelect))),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", t.T(i18n.HelpBack))),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", t.T(i18n.HelpQuit))),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the bubbletea model. The header is rendered outside the viewport
// so the app bar stays put while the list scrolls.
type Model struct {
	session  *screens.Session
	keys     keyMap
	help     help.Model
	viewport viewport.Model

	route  router.Route
	header string
	width  int
	height int
	err    error
}

// New renders the first frame immediately so a bad start route fails
// before the program takes over the terminal.
func New(session *screens.Session, t view.Translator) (*Model, error) {
	m := &Model{
		session:  session,
		keys:     newKeyMap(t),
		help:     help.New(),
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// Err is the error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

func (*Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if quit := m.handleKeyMsg(msg); quit {
			return m, tea.Quit
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if err := m.refresh(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// handleKeyMsg applies a key press and reports whether the program should exit.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Up):
		m.session.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.session.Move(1)
	case key.Matches(msg, m.keys.Select):
		m.session.Select()
	case key.Matches(msg, m.keys.Back):
		return !m.session.Back()
	}
	return false
}

// refresh rebuilds the tree and puts it into the viewport.
func (m *Model) refresh() error {
	tree, err := m.session.Render()
	if err != nil {
		return err
	}
	if len(tree.Children) < 2 {
		return errors.New("tui: screen has no content")
	}

	r := newRenderer()
	m.header = r.node(tree.Children[0], m.width)
	body := r.node(tree.Children[1], m.width)

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-lipgloss.Height(m.header)-lipgloss.Height(m.helpView()), 1)
	m.viewport.SetContent(body)

	state := m.session.State()
	if state.Route != m.route {
		m.route = state.Route
		if state.Route.Screen == router.ScreenList {
			m.viewport.SetYOffset(int(m.session.ScrollY()))
		} else {
			m.viewport.GotoTop()
		}
	}

	if r.focusTop >= 0 {
		top, bottom := r.focusTop, r.focusTop+r.focusLines
		switch {
		case top < m.viewport.YOffset:
			m.viewport.SetYOffset(top)
		case bottom > m.viewport.YOffset+m.viewport.Height:
			m.viewport.SetYOffset(bottom - m.viewport.Height)
		}
		m.session.SetScrollY(int32(m.viewport.YOffset))
	}

	return nil
}

func (m *Model) helpView() string {
	return m.help.View(m.keys)
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.header, m.viewport.View(), m.helpView())
}

// Run starts the program on the terminal and blocks until it exits or ctx
// is cancelled.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return m.Err()
}
