package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/icons"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/view"
)

// Avatars wider than this get the large glyph.
const largeAvatar = 2 * view.ListAvatarSize

var largeAvatarGlyph = strings.Join([]string{
	" ▄███▄ ",
	"███████",
	" ▀███▀ ",
}, "\n")

func color(c theme.Color) lipgloss.Color {
	return lipgloss.Color(c.String())
}

// renderer turns a view tree into styled text. It records where the
// focused card landed so the viewport can keep it visible.
type renderer struct {
	line       int
	focusTop   int
	focusLines int
}

func newRenderer() *renderer {
	return &renderer{focusTop: -1}
}

func (r *renderer) node(n *view.Node, width int) string {
	switch n.Kind {
	case view.KindAppBar:
		return r.appBar(n, width)
	case view.KindLazyColumn:
		return r.lazyColumn(n, width)
	case view.KindCard:
		return r.card(n, width)
	case view.KindRow:
		return r.row(n, width)
	case view.KindColumn:
		return r.column(n, width)
	case view.KindAvatar:
		return avatar(n)
	case view.KindText:
		return text(n)
	case view.KindIcon:
		return icons.Glyph(n.Icon)
	default:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, r.node(c, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
}

func (r *renderer) appBar(n *view.Node, width int) string {
	var parts []string
	for _, c := range n.Children {
		switch c.Kind {
		case view.KindIcon:
			parts = append(parts, icons.Glyph(c.Icon))
		case view.KindText:
			parts = append(parts, c.Text)
		}
	}

	on := color(n.Children[len(n.Children)-1].Style.Color)
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(on).
		Background(color(n.Background)).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(parts, "  "))
}

func (r *renderer) lazyColumn(n *view.Node, width int) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		block := r.node(c, width)
		h := lipgloss.Height(block)
		if c.Focused {
			r.focusTop = r.line
			r.focusLines = h
		}
		r.line += h
		parts = append(parts, block)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *renderer) card(n *view.Node, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color(n.Background)).
		Padding(0, 1).
		Width(max(width-2, 0))
	if n.Focused {
		style = style.
			Border(lipgloss.ThickBorder()).
			Background(color(n.Background))
	}

	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, r.node(c, width-4))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (r *renderer) row(n *view.Node, width int) string {
	parts := make([]string, 0, 2*len(n.Children))
	for i, c := range n.Children {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, r.node(c, width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (r *renderer) column(n *view.Node, width int) string {
	pos := lipgloss.Left
	if n.Align == view.AlignCenter {
		pos = lipgloss.Center
	}

	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, r.node(c, width))
	}
	block := lipgloss.JoinVertical(pos, parts...)

	if n.Fill {
		block = lipgloss.PlaceHorizontal(width, pos, block)
		block = lipgloss.NewStyle().PaddingTop(1).Render(block)
	}
	return block
}

func avatar(n *view.Node) string {
	glyph := "●"
	if n.Size >= largeAvatar {
		glyph = largeAvatarGlyph
	}
	return lipgloss.NewStyle().Foreground(color(n.Border)).Render(glyph)
}

func text(n *view.Node) string {
	c := n.Style.Color
	style := lipgloss.NewStyle().
		Foreground(color(c)).
		Faint(c.A < 255).
		Bold(n.Style.Scale != theme.ScaleBodyMedium)
	return style.Render(n.Text)
}
