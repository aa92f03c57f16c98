// Package view is the declarative layer between the screens and the
// rendering backends. Screens build a fresh tree of Nodes every frame, Layout
// positions it inside a viewport, and a backend paints the resulting boxes.
package view

import "github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"

// Kind selects how a node is measured, placed and painted.
type Kind int

const (
	KindScaffold   Kind = iota // top bar + content filling the viewport
	KindAppBar                 // fixed-height bar, children in a row
	KindColumn                 // children stacked vertically
	KindRow                    // children side by side, centered vertically
	KindLazyColumn             // scrolling, clipped column
	KindCard                   // filled, clickable container
	KindAvatar                 // circular image with a status border
	KindText
	KindIcon
)

func (k Kind) String() string {
	switch k {
	case KindScaffold:
		return "scaffold"
	case KindAppBar:
		return "appbar"
	case KindColumn:
		return "column"
	case KindRow:
		return "row"
	case KindLazyColumn:
		return "lazycolumn"
	case KindCard:
		return "card"
	case KindAvatar:
		return "avatar"
	case KindText:
		return "text"
	case KindIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// Icon names a glyph drawn in the app bar.
type Icon int

const (
	IconNone Icon = iota
	IconHome
	IconArrowBack
)

// Align is the horizontal placement of children in a column.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
)

// TextStyle is the typography of a text node. Color carries the content alpha.
type TextStyle struct {
	Scale theme.Scale
	Color theme.Color
}

// Node is one element of a view tree. Trees are rebuilt on every frame and
// never mutated after construction.
type Node struct {
	Kind        Kind
	Text        string
	Style       TextStyle
	Icon        Icon
	ImageURL    string
	Size        int32 // avatar diameter or icon edge
	Border      theme.Color
	BorderWidth int32
	Background  theme.Color
	Padding     Padding
	Align       Align
	Fill        bool // columns: take the full available width
	Focused     bool
	OnClick     func()
	Children    []*Node
}

// Clickable reports whether the node reacts to activation.
func (n *Node) Clickable() bool {
	return n.OnClick != nil
}

// Walk visits n and its descendants depth first, stopping early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns every node of the given kind in depth-first order.
func (n *Node) Find(kind Kind) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Texts returns the text of every text node in depth-first order.
func (n *Node) Texts() []string {
	var out []string
	for _, t := range n.Find(KindText) {
		out = append(out, t.Text)
	}
	return out
}
