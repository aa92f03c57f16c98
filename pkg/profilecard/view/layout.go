package view

import "github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"

// Measurer reports the pixel size of a single line of text.
type Measurer interface {
	MeasureText(text string, scale theme.Scale) (w, h int32)
}

// Viewport is the window area plus the requested scroll offset of the
// scrolling column, if the tree has one.
type Viewport struct {
	W, H    int32
	ScrollY int32
}

// Box is a positioned node. Clip is the area the node may draw into.
type Box struct {
	Node *Node
	Rect Rect
	Clip Rect
}

// Frame is the result of laying out one tree.
type Frame struct {
	Boxes     []Box
	ScrollY   int32 // requested offset clamped to [0, MaxScroll]
	MaxScroll int32
	ListRect  Rect // bounds of the scrolling column, zero if none

	focusRow *Rect
}

// HitTest returns the topmost clickable node under the point, or nil.
func (f *Frame) HitTest(x, y int32) *Node {
	for i := len(f.Boxes) - 1; i >= 0; i-- {
		b := f.Boxes[i]
		if b.Node.Clickable() && b.Rect.Contains(x, y) && b.Clip.Contains(x, y) {
			return b.Node
		}
	}
	return nil
}

// Focused returns the box of the focused node if it was placed.
func (f *Frame) Focused() (Box, bool) {
	for _, b := range f.Boxes {
		if b.Node.Focused {
			return b, true
		}
	}
	return Box{}, false
}

// ScrollToReveal returns the scroll offset that brings r fully inside the
// scrolling column, moving as little as possible.
func (f *Frame) ScrollToReveal(r Rect) int32 {
	scroll := f.ScrollY
	top := f.ListRect.Y
	bottom := f.ListRect.Y + f.ListRect.H

	switch {
	case r.Y < top:
		scroll -= top - r.Y
	case r.Y+r.H > bottom:
		scroll += r.Y + r.H - bottom
	}
	return clamp(scroll, 0, f.MaxScroll)
}

// RevealFocus returns the scroll offset that brings the focused row of the
// scrolling column into view. Rows outside the viewport are not placed as
// boxes, so this works from the row slot recorded during layout.
func (f *Frame) RevealFocus() int32 {
	if f.focusRow == nil {
		return f.ScrollY
	}
	return f.ScrollToReveal(*f.focusRow)
}

// Layout positions the tree inside the viewport.
func Layout(root *Node, vp Viewport, m Measurer) *Frame {
	l := &layouter{
		m:      m,
		frame:  &Frame{},
		scroll: vp.ScrollY,
		clip:   Rect{W: vp.W, H: vp.H},
	}
	l.place(root, Rect{W: vp.W, H: vp.H})
	return l.frame
}

type layouter struct {
	m      Measurer
	frame  *Frame
	scroll int32
	clip   Rect
}

// size returns the outer size of n, padding included, given the available width.
func (l *layouter) size(n *Node, availW int32) (int32, int32) {
	inner := availW - n.Padding.horizontal()
	if inner < 0 {
		inner = 0
	}

	var w, h int32

	switch n.Kind {
	case KindText:
		w, h = l.m.MeasureText(n.Text, n.Style.Scale)
		if w > inner {
			w = inner
		}
	case KindIcon, KindAvatar:
		w, h = n.Size, n.Size
	case KindAppBar:
		w, h = inner, AppBarHeight
	case KindRow:
		for _, c := range n.Children {
			cw, ch := l.size(c, inner-w)
			w += cw
			h = max(h, ch)
		}
	case KindColumn, KindCard, KindLazyColumn, KindScaffold:
		for _, c := range n.Children {
			cw, ch := l.size(c, inner)
			w = max(w, cw)
			h += ch
		}
		if n.Fill || n.Kind != KindColumn {
			w = inner
		}
	}

	return w + n.Padding.horizontal(), h + n.Padding.vertical()
}

func (l *layouter) emit(n *Node, r Rect) {
	l.frame.Boxes = append(l.frame.Boxes, Box{Node: n, Rect: r, Clip: l.clip})
}

// place lays out n inside its slot.
func (l *layouter) place(n *Node, slot Rect) {
	inner := slot.inset(n.Padding)
	l.emit(n, inner)

	switch n.Kind {
	case KindScaffold:
		l.placeScaffold(n, inner)
	case KindAppBar, KindRow:
		l.placeRow(n, inner)
	case KindColumn, KindCard:
		l.placeColumn(n, inner)
	case KindLazyColumn:
		l.placeLazyColumn(n, inner)
	}
}

func (l *layouter) placeScaffold(n *Node, inner Rect) {
	if len(n.Children) == 0 {
		return
	}

	bar := n.Children[0]
	_, barH := l.size(bar, inner.W)
	l.place(bar, Rect{X: inner.X, Y: inner.Y, W: inner.W, H: barH})

	for _, content := range n.Children[1:] {
		l.place(content, Rect{X: inner.X, Y: inner.Y + barH, W: inner.W, H: inner.H - barH})
	}
}

func (l *layouter) placeRow(n *Node, inner Rect) {
	x := inner.X
	for _, c := range n.Children {
		cw, ch := l.size(c, inner.X+inner.W-x)
		l.place(c, Rect{X: x, Y: inner.Y + (inner.H-ch)/2, W: cw, H: ch})
		x += cw
	}
}

func (l *layouter) placeColumn(n *Node, inner Rect) {
	y := inner.Y
	for _, c := range n.Children {
		cw, ch := l.size(c, inner.W)
		x := inner.X
		if n.Align == AlignCenter {
			x += (inner.W - cw) / 2
		}
		l.place(c, Rect{X: x, Y: y, W: cw, H: ch})
		y += ch
	}
}

func (l *layouter) placeLazyColumn(n *Node, inner Rect) {
	var content int32
	heights := make([]int32, len(n.Children))
	for i, c := range n.Children {
		_, heights[i] = l.size(c, inner.W)
		content += heights[i]
	}

	maxScroll := max(content-inner.H, 0)
	scroll := clamp(l.scroll, 0, maxScroll)

	l.frame.ScrollY = scroll
	l.frame.MaxScroll = maxScroll
	l.frame.ListRect = inner

	saved := l.clip
	l.clip = inner
	defer func() { l.clip = saved }()

	y := inner.Y - scroll
	for i, c := range n.Children {
		r := Rect{X: inner.X, Y: y, W: inner.W, H: heights[i]}
		if c.Focused {
			row := r
			l.frame.focusRow = &row
		}
		if r.Intersects(inner) {
			l.place(c, r)
		}
		y += heights[i]
	}
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
