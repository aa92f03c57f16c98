package view

// Padding is the outer spacing around a node. Layout subtracts it from the
// slot a node is given before emitting the node's box.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

func (p Padding) horizontal() int32 {
	return p.Left + p.Right
}

func (p Padding) vertical() int32 {
	return p.Top + p.Bottom
}

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) inset(p Padding) Rect {
	out := Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.horizontal(),
		H: r.H - p.vertical(),
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}
