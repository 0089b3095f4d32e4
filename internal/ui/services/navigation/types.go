package navigation

import "fmt"

// Rect is an axis-aligned rectangle. Coordinates grow right and down.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewRect builds a Rect from its origin and size
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX is the horizontal midpoint
func (r Rect) CenterX() float64 { return r.Left + r.Width()/2 }

// Translate returns r moved by dx, dy
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

func (r Rect) String() string {
	return fmt.Sprintf("{%g,%g %gx%g}", r.Left, r.Top, r.Width(), r.Height())
}

// Direction represents movement directions
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// IsVertical returns true for Up/Down
func (d Direction) IsVertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// BoundsProvider looks up an item's on-screen rectangle.
// ok is false when the item has no geometry right now (not laid out, out of range).
type BoundsProvider interface {
	Bounds(index int) (rect Rect, ok bool)
}

// BoundsFunc adapts a plain function to BoundsProvider
type BoundsFunc func(index int) (Rect, bool)

func (f BoundsFunc) Bounds(index int) (Rect, bool) { return f(index) }

// Rects is a BoundsProvider over a fixed slice, mostly useful in tests
type Rects []Rect

func (rs Rects) Bounds(index int) (Rect, bool) {
	if index < 0 || index >= len(rs) {
		return Rect{}, false
	}
	return rs[index], true
}
