package layout

import "canvasnav/internal/ui/services/navigation"

// Viewport converts content-space bounds into viewport coordinates by
// subtracting the current scroll offset.
type Viewport struct {
	Content navigation.BoundsProvider
	Offset  func() float64
}

func (v Viewport) Bounds(i int) (navigation.Rect, bool) {
	if v.Content == nil {
		return navigation.Rect{}, false
	}
	r, ok := v.Content.Bounds(i)
	if !ok {
		return navigation.Rect{}, false
	}
	if v.Offset == nil {
		return r, true
	}
	return r.Translate(0, -v.Offset()), true
}
