package scroll

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"canvasnav/internal/ui/services/navigation"
)

// FPS is the animation frame rate
const FPS = 60

// FrameInterval is the delay between animation frames
const FrameInterval = time.Second / FPS

const (
	angularFrequency = 9.0
	dampingRatio     = 1.0 // critically damped: no overshoot past the target
	settleThreshold  = 0.5
)

// Coordinator keeps the selected card visible by moving the viewport offset.
// Bounds are looked up in content coordinates, where row 0 is the top of the board.
type Coordinator struct {
	bounds   navigation.BoundsProvider
	spring   harmonica.Spring
	smooth   bool
	viewport int
	content  int

	pos       float64
	vel       float64
	target    float64
	animating bool
}

// NewCoordinator creates a coordinator reading card bounds from bounds
func NewCoordinator(bounds navigation.BoundsProvider, smooth bool) *Coordinator {
	return &Coordinator{
		bounds: bounds,
		spring: harmonica.NewSpring(harmonica.FPS(FPS), angularFrequency, dampingRatio),
		smooth: smooth,
	}
}

// SetViewport records the visible height and full content height, re-clamping the offset
func (c *Coordinator) SetViewport(viewportHeight, contentHeight int) {
	c.viewport = max(viewportHeight, 0)
	c.content = max(contentHeight, 0)
	c.target = c.clamp(c.target)
	if !c.animating {
		c.pos = c.clamp(c.pos)
	}
}

// ScrollIntoView brings index to the nearest visible position. A card with no
// bounds is ignored.
func (c *Coordinator) ScrollIntoView(index int) {
	if c.bounds == nil || c.viewport <= 0 {
		return
	}
	rect, ok := c.bounds.Bounds(index)
	if !ok {
		return
	}

	target := c.clamp(float64(NearestOffset(rect, c.Target(), c.viewport)))
	if target == c.target && !c.animating && c.pos == target {
		return
	}
	c.target = target
	if !c.smooth {
		c.settle()
		return
	}
	c.animating = true
}

// Step advances the animation by one frame and reports whether more frames are needed
func (c *Coordinator) Step() bool {
	if !c.animating {
		return false
	}
	c.pos, c.vel = c.spring.Update(c.pos, c.vel, c.target)
	if math.Abs(c.pos-c.target) < settleThreshold && math.Abs(c.vel) < settleThreshold {
		c.settle()
	}
	return c.animating
}

// JumpTo moves the viewport immediately, cancelling any animation
func (c *Coordinator) JumpTo(offset int) {
	c.target = c.clamp(float64(offset))
	c.settle()
}

// Offset is the current rendered scroll offset in rows
func (c *Coordinator) Offset() int {
	return int(math.Round(c.pos))
}

// Target is the offset the viewport is heading to
func (c *Coordinator) Target() int {
	return int(math.Round(c.target))
}

func (c *Coordinator) Animating() bool {
	return c.animating
}

func (c *Coordinator) settle() {
	c.pos = c.target
	c.vel = 0
	c.animating = false
}

func (c *Coordinator) clamp(offset float64) float64 {
	maxOffset := float64(max(c.content-c.viewport, 0))
	return math.Max(0, math.Min(offset, maxOffset))
}

// NearestOffset returns the smallest change to offset that shows rect inside a
// viewport of the given height. Cards taller than the viewport are top-aligned.
func NearestOffset(rect navigation.Rect, offset, viewport int) int {
	top := int(math.Floor(rect.Top))
	bottom := int(math.Ceil(rect.Bottom))

	switch {
	case top < offset:
		return top
	case bottom > offset+viewport:
		if bottom-top > viewport {
			return top
		}
		return bottom - viewport
	default:
		return offset
	}
}
