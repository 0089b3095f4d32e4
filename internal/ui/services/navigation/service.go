package navigation

import "math"

// DefaultVerticalWeight scales the vertical gap against horizontal misalignment.
// At 0.5 a card straight below beats a nearer but offset one.
const DefaultVerticalWeight = 0.5

// Service resolves navigation targets. It keeps no state between calls:
// bounds are re-queried on every call since layout can change between key presses.
type Service struct {
	verticalWeight float64
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{verticalWeight: DefaultVerticalWeight}
}

// Resolve returns the target index for moving from current in direction dir.
// ok is false when there is nowhere to go; callers keep the current selection.
func (s *Service) Resolve(current, count int, dir Direction, bounds BoundsProvider) (int, bool) {
	if count <= 0 || current < 0 || current >= count {
		return 0, false
	}
	switch dir {
	case DirectionLeft, DirectionRight:
		return s.Step(current, count, dir)
	case DirectionUp, DirectionDown:
		return s.ResolveVertical(current, count, dir, bounds)
	}
	return 0, false
}

// Step moves by one in logical order, clamped to [0, count-1].
// At either end it returns current with ok false.
func (s *Service) Step(current, count int, dir Direction) (int, bool) {
	if count <= 0 || current < 0 || current >= count {
		return 0, false
	}
	switch dir {
	case DirectionRight:
		if current < count-1 {
			return current + 1, true
		}
	case DirectionLeft:
		if current > 0 {
			return current - 1, true
		}
	}
	return current, false
}

// ResolveVertical finds the card visually above or below current.
//
// Candidates must lie strictly past the current card's edge in dir. Each is
// scored by horizontal center distance plus the weighted vertical gap; the
// lowest score wins and ties go to the lowest index.
func (s *Service) ResolveVertical(current, count int, dir Direction, bounds BoundsProvider) (int, bool) {
	if !dir.IsVertical() || bounds == nil || current < 0 || current >= count {
		return 0, false
	}

	cur, ok := bounds.Bounds(current)
	if !ok {
		return 0, false
	}
	curCenterX := cur.CenterX()

	best := -1
	bestCost := math.Inf(1)
	for i := 0; i < count; i++ {
		if i == current {
			continue
		}
		rect, ok := bounds.Bounds(i)
		if !ok {
			continue
		}

		var verticalDistance float64
		if dir == DirectionDown {
			if rect.Top <= cur.Bottom {
				continue
			}
			verticalDistance = rect.Top - cur.Bottom
		} else {
			if rect.Bottom >= cur.Top {
				continue
			}
			verticalDistance = cur.Top - rect.Bottom
		}

		horizontalDistance := math.Abs(rect.CenterX() - curCenterX)
		cost := horizontalDistance + verticalDistance*s.verticalWeight
		if cost < bestCost {
			bestCost = cost
			best = i
		}
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}
