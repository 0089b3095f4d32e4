package navigation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepClampsAtBothEnds(t *testing.T) {
	s := NewService()
	const count = 5

	for i := 0; i < count; i++ {
		next, moved := s.Step(i, count, DirectionRight)
		assert.Equal(t, min(i+1, count-1), next, "right from %d", i)
		assert.Equal(t, i < count-1, moved)

		prev, moved := s.Step(i, count, DirectionLeft)
		assert.Equal(t, max(i-1, 0), prev, "left from %d", i)
		assert.Equal(t, i > 0, moved)
	}
}

func TestStepRejectsOutOfRange(t *testing.T) {
	s := NewService()
	_, ok := s.Step(5, 5, DirectionLeft)
	assert.False(t, ok)
	_, ok = s.Step(-1, 5, DirectionRight)
	assert.False(t, ok)
	_, ok = s.Step(0, 0, DirectionRight)
	assert.False(t, ok)
}

func TestStepIgnoresGeometry(t *testing.T) {
	s := NewService()
	// Bounds that would contradict index order are never consulted
	rects := Rects{NewRect(500, 0, 10, 10), NewRect(0, 0, 10, 10)}
	got, ok := s.Resolve(0, 2, DirectionRight, rects)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	got, ok = s.Resolve(1, 2, DirectionLeft, nil)
	require.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestResolveDownScenario(t *testing.T) {
	s := NewService()
	rects := Rects{
		NewRect(0, 0, 100, 50),   // A
		NewRect(0, 60, 100, 50),  // B: cost 0 + 0.5*10 = 5
		NewRect(150, 55, 100, 50), // C: cost 150 + 0.5*5 = 152.5
	}

	got, ok := s.ResolveVertical(0, len(rects), DirectionDown, rects)
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestResolveDownFilter(t *testing.T) {
	s := NewService()
	cur := NewRect(0, 0, 100, 50)
	rects := Rects{
		cur,
		NewRect(0, 50, 100, 50),  // top == bottom: touching, not below
		NewRect(0, 20, 100, 50),  // overlapping
		NewRect(0, -80, 100, 50), // above
	}

	_, ok := s.ResolveVertical(0, len(rects), DirectionDown, rects)
	assert.False(t, ok, "no candidate lies strictly below")
}

func TestResolveDownFilterNeverPicksNonBelow(t *testing.T) {
	s := NewService()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		rects := randomRects(rng, 12)
		for cur := range rects {
			got, ok := s.ResolveVertical(cur, len(rects), DirectionDown, rects)
			if !ok {
				continue
			}
			assert.Greater(t, rects[got].Top, rects[cur].Bottom, "trial %d from %d", trial, cur)
		}
	}
}

func TestResolveUpMirrorsDown(t *testing.T) {
	s := NewService()
	rects := Rects{
		NewRect(0, 60, 100, 50),   // current
		NewRect(0, 0, 100, 50),    // directly above: cost 0 + 0.5*10 = 5
		NewRect(150, 5, 100, 50),  // offset: 150 + 0.5*5
		NewRect(0, 200, 100, 50),  // below: never an Up candidate
		NewRect(0, 30, 100, 50),   // overlaps current
	}

	got, ok := s.ResolveVertical(0, len(rects), DirectionUp, rects)
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestWeightingFavoursAlignment(t *testing.T) {
	s := NewService()
	rects := Rects{
		NewRect(0, 0, 100, 50),
		NewRect(60, 51, 100, 50), // offset 60, gap 1: 60.5
		NewRect(0, 150, 100, 50), // aligned, gap 100: 50
	}

	got, ok := s.ResolveVertical(0, len(rects), DirectionDown, rects)
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestTieBreakPrefersLowerIndex(t *testing.T) {
	s := NewService()
	rects := Rects{
		NewRect(50, 0, 100, 50),  // center 100
		NewRect(100, 60, 100, 50), // center 150: 50 + 5
		NewRect(0, 60, 100, 50),   // center 50: 50 + 5
	}

	for i := 0; i < 10; i++ {
		got, ok := s.ResolveVertical(0, len(rects), DirectionDown, rects)
		require.True(t, ok)
		assert.Equal(t, 1, got)
	}
}

func TestUnavailableBoundsAreSkipped(t *testing.T) {
	s := NewService()
	rects := Rects{
		NewRect(0, 0, 100, 50),
		NewRect(0, 60, 100, 50),
		NewRect(0, 200, 100, 50),
	}
	hidden := BoundsFunc(func(i int) (Rect, bool) {
		if i == 1 {
			return Rect{}, false
		}
		return rects.Bounds(i)
	})

	got, ok := s.ResolveVertical(0, len(rects), DirectionDown, hidden)
	require.True(t, ok)
	assert.Equal(t, 2, got)

	missingCurrent := BoundsFunc(func(i int) (Rect, bool) {
		if i == 0 {
			return Rect{}, false
		}
		return rects.Bounds(i)
	})
	_, ok = s.ResolveVertical(0, len(rects), DirectionDown, missingCurrent)
	assert.False(t, ok)
}

func TestResolveNeverQueriesPastCount(t *testing.T) {
	s := NewService()
	rects := Rects{NewRect(0, 0, 10, 10), NewRect(0, 20, 10, 10), NewRect(0, 40, 10, 10)}
	var queried []int
	spy := BoundsFunc(func(i int) (Rect, bool) {
		queried = append(queried, i)
		return rects.Bounds(i)
	})

	got, ok := s.Resolve(0, 2, DirectionDown, spy)
	require.True(t, ok)
	assert.Equal(t, 1, got)
	for _, i := range queried {
		assert.Less(t, i, 2)
	}

	_, ok = s.Resolve(2, 2, DirectionDown, spy)
	assert.False(t, ok)
}

func TestDownThenUpIsNotARoundTrip(t *testing.T) {
	s := NewService()
	rects := Rects{
		NewRect(0, 0, 100, 50),   // start, center 50
		NewRect(120, 0, 100, 50), // same row, center 170
		NewRect(60, 60, 120, 50), // wide card below, center 120
	}

	down, ok := s.ResolveVertical(0, len(rects), DirectionDown, rects)
	require.True(t, ok)
	require.Equal(t, 2, down)

	up, ok := s.ResolveVertical(down, len(rects), DirectionUp, rects)
	require.True(t, ok)
	assert.Equal(t, 1, up, "up from the wide card prefers the better aligned neighbour")
	assert.Less(t, rects[up].Bottom, rects[down].Top)
}

func TestDownThenUpAlwaysFindsAnUpCandidate(t *testing.T) {
	s := NewService()
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		rects := randomRects(rng, 10)
		for start := range rects {
			mid, ok := s.ResolveVertical(start, len(rects), DirectionDown, rects)
			if !ok {
				continue
			}
			back, ok := s.ResolveVertical(mid, len(rects), DirectionUp, rects)
			require.True(t, ok, "the start card is always an Up candidate from %d", mid)
			assert.Less(t, rects[back].Bottom, rects[mid].Top)
		}
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", DirectionLeft.String())
	assert.Equal(t, "down", DirectionDown.String())
	assert.Equal(t, "unknown", Direction(99).String())
	assert.True(t, DirectionUp.IsVertical())
	assert.False(t, DirectionRight.IsVertical())
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	assert.Equal(t, 110.0, r.Right)
	assert.Equal(t, 70.0, r.Bottom)
	assert.Equal(t, 60.0, r.CenterX())
	assert.Equal(t, NewRect(15, 10, 100, 50), r.Translate(5, -10))
	assert.Equal(t, "{10,20 100x50}", r.String())
}

func randomRects(rng *rand.Rand, n int) Rects {
	rects := make(Rects, n)
	for i := range rects {
		rects[i] = NewRect(
			float64(rng.Intn(400)),
			float64(rng.Intn(400)),
			float64(20+rng.Intn(80)),
			float64(10+rng.Intn(60)),
		)
	}
	return rects
}
