package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(x0, y0, side float64) []point2 {
	return []point2{
		{x0, y0},
		{x0 + side, y0},
		{x0 + side, y0 + side},
		{x0, y0 + side},
	}
}

func TestOverlapCoincident(t *testing.T) {
	a := square(0, 0, 2)
	b := square(0, 0, 2)
	got := polyOverlapArea(a, b)
	assert.InDelta(t, 4.0, got, 0.01)
}

func TestOverlapDisjoint(t *testing.T) {
	a := square(0, 0, 2)
	b := square(10, 10, 2)
	assert.InDelta(t, 0.0, polyOverlapArea(a, b), 1e-9)
}

func TestOverlapPartial(t *testing.T) {
	a := square(0, 0, 2)
	b := square(1, 1, 2)
	assert.InDelta(t, 1.0, polyOverlapArea(a, b), 0.01)
}

func TestOverlapContained(t *testing.T) {
	outer := square(0, 0, 4)
	inner := square(1, 1, 2)
	assert.InDelta(t, 4.0, polyOverlapArea(outer, inner), 0.01)
	assert.InDelta(t, 4.0, polyOverlapArea(inner, outer), 0.01)
}

func TestOverlapOrientationIndependent(t *testing.T) {
	a := square(0, 0, 2)
	// Clockwise winding of the same square.
	b := []point2{{1, 1}, {1, 3}, {3, 3}, {3, 1}}
	cw := []point2{{1, 1}, {3, 1}, {3, 3}, {1, 3}}
	assert.InDelta(t, polyOverlapArea(a, b), polyOverlapArea(a, cw), 0.01)
}

func TestOverlapDegenerate(t *testing.T) {
	// Fewer than three vertices.
	assert.Equal(t, 0.0, polyOverlapArea([]point2{{0, 0}, {1, 1}}, square(0, 0, 2)))

	// Zero-extent bounding box: all points identical. The legacy fallback
	// answers 0.0, the permissive direction for the overlap check.
	pt := []point2{{1, 1}, {1, 1}, {1, 1}}
	assert.Equal(t, 0.0, polyOverlapArea(pt, pt))
}

func TestOverlapTriangleHalf(t *testing.T) {
	// A triangle covering half the unit square.
	sq := square(0, 0, 1)
	tri := []point2{{0, 0}, {1, 0}, {0, 1}}
	assert.InDelta(t, 0.5, polyOverlapArea(sq, tri), 0.01)
}
