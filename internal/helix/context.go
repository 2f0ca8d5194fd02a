package helix

import (
	"sort"

	"github.com/strucbio/helixpair/internal/geom"
)

// pairContext is the spatial neighborhood of one base pair: its midpoint,
// its averaged base normal, and its two stacking neighbors (or -1).
type pairContext struct {
	mid  geom.Vec3
	zave geom.Vec3

	// neighbors within NeighborCutoff, nearest first.
	neighbors []int

	n1, n2   int
	endpoint bool
}

// averagedNormal combines the two base normals of a pair into one axis. The
// strands of a pair normally point their z axes in opposite directions, so
// the anti-aligned normal is subtracted before normalizing. A degenerate sum
// falls back to the first frame's z axis unchanged.
func averagedNormal(f1, f2 geom.Frame) geom.Vec3 {
	var sum geom.Vec3
	if f1.Z.Dot(f2.Z) > 0 {
		sum = f1.Z.Add(f2.Z)
	} else {
		sum = f1.Z.Sub(f2.Z)
	}
	if z, ok := sum.Normalize(); ok {
		return z
	}
	return f1.Z
}

// sameSide reports whether two z-projections fall on the same side of a
// pair's base plane. Zero projects to the non-negative side; that fixed
// convention keeps degenerate in-plane neighbors deterministic.
func sameSide(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}

// buildContexts computes the neighbor context for every pair. A pair with no
// neighbor inside NeighborCutoff, or no second neighbor on the far side of
// its base plane, is an endpoint. Endpoints still pick up a second neighbor
// when one sits on the far side as seen from neighbor1 (the indirect
// fallback); they stay endpoints regardless.
func (st *orgState) buildContexts() {
	n := len(st.pairs)
	st.ctx = make([]pairContext, n)

	for k := range st.pairs {
		bp := &st.pairs[k]
		st.ctx[k] = pairContext{
			mid:  bp.FrameI.Origin.Mid(bp.FrameJ.Origin),
			zave: averagedNormal(bp.FrameI, bp.FrameJ),
			n1:   -1,
			n2:   -1,
		}
	}

	for k := range st.ctx {
		c := &st.ctx[k]
		for m := range st.ctx {
			if m == k {
				continue
			}
			if c.mid.Dist(st.ctx[m].mid) <= st.cfg.NeighborCutoff {
				c.neighbors = append(c.neighbors, m)
			}
		}
		sort.Slice(c.neighbors, func(a, b int) bool {
			da := c.mid.Dist(st.ctx[c.neighbors[a]].mid)
			db := c.mid.Dist(st.ctx[c.neighbors[b]].mid)
			if da != db {
				return da < db
			}
			return c.neighbors[a] < c.neighbors[b]
		})

		if len(c.neighbors) == 0 {
			c.endpoint = true
			continue
		}
		c.n1 = c.neighbors[0]
		side1 := c.zave.Dot(st.ctx[c.n1].mid.Sub(c.mid))

		for _, m := range c.neighbors[1:] {
			if c.mid.Dist(st.ctx[m].mid) > st.cfg.BreakCutoff {
				continue
			}
			if !sameSide(side1, c.zave.Dot(st.ctx[m].mid.Sub(c.mid))) {
				c.n2 = m
				break
			}
		}
		if c.n2 >= 0 {
			continue
		}
		c.endpoint = true

		// Indirect fallback: a far-side candidate reachable from neighbor1.
		mid1 := st.ctx[c.n1].mid
		for _, m := range c.neighbors[1:] {
			v := st.ctx[m].mid.Sub(mid1)
			if v.Norm() <= st.cfg.BreakCutoff && !sameSide(side1, c.zave.Dot(v)) {
				c.n2 = m
				break
			}
		}
	}
}
