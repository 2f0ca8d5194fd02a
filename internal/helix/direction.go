package helix

import "go.uber.org/zap"

// directionCounts tallies forward and reverse backbone steps per strand
// across a segment's adjacent duos.
type directionCounts struct {
	f1, r1 int
	f2, r2 int
}

func (d directionCounts) total() int  { return d.f1 + d.r1 + d.f2 + d.r2 }
func (d directionCounts) mixed() bool { return (d.f1 > 0 && d.r1 > 0) || (d.f2 > 0 && d.r2 > 0) }

func (st *orgState) tally(order []int) directionCounts {
	var d directionCounts
	for k := 1; k < len(order); k++ {
		p, q := order[k-1], order[k]
		if st.linked(st.strand1(p), st.strand1(q)) {
			d.f1++
		}
		if st.linked(st.strand1(q), st.strand1(p)) {
			d.r1++
		}
		if st.linked(st.strand2(p), st.strand2(q)) {
			d.f2++
		}
		if st.linked(st.strand2(q), st.strand2(p)) {
			d.r2++
		}
	}
	return d
}

// reconcileDirections settles a segment's global reading direction from its
// backbone linkage tallies. A segment with no linkage evidence anywhere is
// left exactly as found. Mixed evidence on either strand gets one localized
// cross-strand correction and one re-tally; if still mixed the segment is
// flagged rather than forced.
func (st *orgState) reconcileDirections(order []int) (parallel, mixedDir bool) {
	d := st.tally(order)
	if d.total() == 0 {
		return false, false
	}

	if d.mixed() {
		for k := 1; k < len(order); k++ {
			p, q := order[k-1], order[k]
			if st.crossOnlyFlip(p, q) {
				st.flip(q, "mixed-correction")
			}
		}
		d = st.tally(order)
		if d.mixed() {
			if st.cfg.Verbose {
				st.log.Info("mixed strand direction persists",
					zap.Int("f1", d.f1), zap.Int("r1", d.r1),
					zap.Int("f2", d.f2), zap.Int("r2", d.r2))
			}
			return false, true
		}
	}

	// Strand 1 reads forward by convention; a reverse-only strand 1 just
	// means the traversal entered from the 3' end.
	if d.f1 == 0 && d.r1 > 0 {
		reverse(order)
		d.f1, d.r1 = d.r1, d.f1
		d.f2, d.r2 = d.r2, d.f2
	}

	last := order[len(order)-1]
	switch {
	case d.r2 > 0 && d.f2 == 0:
		// Anti-parallel. The segment must read from the lowest strand-1
		// residue through to its partner strand's far end.
		if st.strand1(order[0]) >= st.strand2(last) {
			for _, k := range order {
				st.flip(k, "anti-parallel")
			}
			reverse(order)
		}
		return false, false
	case d.f2 > 0 && d.r2 == 0:
		// Parallel strands: both read forward, anchored on the first pair's
		// residue indices ascending.
		if st.strand1(order[0]) > st.strand2(order[0]) {
			for _, k := range order {
				st.flip(k, "parallel")
			}
		}
		return true, false
	}

	// Only strand-1 evidence: direction already settled above.
	return false, false
}
