package helix

import "github.com/strucbio/helixpair/internal/geom"

// orientFirstStep anchors a segment's reading direction on its first two
// pairs. Forward backbone linkage between their strand-1 residues confirms
// the order; reverse linkage means the first pair's strands are exchanged.
// With no linkage at all the whole segment is reversed and tested once more,
// and the reversal is undone if that does not help either.
func (st *orgState) orientFirstStep(order []int) {
	if len(order) < 2 {
		return
	}
	if st.tryFirstStep(order) {
		return
	}
	reverse(order)
	if st.tryFirstStep(order) {
		return
	}
	reverse(order)
}

func (st *orgState) tryFirstStep(order []int) bool {
	a, b := order[0], order[1]
	if st.linked(st.strand1(a), st.strand1(b)) {
		return true
	}
	if st.linked(st.strand1(b), st.strand1(a)) {
		st.flip(a, "first-step")
		return true
	}
	return false
}

func reverse(order []int) {
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
}

// correctPairwise walks each adjacent duo once, letting four independent
// heuristics vote on exchanging the second pair's strands; any single vote
// flips it. A trailing strand-1 backbone check can flip on its own. The
// second, lighter pass repeats only the end-stacking check and flips the
// first pair of the duo, catching inversions the forward sweep cannot see.
func (st *orgState) correctPairwise(order []int) {
	for k := 1; k < len(order); k++ {
		p, q := order[k-1], order[k]
		if st.endStackFlip(p, q) ||
			st.o3AsymmetryFlip(p, q) ||
			st.crossOnlyFlip(p, q) ||
			st.frameAlignFlip(p, q) {
			st.flip(q, "pairwise")
			continue
		}
		if st.linked(st.strand1(q), st.strand1(p)) && !st.linked(st.strand1(p), st.strand1(q)) {
			st.flip(q, "strand1-direction")
		}
	}

	for k := 1; k < len(order); k++ {
		p, q := order[k-1], order[k]
		if st.endStackFlip(p, q) {
			st.flip(p, "end-stack-retry")
		}
	}
}

// endStackFlip detects inverted stacking: when the strand-1 base normals of
// two adjacent pairs open past the end-stack angle, the second pair reads
// upside down relative to the first.
func (st *orgState) endStackFlip(p, q int) bool {
	return geom.AngleDeg(st.frame1(p).Z, st.frame1(q).Z) > st.cfg.EndStackAngle
}

// o3AsymmetryFlip compares same-strand against cross-strand O3'..P gaps
// between the two pairs. A strictly closer cross-strand gap means the second
// pair's strand labels are crossed. Missing backbone atoms yield the
// sentinel and never force a flip.
func (st *orgState) o3AsymmetryFlip(p, q int) bool {
	same := minGap(st,
		[2]int{st.strand1(p), st.strand1(q)},
		[2]int{st.strand2(p), st.strand2(q)})
	cross := minGap(st,
		[2]int{st.strand1(p), st.strand2(q)},
		[2]int{st.strand2(p), st.strand1(q)})
	return cross < same
}

const noGap = 1e9

// minGap returns the smallest O3'..P distance over the given residue pairs,
// trying both bond directions, or the noGap sentinel when no backbone atoms
// are available.
func minGap(st *orgState, pairs ...[2]int) float64 {
	best := noGap
	if st.bb == nil {
		return best
	}
	for _, rp := range pairs {
		for _, dir := range [2][2]int{{rp[0], rp[1]}, {rp[1], rp[0]}} {
			o3 := st.bb.O3(dir[0])
			pp := st.bb.P(dir[1])
			if o3 == nil || pp == nil {
				continue
			}
			if d := o3.Dist(*pp); d < best {
				best = d
			}
		}
	}
	return best
}

// crossOnlyFlip fires when backbone linkage exists only between opposite
// strand labels of the two pairs: unambiguous evidence the labels are
// crossed.
func (st *orgState) crossOnlyFlip(p, q int) bool {
	same := st.linkedEither(st.strand1(p), st.strand1(q)) ||
		st.linkedEither(st.strand2(p), st.strand2(q))
	cross := st.linkedEither(st.strand1(p), st.strand2(q)) ||
		st.linkedEither(st.strand2(p), st.strand1(q))
	return cross && !same
}

func (st *orgState) linkedEither(a, b int) bool {
	return st.linked(a, b) || st.linked(b, a)
}

// frameAlignFlip compares summed axis agreement between same-strand and
// cross-strand frame assignments of the two pairs. A strictly better cross
// alignment wins; ties keep the current labels.
func (st *orgState) frameAlignFlip(p, q int) bool {
	same := frameAgreement(st.frame1(p), st.frame1(q)) +
		frameAgreement(st.frame2(p), st.frame2(q))
	cross := frameAgreement(st.frame1(p), st.frame2(q)) +
		frameAgreement(st.frame2(p), st.frame1(q))
	return cross > same
}

func frameAgreement(a, b geom.Frame) float64 {
	return a.X.Dot(b.X) + a.Y.Dot(b.Y) + a.Z.Dot(b.Z)
}
