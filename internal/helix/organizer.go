// Package helix chains selected base pairs into helix segments and resolves
// a consistent 5'->3' reading direction for every segment via a multi-pass
// strand-swap correction procedure.
package helix

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/strucbio/helixpair/internal/geom"
	"github.com/strucbio/helixpair/internal/pairing"
	"github.com/strucbio/helixpair/internal/structure"
)

// Segment is one helix: a half-open range [Start, End) into Result.Order.
type Segment struct {
	Start, End int

	// Parallel marks a segment whose two strands run the same backbone
	// direction.
	Parallel bool

	// HasBreak marks a segment containing a step wider than the break
	// cutoff, or the catch-all segment of leftover pairs.
	HasBreak bool

	// MixedDir marks a segment whose backbone linkage tallies disagree even
	// after localized correction.
	MixedDir bool
}

// Result describes how to read the input pairs as helices: Order is a
// permutation of pair indices, Segments partitions it, and Swapped[k] says
// pair k's strand roles are exchanged relative to discovery order.
type Result struct {
	Order    []int
	Segments []Segment
	Swapped  []bool
}

// orgState is the working state threaded through the organizer stages. Each
// stage mutates it in place; the stages run strictly in sequence.
type orgState struct {
	pairs []pairing.BasePair
	bb    *structure.BackboneData
	cfg   *Config
	log   *zap.Logger

	ctx     []pairContext
	swapped []bool
}

// Organize orders base pairs into helix segments with resolved strand
// direction. Every input pair must carry both reference frames; a pair
// without them is a caller bug, reported as an error rather than absorbed.
func Organize(pairs []pairing.BasePair, bb *structure.BackboneData, cfg *Config, logger *zap.Logger) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	for k := range pairs {
		if !pairs[k].FrameI.IsSet() || !pairs[k].FrameJ.IsSet() {
			return nil, fmt.Errorf("helix: pair %d (%d, %d) has no reference frame", k, pairs[k].I, pairs[k].J)
		}
	}

	st := &orgState{
		pairs:   pairs,
		bb:      bb,
		cfg:     cfg,
		log:     logger,
		swapped: make([]bool, len(pairs)),
	}
	if len(pairs) == 0 {
		return &Result{Swapped: st.swapped}, nil
	}

	st.buildContexts()
	segments := st.discoverSegments()

	res := &Result{Swapped: st.swapped}
	for _, seg := range segments {
		st.orientFirstStep(seg.order)
		st.correctPairwise(seg.order)
		parallel, mixed := st.reconcileDirections(seg.order)

		start := len(res.Order)
		res.Order = append(res.Order, seg.order...)
		res.Segments = append(res.Segments, Segment{
			Start:    start,
			End:      len(res.Order),
			Parallel: parallel,
			HasBreak: seg.hasBreak || st.segmentHasBreak(seg.order),
			MixedDir: mixed,
		})
	}

	logger.Debug("helix organization complete",
		zap.Int("pairs", len(pairs)),
		zap.Int("segments", len(res.Segments)))
	return res, nil
}

// segmentHasBreak reports whether any adjacent step in the segment is wider
// than the break cutoff.
func (st *orgState) segmentHasBreak(order []int) bool {
	for k := 1; k < len(order); k++ {
		if st.ctx[order[k-1]].mid.Dist(st.ctx[order[k]].mid) > st.cfg.BreakCutoff {
			return true
		}
	}
	return false
}

// strand1 returns the current strand-1 residue index of pair k, accounting
// for its swap flag on top of discovery order.
func (st *orgState) strand1(k int) int {
	if st.swapped[k] {
		return st.pairs[k].Strand2()
	}
	return st.pairs[k].Strand1()
}

func (st *orgState) strand2(k int) int {
	if st.swapped[k] {
		return st.pairs[k].Strand1()
	}
	return st.pairs[k].Strand2()
}

func (st *orgState) frame1(k int) geom.Frame {
	if st.swapped[k] {
		return st.pairs[k].Frame2()
	}
	return st.pairs[k].Frame1()
}

func (st *orgState) frame2(k int) geom.Frame {
	if st.swapped[k] {
		return st.pairs[k].Frame1()
	}
	return st.pairs[k].Frame2()
}

// linked reports whether residue a's O3' bonds to residue b's P.
func (st *orgState) linked(a, b int) bool {
	if st.bb == nil {
		return false
	}
	return st.bb.Linked(a, b, st.cfg.O3PCutoff)
}

func (st *orgState) flip(k int, stage string) {
	st.swapped[k] = !st.swapped[k]
	if st.cfg.Verbose {
		st.log.Info("strand swap",
			zap.Int("pair", k),
			zap.String("stage", stage),
			zap.Bool("swapped", st.swapped[k]))
	}
}
