package pairing

import "github.com/strucbio/helixpair/internal/geom"

// BasePair is a confirmed base pair. Indices are normalized so I < J;
// Reversed records whether the discovery order was (J, I). The frames are
// copied at creation time, so a BasePair stays self-contained even if the
// structure is modified later. A BasePair is immutable once created; the
// helix organizer's strand-swap annotation lives outside it.
type BasePair struct {
	I, J     int
	Reversed bool
	FrameI   geom.Frame
	FrameJ   geom.Frame
	HBonds   []HydrogenBond
	Type     string
}

// newBasePair normalizes a discovery-ordered (i, j) match into a BasePair.
// fi and fj are the frames of residues i and j respectively.
func newBasePair(i, j int, fi, fj geom.Frame, hbonds []HydrogenBond, pairType string) BasePair {
	bp := BasePair{
		I:      i,
		J:      j,
		FrameI: fi,
		FrameJ: fj,
		HBonds: hbonds,
		Type:   pairType,
	}
	if i > j {
		bp.I, bp.J = j, i
		bp.FrameI, bp.FrameJ = fj, fi
		bp.Reversed = true
	}
	return bp
}

// Strand1 returns the residue index that was first in discovery order: the
// initial "strand 1" assignment before any helix-level swap correction.
func (bp *BasePair) Strand1() int {
	if bp.Reversed {
		return bp.J
	}
	return bp.I
}

// Strand2 returns the discovery-order second residue index.
func (bp *BasePair) Strand2() int {
	if bp.Reversed {
		return bp.I
	}
	return bp.J
}

// Frame1 returns the frame of the Strand1 residue.
func (bp *BasePair) Frame1() geom.Frame {
	if bp.Reversed {
		return bp.FrameJ
	}
	return bp.FrameI
}

// Frame2 returns the frame of the Strand2 residue.
func (bp *BasePair) Frame2() geom.Frame {
	if bp.Reversed {
		return bp.FrameI
	}
	return bp.FrameJ
}
