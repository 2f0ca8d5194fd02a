package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strucbio/helixpair/internal/geom"
	"github.com/strucbio/helixpair/internal/structure"
)

func TestIsPolarAtom(t *testing.T) {
	assert.True(t, isPolarAtom("N1"))
	assert.True(t, isPolarAtom("O6"))
	assert.True(t, isPolarAtom("O2'")) // ribose hydroxyl allowed
	assert.False(t, isPolarAtom("C2"))
	assert.False(t, isPolarAtom("OP1"))
	assert.False(t, isPolarAtom("O5'"))
	assert.False(t, isPolarAtom("O3'"))
	assert.False(t, isPolarAtom(""))
}

func TestIsBaseAtom(t *testing.T) {
	assert.True(t, isBaseAtom("N1"))
	assert.False(t, isBaseAtom("O2'"))
	assert.False(t, isBaseAtom("C5"))
}

func atomAt(name string, x float64) structure.Atom {
	return structure.Atom{Name: name, Pos: geom.Vec3{X: x}}
}

func TestResolveConflictsTermination(t *testing.T) {
	// All bonds share the donor O6; only the shortest becomes a conflict
	// and the rest are visited through the shared atom.
	bonds := []HydrogenBond{
		{Donor: "O6", Acceptor: "N4", Dist: 2.75},
		{Donor: "O6", Acceptor: "N3", Dist: 2.96},
		{Donor: "O6", Acceptor: "N1", Dist: 3.95},
	}
	resolveConflicts(bonds)

	assert.Negative(t, bonds[0].Dist)
	assert.Positive(t, bonds[1].Dist)
	assert.Positive(t, bonds[2].Dist)
}

func TestTagLinkageRange(t *testing.T) {
	bonds := []HydrogenBond{
		{Donor: "O6", Acceptor: "N4", Dist: -2.75}, // resolved conflict
		{Donor: "O6", Acceptor: "N3", Dist: 2.96},  // shares donor, in window
		{Donor: "O6", Acceptor: "N1", Dist: 3.95},  // shares donor, out of window
		{Donor: "N1", Acceptor: "N7", Dist: 3.0},   // independent
	}
	tagLinkage(bonds, 2.0, 3.2)

	for _, b := range bonds {
		assert.GreaterOrEqual(t, b.Linkage, 0)
		assert.LessOrEqual(t, b.Linkage, MaxLinkage)
	}
	assert.Equal(t, 9, bonds[1].Linkage)
	assert.Negative(t, bonds[1].Dist, "tagged bond in strict window becomes a conflict")
	assert.Equal(t, 9, bonds[2].Linkage)
	assert.Positive(t, bonds[2].Dist)
}

func TestResolveHBondsGC(t *testing.T) {
	// A stripped-down G:C arrangement. The O6..N4 contact is the shortest
	// and mutual; longer contacts through the same O6 resolve around it.
	g := &structure.Residue{Name: "G", Atoms: []structure.Atom{
		atomAt("O6", 0),
	}}
	c := &structure.Residue{Name: "C", Atoms: []structure.Atom{
		atomAt("N4", 2.75),
		atomAt("N3", 2.96),
		atomAt("O2", 3.95),
	}}

	cfg := DefaultConfig()
	bonds := ResolveHBonds(g, c, cfg)
	require.NotEmpty(t, bonds)

	// All distances restored to absolute values, all linkage tags in range.
	for _, b := range bonds {
		assert.Positive(t, b.Dist)
		assert.GreaterOrEqual(t, b.Linkage, 0)
		assert.LessOrEqual(t, b.Linkage, MaxLinkage)
	}

	// The mutual-best O6..N4 bond is standard: G O6 accepts, C N4 donates.
	require.Equal(t, "N4", bonds[0].Acceptor)
	assert.Equal(t, HBStandard, bonds[0].Type)

	// The 3.95 A contact exceeds the cleanup cutoff once a good standard
	// bond exists.
	for _, b := range bonds {
		assert.LessOrEqual(t, b.Dist, hbDropBeyond)
	}
}

func TestResolveHBondsEmpty(t *testing.T) {
	a := &structure.Residue{Name: "G", Atoms: []structure.Atom{atomAt("O6", 0)}}
	b := &structure.Residue{Name: "C", Atoms: []structure.Atom{atomAt("N4", 50)}}
	assert.Empty(t, ResolveHBonds(a, b, DefaultConfig()))
}

func TestCountSimpleHBonds(t *testing.T) {
	a := &structure.Residue{Name: "G", Atoms: []structure.Atom{
		atomAt("O6", 0),
		atomAt("O2'", 0.5),
	}}
	b := &structure.Residue{Name: "C", Atoms: []structure.Atom{
		atomAt("N4", 2.8),
		atomAt("C5", 2.9), // carbon: never a bond
	}}
	base, o2 := countSimpleHBonds(a, b, 2.0, 4.0)
	assert.Equal(t, 1, base)
	assert.Equal(t, 1, o2) // O2'..N4 at 2.3
}
