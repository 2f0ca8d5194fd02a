package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strucbio/helixpair/internal/geom"
)

func TestOneLetterCode(t *testing.T) {
	tests := []struct {
		name string
		want byte
	}{
		{"G", 'G'},
		{"DG", 'G'},
		{"GUA", 'G'},
		{"ADE", 'A'},
		{"DT", 'T'},
		{"U", 'U'},
		{"PSU", 'P'},
		{"5MC", 'c'},
		{"1MA", 'a'},
		{"HOH", 'X'},
		{"ARG", 'X'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OneLetterCode(tt.name), "residue %s", tt.name)
	}
}

func TestPurinePyrimidine(t *testing.T) {
	assert.True(t, IsPurine('A'))
	assert.True(t, IsPurine('g'))
	assert.True(t, IsPurine('I'))
	assert.False(t, IsPurine('C'))

	assert.True(t, IsPyrimidine('U'))
	assert.True(t, IsPyrimidine('P')) // pseudouridine
	assert.False(t, IsPyrimidine('G'))
}

func TestIsNucleotide(t *testing.T) {
	r := &Residue{Name: "G", Atoms: []Atom{
		{Name: "C1'"},
		{Name: "N1"}, {Name: "C2"}, {Name: "N3"},
		{Name: "C4"}, {Name: "C5"}, {Name: "C6"},
	}}
	assert.True(t, IsNucleotide(r))

	// No glycosidic carbon.
	noC1 := &Residue{Name: "G", Atoms: r.Atoms[1:]}
	assert.False(t, IsNucleotide(noC1))

	// Too few ring atoms (e.g. an amino acid with an N1-named atom).
	aa := &Residue{Name: "ARG", Atoms: []Atom{{Name: "C1'"}, {Name: "N1"}}}
	assert.False(t, IsNucleotide(aa))
}

func TestNormalizeAtomName(t *testing.T) {
	assert.Equal(t, "O3'", NormalizeAtomName(" O3* "))
	assert.Equal(t, "C1'", NormalizeAtomName("C1'"))
}

func TestBackboneLinked(t *testing.T) {
	s := &Structure{Residues: []*Residue{
		{Chain: "A", Seq: 1, Name: "G", Atoms: []Atom{
			{Name: "O3'", Pos: geom.Vec3{X: 1, Y: 0, Z: 0}},
			{Name: "P", Pos: geom.Vec3{X: 0, Y: 0, Z: 0}},
		}},
		{Chain: "A", Seq: 2, Name: "C", Atoms: []Atom{
			{Name: "O3'", Pos: geom.Vec3{X: 8, Y: 0, Z: 0}},
			{Name: "P", Pos: geom.Vec3{X: 2.2, Y: 0, Z: 0}},
		}},
		{Chain: "B", Seq: 1, Name: "A", Atoms: []Atom{
			{Name: "PA", Pos: geom.Vec3{X: 20, Y: 0, Z: 0}},
		}},
	}}

	b := BuildBackbone(s)
	require.NotNil(t, b.O3(1))
	require.NotNil(t, b.P(2))

	assert.True(t, b.Linked(1, 2, 2.5))  // 1.2 apart
	assert.False(t, b.Linked(2, 1, 2.5)) // 8.0 apart
	assert.False(t, b.Linked(2, 3, 2.5))

	// PA substitutes for P.
	require.NotNil(t, b.P(3))
	assert.Nil(t, b.O3(3))

	// Out-of-range indices are nil, not panics.
	assert.Nil(t, b.O3(0))
	assert.Nil(t, b.P(99))
}
