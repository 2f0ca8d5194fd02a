package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strucbio/helixpair/internal/geom"
	"github.com/strucbio/helixpair/internal/structure"
)

// twoPairStructure lays out two independent G:C arrangements far enough
// apart that no cross-candidates survive the coarse cutoff.
func twoPairStructure() *structure.Structure {
	g1, c1 := testGC(geom.Vec3{}, 0)
	g2, c2 := testGC(geom.Vec3{Y: 40}, 0)
	g2.Seq, c2.Seq = 2, 2
	return &structure.Structure{Residues: []*structure.Residue{g1, c1, g2, c2}}
}

func TestFindPairsBasic(t *testing.T) {
	s := twoPairStructure()
	pairs := FindPairs(s, DefaultConfig(), nil)

	require.Len(t, pairs, 2)
	assert.Equal(t, 1, pairs[0].I)
	assert.Equal(t, 2, pairs[0].J)
	assert.Equal(t, 3, pairs[1].I)
	assert.Equal(t, 4, pairs[1].J)
	assert.Equal(t, "GC", pairs[0].Type)
	assert.False(t, pairs[0].Reversed)
	assert.NotEmpty(t, pairs[0].HBonds)
	assert.True(t, pairs[0].FrameI.IsSet())
	assert.True(t, pairs[0].FrameJ.IsSet())
}

func TestFindPairsIdempotent(t *testing.T) {
	s := twoPairStructure()
	cfg := DefaultConfig()

	first := FindPairs(s, cfg, nil)
	second := FindPairs(s, cfg, nil)
	assert.Equal(t, first, second)
}

func TestFindPairsValidMatching(t *testing.T) {
	s := twoPairStructure()
	pairs := FindPairs(s, DefaultConfig(), nil)

	seen := map[int]bool{}
	for _, bp := range pairs {
		assert.Less(t, bp.I, bp.J, "indices normalized smaller-first")
		assert.False(t, seen[bp.I], "residue %d in more than one pair", bp.I)
		assert.False(t, seen[bp.J], "residue %d in more than one pair", bp.J)
		seen[bp.I] = true
		seen[bp.J] = true
	}
}

func TestFindPairsMutualBestInvariant(t *testing.T) {
	s := twoPairStructure()
	cfg := DefaultConfig()

	n := s.NumResidues()
	eligible := make([]bool, n+1)
	for i := 1; i <= n; i++ {
		r := s.Residue(i)
		eligible[i] = structure.IsNucleotide(r) && r.Frame != nil
	}
	cache := BuildCache(s, eligible, cfg, 1, nil)

	pairs := FindPairs(s, cfg, nil)
	matched := make([]bool, n+1)
	for _, bp := range pairs {
		i, j := bp.Strand1(), bp.Strand2()
		assert.Equal(t, j, bestPartner(i, n, eligible, matched, cache))
		assert.Equal(t, i, bestPartner(j, n, eligible, matched, cache))
		matched[i] = true
		matched[j] = true
	}
}

func TestFindPairsUnpairedResidue(t *testing.T) {
	// A lone nucleotide with no partner in range stays unpaired; that is an
	// absence in the output, not an error.
	g, c := testGC(geom.Vec3{}, 0)
	lone, _ := testGC(geom.Vec3{Y: 200}, 0)
	s := &structure.Structure{Residues: []*structure.Residue{g, c, lone}}

	pairs := FindPairs(s, DefaultConfig(), nil)
	require.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].I)
	assert.Equal(t, 2, pairs[0].J)
}

type recordingSink struct {
	calls [][2]int
}

func (r *recordingSink) Candidate(i, j int, res *ValidationResult) {
	r.calls = append(r.calls, [2]int{i, j})
}

func TestFindPairsAuditStream(t *testing.T) {
	s := twoPairStructure()
	sink := &recordingSink{}
	FindPairs(s, DefaultConfig(), &FindOptions{Audit: sink})

	// Every evaluated candidate is reported, in ascending index order.
	require.NotEmpty(t, sink.calls)
	for k := 1; k < len(sink.calls); k++ {
		prev, cur := sink.calls[k-1], sink.calls[k]
		ordered := prev[0] < cur[0] || (prev[0] == cur[0] && prev[1] < cur[1])
		assert.True(t, ordered, "audit order %v before %v", prev, cur)
	}
}
