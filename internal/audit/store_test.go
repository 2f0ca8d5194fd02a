package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strucbio/helixpair/internal/pairing"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestRecordAndListRuns(t *testing.T) {
	s := openInMemory(t)

	id1, err := s.RecordRun("structures/1ehz.pdb", 76)
	require.NoError(t, err)
	id2, err := s.RecordRun("structures/355d.pdb", 24)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	runs, err := s.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	byID := map[string]RunInfo{}
	for _, r := range runs {
		byID[r.RunID] = r
	}
	require.Contains(t, byID, id1)
	require.Contains(t, byID, id2)
	assert.Equal(t, "structures/1ehz.pdb", byID[id1].StructurePath)
	assert.Equal(t, 76, byID[id1].Residues)
	assert.Equal(t, 24, byID[id2].Residues)
}

func TestWriteAndQueryCandidates(t *testing.T) {
	s := openInMemory(t)

	run, err := s.RecordRun("test.pdb", 4)
	require.NoError(t, err)

	rows := []CandidateRow{
		{RunID: run, I: 1, J: 4, Valid: true, OriginDist: 3.0, VerticalDist: 0.2,
			PlaneAngle: 5.0, GlycoDist: 9.0, Score: 3.65, PairType: "GC", HBonds: 3},
		{RunID: run, I: 2, J: 3, Valid: false, OriginDist: 17.2, GlycoDist: 999.0},
	}
	require.NoError(t, s.WriteCandidates(rows))

	got, err := s.CandidatesForRun(run)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].I)
	assert.Equal(t, 4, got[0].J)
	assert.True(t, got[0].Valid)
	assert.Equal(t, "GC", got[0].PairType)
	assert.InDelta(t, 3.65, got[0].Score, 1e-9)
	assert.False(t, got[1].Valid)

	none, err := s.CandidatesForRun("no-such-run")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecorderBuffersAndFlushes(t *testing.T) {
	s := openInMemory(t)

	run, err := s.RecordRun("test.pdb", 2)
	require.NoError(t, err)

	rec := s.NewRecorder(run)
	rec.Candidate(1, 2, &pairing.ValidationResult{
		Valid: true, OriginDist: 2.9, Score: 3.1, PairType: "AU",
	})

	// Nothing is persisted until Flush.
	got, err := s.CandidatesForRun(run)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, rec.Flush())
	got, err = s.CandidatesForRun(run)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AU", got[0].PairType)
}

func TestWriteCandidatesEmpty(t *testing.T) {
	s := openInMemory(t)
	assert.NoError(t, s.WriteCandidates(nil))
}

func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
