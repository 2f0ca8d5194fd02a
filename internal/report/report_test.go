package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strucbio/helixpair/internal/geom"
	"github.com/strucbio/helixpair/internal/helix"
	"github.com/strucbio/helixpair/internal/pairing"
	"github.com/strucbio/helixpair/internal/structure"
)

func testInput() (*structure.Structure, []pairing.BasePair, *helix.Result) {
	s := &structure.Structure{Residues: []*structure.Residue{
		{Chain: "A", Seq: 1, Name: "G"},
		{Chain: "A", Seq: 2, Name: "A"},
		{Chain: "B", Seq: 11, Name: "U"},
		{Chain: "B", Seq: 12, Name: "C"},
	}}
	frame := geom.Frame{X: geom.Vec3{X: 1}, Y: geom.Vec3{Y: 1}, Z: geom.Vec3{Z: 1}}
	pairs := []pairing.BasePair{
		{I: 1, J: 4, FrameI: frame, FrameJ: frame, Type: "GC", HBonds: []pairing.HydrogenBond{
			{Donor: "O6", Acceptor: "N4", Dist: 2.91, Type: pairing.HBStandard},
		}},
		{I: 2, J: 3, FrameI: frame, FrameJ: frame, Type: "AU"},
	}
	res := &helix.Result{
		Order:    []int{0, 1},
		Segments: []helix.Segment{{Start: 0, End: 2}},
		Swapped:  []bool{false, true},
	}
	return s, pairs, res
}

func TestBuild(t *testing.T) {
	s, pairs, res := testInput()
	records := Build(s, pairs, res)
	require.Len(t, records, 2)

	assert.Equal(t, 1, records[0].Position)
	assert.Equal(t, 1, records[0].Segment)
	assert.Equal(t, "A.G1", records[0].Strand1)
	assert.Equal(t, "B.C12", records[0].Strand2)
	assert.Equal(t, "GC", records[0].Type)
	assert.Equal(t, "O6-N4[2.91]", records[0].HBonds)
	assert.False(t, records[0].Swapped)

	// The swapped pair reads strand 2 first.
	assert.Equal(t, "B.U11", records[1].Strand1)
	assert.Equal(t, "A.A2", records[1].Strand2)
	assert.True(t, records[1].Swapped)
}

func TestTabWriter(t *testing.T) {
	s, pairs, res := testInput()
	records := Build(s, pairs, res)

	var buf bytes.Buffer
	tw := NewTabWriter(&buf)
	require.NoError(t, tw.WriteHeader())
	for i := range records {
		require.NoError(t, tw.Write(&records[i]))
	}
	require.NoError(t, tw.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "#Position\tSegment"))
	assert.Equal(t, "1\t1\tA.G1\tB.C12\tGC\tO6-N4[2.91]\t-\t-", lines[1])
	assert.Equal(t, "2\t1\tB.U11\tA.A2\tAU\t-\tYES\t-", lines[2])
}

func TestJSONWriter(t *testing.T) {
	s, pairs, res := testInput()
	records := Build(s, pairs, res)

	var buf bytes.Buffer
	jw := NewJSONWriter(&buf)
	require.NoError(t, jw.WriteHeader())
	for i := range records {
		require.NoError(t, jw.Write(&records[i]))
	}
	require.NoError(t, jw.Flush())

	var decoded []Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, records, decoded)
}

func TestJSONWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONWriter(&buf)
	require.NoError(t, jw.Flush())
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestSegmentFlags(t *testing.T) {
	assert.Equal(t, "-", segmentFlags(&Record{}))
	assert.Equal(t, "parallel,break,mixed", segmentFlags(&Record{Parallel: true, Break: true, Mixed: true}))
}
