// Package report renders the analysis outcome: base pairs in 5'->3' reading
// order with their helix membership, in tab-delimited or JSON form.
package report

import (
	"fmt"
	"strings"

	"github.com/strucbio/helixpair/internal/helix"
	"github.com/strucbio/helixpair/internal/pairing"
	"github.com/strucbio/helixpair/internal/structure"
)

// Record is one base pair in its final reading position.
type Record struct {
	Position int    `json:"position"`
	Segment  int    `json:"segment"`
	Strand1  string `json:"strand1"`
	Strand2  string `json:"strand2"`
	Type     string `json:"type"`
	HBonds   string `json:"hbonds,omitempty"`
	Swapped  bool   `json:"swapped,omitempty"`
	Parallel bool   `json:"parallel,omitempty"`
	Break    bool   `json:"break,omitempty"`
	Mixed    bool   `json:"mixed,omitempty"`
}

// Build flattens the organizer result into reading-order records. Strand
// labels honor each pair's swap flag, so strand 1 always reads 5'->3' down
// the record list within a segment.
func Build(s *structure.Structure, pairs []pairing.BasePair, res *helix.Result) []Record {
	records := make([]Record, 0, len(res.Order))
	for segIdx, seg := range res.Segments {
		for pos := seg.Start; pos < seg.End; pos++ {
			k := res.Order[pos]
			bp := &pairs[k]

			s1, s2 := bp.Strand1(), bp.Strand2()
			if res.Swapped[k] {
				s1, s2 = s2, s1
			}
			records = append(records, Record{
				Position: pos + 1,
				Segment:  segIdx + 1,
				Strand1:  residueLabel(s, s1),
				Strand2:  residueLabel(s, s2),
				Type:     bp.Type,
				HBonds:   hbondSummary(bp.HBonds),
				Swapped:  res.Swapped[k],
				Parallel: seg.Parallel,
				Break:    seg.HasBreak,
				Mixed:    seg.MixedDir,
			})
		}
	}
	return records
}

func residueLabel(s *structure.Structure, idx int) string {
	if r := s.Residue(idx); r != nil {
		return r.ID()
	}
	return fmt.Sprintf("#%d", idx)
}

// hbondSummary renders bonds like "O6-N4[2.91],N2*O2[3.05]": donor, the
// classification character, acceptor, distance.
func hbondSummary(bonds []pairing.HydrogenBond) string {
	if len(bonds) == 0 {
		return ""
	}
	parts := make([]string, len(bonds))
	for i, b := range bonds {
		parts[i] = fmt.Sprintf("%s%c%s[%.2f]", b.Donor, b.Type, b.Acceptor, b.Dist)
	}
	return strings.Join(parts, ",")
}
