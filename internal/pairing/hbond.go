package pairing

import (
	"math"
	"strings"

	"github.com/strucbio/helixpair/internal/structure"
)

// Hydrogen-bond classification characters, kept from the legacy output
// format.
const (
	HBStandard    byte = '-' // donor/acceptor chemistry is compatible
	HBNonStandard byte = '*' // both atoms polar but same polarity
	HBUnknown     byte = '?' // unclassified
)

// MaxLinkage is the maximum linkage tag: a bond sharing both its donor and
// acceptor atom with resolved conflict bonds.
const MaxLinkage = 18

// Internal cleanup windows applied once a good standard bond is present.
const (
	hbDropBeyond     = 3.6
	hbNonStdLower    = 2.6
	hbNonStdUpper    = 3.2
	linkageAtomShare = 9
)

// HydrogenBond is one candidate or resolved hydrogen bond between two
// residues. Donor is the atom on the first residue and Acceptor the atom on
// the second; the names reflect the usual polarity but are assigned by
// position until classification. Dist is negated transiently while a bond is
// marked as a resolved conflict and is always restored to its absolute value
// before being exposed.
type HydrogenBond struct {
	Donor    string
	Acceptor string
	Dist     float64
	Type     byte
	Linkage  int
}

// isPolarAtom reports whether an atom name can participate in a hydrogen
// bond: nitrogen or oxygen, excluding the phosphate and sugar oxygens (the
// ribose O2' is the one sugar atom allowed).
func isPolarAtom(name string) bool {
	if name == "" || (name[0] != 'N' && name[0] != 'O') {
		return false
	}
	switch name {
	case "OP1", "OP2", "OP3", "O1P", "O2P", "O3P", "O5'", "O4'", "O3'":
		return false
	}
	return true
}

// isBaseAtom reports whether a polar atom belongs to the base (no sugar
// prime in the name).
func isBaseAtom(name string) bool {
	return isPolarAtom(name) && !strings.Contains(name, "'")
}

// enumerateHBonds lists every polar atom pair across the two residues whose
// distance falls within [lower, upper], in residue atom order.
func enumerateHBonds(a, b *structure.Residue, lower, upper float64) []HydrogenBond {
	var bonds []HydrogenBond
	for _, aa := range a.Atoms {
		if !isPolarAtom(aa.Name) {
			continue
		}
		for _, ba := range b.Atoms {
			if !isPolarAtom(ba.Name) {
				continue
			}
			d := aa.Pos.Dist(ba.Pos)
			if d >= lower && d <= upper {
				bonds = append(bonds, HydrogenBond{
					Donor:    aa.Name,
					Acceptor: ba.Name,
					Dist:     d,
					Type:     HBUnknown,
				})
			}
		}
	}
	return bonds
}

// countSimpleHBonds counts direct hydrogen-bond evidence without conflict
// resolution: base-to-base bonds and bonds involving the ribose O2'.
func countSimpleHBonds(a, b *structure.Residue, lower, upper float64) (base, o2 int) {
	for _, bond := range enumerateHBonds(a, b, lower, upper) {
		if isBaseAtom(bond.Donor) && isBaseAtom(bond.Acceptor) {
			base++
		} else if bond.Donor == "O2'" || bond.Acceptor == "O2'" {
			o2++
		}
	}
	return base, o2
}

// resolveConflicts marks mutually-best bonds as resolved conflicts by
// negating their distance. Iteratively, a bond that is the shortest among
// the unvisited bonds sharing its donor atom and also the shortest among
// those sharing its acceptor atom is marked; every bond sharing either of
// its atoms then becomes visited. Each pass marks at least the globally
// shortest unvisited bond, so the loop terminates for any finite list.
func resolveConflicts(bonds []HydrogenBond) {
	n := len(bonds)
	visited := make([]bool, n)

	remaining := n
	for remaining > 0 {
		marked := false
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			di := bestSharing(bonds, visited, i, true)
			ai := bestSharing(bonds, visited, i, false)
			if di != ai {
				continue
			}
			bonds[di].Dist = -math.Abs(bonds[di].Dist)
			for k := 0; k < n; k++ {
				if visited[k] {
					continue
				}
				if bonds[k].Donor == bonds[di].Donor || bonds[k].Acceptor == bonds[di].Acceptor {
					visited[k] = true
					remaining--
				}
			}
			marked = true
		}
		if !marked {
			break
		}
	}
}

// bestSharing finds the shortest unvisited bond sharing bond i's donor
// (byDonor) or acceptor atom. Ties break to the lower index.
func bestSharing(bonds []HydrogenBond, visited []bool, i int, byDonor bool) int {
	best := -1
	for k := range bonds {
		if visited[k] {
			continue
		}
		if byDonor {
			if bonds[k].Donor != bonds[i].Donor {
				continue
			}
		} else {
			if bonds[k].Acceptor != bonds[i].Acceptor {
				continue
			}
		}
		if best < 0 || math.Abs(bonds[k].Dist) < math.Abs(bonds[best].Dist) {
			best = k
		}
	}
	return best
}

// tagLinkage assigns each still-positive bond a linkage tag: 9 when it
// shares its donor atom with a resolved conflict bond, plus 9 when it shares
// its acceptor, summing to at most 18. A tagged bond that is not at the
// maximum and whose distance falls in the stricter [lower, upper2] window is
// itself converted to a conflict.
func tagLinkage(bonds []HydrogenBond, lower, upper2 float64) {
	n := len(bonds)
	donorTag := make([]int, n)
	accTag := make([]int, n)
	for i := range bonds {
		if bonds[i].Dist >= 0 {
			continue
		}
		for k := range bonds {
			if k == i || bonds[k].Dist < 0 {
				continue
			}
			if bonds[k].Donor == bonds[i].Donor {
				donorTag[k] = linkageAtomShare
			}
			if bonds[k].Acceptor == bonds[i].Acceptor {
				accTag[k] = linkageAtomShare
			}
		}
	}
	for i := range bonds {
		bonds[i].Linkage = donorTag[i] + accTag[i]
		if bonds[i].Dist >= 0 && bonds[i].Linkage != MaxLinkage &&
			bonds[i].Dist >= lower && bonds[i].Dist <= upper2 {
			bonds[i].Dist = -bonds[i].Dist
		}
	}
}

// hbPolarity of an atom on a given base: +1 donor, -1 acceptor, 2 either,
// 0 unknown.
func hbPolarity(code byte, atom string) int {
	if atom == "O2'" {
		return 2
	}
	switch code {
	case 'A', 'a':
		switch atom {
		case "N6":
			return 1
		case "N1", "N3", "N7":
			return -1
		}
	case 'C', 'c':
		switch atom {
		case "N4":
			return 1
		case "O2", "N3":
			return -1
		}
	case 'G', 'g':
		switch atom {
		case "N1", "N2":
			return 1
		case "O6", "N7", "N3":
			return -1
		}
	case 'T', 't', 'U', 'u', 'P':
		switch atom {
		case "N3":
			return 1
		case "O2", "O4":
			return -1
		}
	case 'I', 'i':
		switch atom {
		case "N1":
			return 1
		case "O6", "N7", "N3":
			return -1
		}
	}
	return 0
}

// classify assigns a type to every conflict-marked bond using the
// donor/acceptor compatibility of the two bases. Unmarked bonds stay
// unclassified.
func classify(bonds []HydrogenBond, codeA, codeB byte) {
	for i := range bonds {
		if bonds[i].Dist >= 0 {
			bonds[i].Type = HBUnknown
			continue
		}
		pa := hbPolarity(codeA, bonds[i].Donor)
		pb := hbPolarity(codeB, bonds[i].Acceptor)
		switch {
		case pa == 0 || pb == 0:
			bonds[i].Type = HBUnknown
		case pa == 2 || pb == 2 || pa != pb:
			bonds[i].Type = HBStandard
		default:
			bonds[i].Type = HBNonStandard
		}
	}
}

// cleanup drops marginal bonds once at least one standard bond sits in the
// good window: anything beyond hbDropBeyond goes, and non-standard bonds
// outside [hbNonStdLower, hbNonStdUpper] go unless they carry the maximum
// linkage tag. Distances are restored to absolute values here.
func cleanup(bonds []HydrogenBond, goodLower, goodUpper float64) []HydrogenBond {
	hasGood := false
	for i := range bonds {
		d := math.Abs(bonds[i].Dist)
		if bonds[i].Type == HBStandard && d >= goodLower && d <= goodUpper {
			hasGood = true
			break
		}
	}

	out := bonds[:0]
	for i := range bonds {
		d := math.Abs(bonds[i].Dist)
		if hasGood {
			if d > hbDropBeyond {
				continue
			}
			if bonds[i].Type == HBNonStandard &&
				(d < hbNonStdLower || d > hbNonStdUpper) &&
				bonds[i].Linkage != MaxLinkage {
				continue
			}
		}
		bonds[i].Dist = d
		out = append(out, bonds[i])
	}
	return out
}

// ResolveHBonds produces the fully resolved hydrogen-bond list between two
// residues: enumeration, conflict resolution, linkage tagging,
// classification, and cleanup. The result is what a BasePair carries.
func ResolveHBonds(a, b *structure.Residue, cfg *Config) []HydrogenBond {
	bonds := enumerateHBonds(a, b, cfg.HBLower, cfg.HBUpper)
	if len(bonds) == 0 {
		return nil
	}
	resolveConflicts(bonds)
	tagLinkage(bonds, cfg.HBLower, cfg.HBUpper2)
	classify(bonds, structure.OneLetterCode(a.Name), structure.OneLetterCode(b.Name))
	return cleanup(bonds, cfg.HBGoodLower, cfg.HBGoodUpper)
}
