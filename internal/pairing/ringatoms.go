package pairing

import (
	"strings"

	"github.com/strucbio/helixpair/internal/geom"
	"github.com/strucbio/helixpair/internal/structure"
)

// Canonical ring atoms in polygon order. Purines contribute the fused
// nine-atom ring, pyrimidines the six-membered ring.
var (
	purineRing     = []string{"C4", "N3", "C2", "N1", "C6", "C5", "N7", "C8", "N9"}
	pyrimidineRing = []string{"C6", "C5", "C4", "N3", "C2", "N1"}
)

// bondedDistance is the maximum distance for an exocyclic substituent to
// count as bonded to a ring atom.
const bondedDistance = 2.0

// ringAtoms extracts the residue's ring-atom positions in polygon order.
// With exocyclic set, each ring atom additionally contributes its bonded
// non-hydrogen, non-sugar substituents (e.g. O6, N6), inserted after the
// ring atom they bond to.
func ringAtoms(r *structure.Residue, code byte, exocyclic bool) []geom.Vec3 {
	names := pyrimidineRing
	if structure.IsPurine(code) {
		names = purineRing
	}

	var pts []geom.Vec3
	for _, name := range names {
		pos, ok := r.Atom(name)
		if !ok {
			continue
		}
		pts = append(pts, pos)
		if !exocyclic {
			continue
		}
		for _, a := range r.Atoms {
			if isRingName(a.Name, names) || isHydrogen(a.Name) ||
				strings.Contains(a.Name, "'") || a.Name == "P" ||
				strings.HasPrefix(a.Name, "OP") {
				continue
			}
			if a.Pos.Dist(pos) <= bondedDistance {
				pts = append(pts, a.Pos)
			}
		}
	}
	return pts
}

func isRingName(name string, ring []string) bool {
	for _, n := range ring {
		if n == name {
			return true
		}
	}
	return false
}

func isHydrogen(name string) bool {
	if name == "" {
		return false
	}
	if name[0] == 'H' || name[0] == 'D' {
		return true
	}
	// Names like "1H2" or "2H5'" lead with a digit.
	return len(name) > 1 && name[0] >= '0' && name[0] <= '9' &&
		(name[1] == 'H' || name[1] == 'D')
}

// projectRing translates ring points relative to origin and projects them
// onto the plane perpendicular to normal, yielding 2-D polygon vertices.
// The in-plane basis is derived from ref (any vector not parallel to
// normal); overlap areas are invariant to the basis rotation.
func projectRing(pts []geom.Vec3, origin, normal, ref geom.Vec3) []point2 {
	e1 := ref.Sub(normal.Scale(ref.Dot(normal)))
	u1, ok := e1.Normalize()
	if !ok {
		// ref was parallel to the normal; pick an arbitrary perpendicular.
		u1, _ = normal.Cross(geom.Vec3{X: 1}).Normalize()
		if u1.Norm() < geom.Epsilon {
			u1, _ = normal.Cross(geom.Vec3{Y: 1}).Normalize()
		}
	}
	u2 := normal.Cross(u1)

	out := make([]point2, len(pts))
	for i, p := range pts {
		v := p.Sub(origin)
		out[i] = point2{x: v.Dot(u1), y: v.Dot(u2)}
	}
	return out
}
