// Package frame fits idealized base reference frames to residues by
// least-squares superposition of standard base templates onto the observed
// ring atoms.
package frame

import (
	"github.com/strucbio/helixpair/internal/geom"
	"github.com/strucbio/helixpair/internal/structure"
)

// templateAtom is one atom of a standard base geometry, expressed in the
// standard reference frame (base plane at z = 0).
type templateAtom struct {
	name string
	pos  geom.Vec3
}

// Standard base ring geometries in the standard reference frame
// (Olson et al. 2001 convention, as used by the legacy tool chain).
var (
	templateA = []templateAtom{
		{"N9", geom.Vec3{X: -1.291, Y: 4.498, Z: 0}},
		{"C8", geom.Vec3{X: 0.024, Y: 4.897, Z: 0}},
		{"N7", geom.Vec3{X: 0.877, Y: 3.902, Z: 0}},
		{"C5", geom.Vec3{X: 0.071, Y: 2.771, Z: 0}},
		{"C6", geom.Vec3{X: 0.369, Y: 1.398, Z: 0}},
		{"N1", geom.Vec3{X: -0.668, Y: 0.532, Z: 0}},
		{"C2", geom.Vec3{X: -1.912, Y: 1.023, Z: 0}},
		{"N3", geom.Vec3{X: -2.320, Y: 2.290, Z: 0}},
		{"C4", geom.Vec3{X: -1.267, Y: 3.124, Z: 0}},
	}
	templateG = []templateAtom{
		{"N9", geom.Vec3{X: -1.289, Y: 4.551, Z: 0}},
		{"C8", geom.Vec3{X: 0.023, Y: 4.962, Z: 0}},
		{"N7", geom.Vec3{X: 0.870, Y: 3.969, Z: 0}},
		{"C5", geom.Vec3{X: 0.071, Y: 2.833, Z: 0}},
		{"C6", geom.Vec3{X: 0.424, Y: 1.460, Z: 0}},
		{"N1", geom.Vec3{X: -0.700, Y: 0.641, Z: 0}},
		{"C2", geom.Vec3{X: -1.999, Y: 1.087, Z: 0}},
		{"N3", geom.Vec3{X: -2.342, Y: 2.364, Z: 0}},
		{"C4", geom.Vec3{X: -1.265, Y: 3.177, Z: 0}},
	}
	templateC = []templateAtom{
		{"N1", geom.Vec3{X: -1.285, Y: 4.542, Z: 0}},
		{"C2", geom.Vec3{X: -1.472, Y: 3.158, Z: 0}},
		{"N3", geom.Vec3{X: -0.391, Y: 2.344, Z: 0}},
		{"C4", geom.Vec3{X: 0.837, Y: 2.868, Z: 0}},
		{"C5", geom.Vec3{X: 1.056, Y: 4.275, Z: 0}},
		{"C6", geom.Vec3{X: -0.023, Y: 5.068, Z: 0}},
	}
	templateT = []templateAtom{
		{"N1", geom.Vec3{X: -1.284, Y: 4.500, Z: 0}},
		{"C2", geom.Vec3{X: -1.462, Y: 3.135, Z: 0}},
		{"N3", geom.Vec3{X: -0.298, Y: 2.407, Z: 0}},
		{"C4", geom.Vec3{X: 0.994, Y: 2.897, Z: 0}},
		{"C5", geom.Vec3{X: 1.106, Y: 4.338, Z: 0}},
		{"C6", geom.Vec3{X: -0.024, Y: 5.057, Z: 0}},
	}
	templateU = []templateAtom{
		{"N1", geom.Vec3{X: -1.284, Y: 4.500, Z: 0}},
		{"C2", geom.Vec3{X: -1.462, Y: 3.131, Z: 0}},
		{"N3", geom.Vec3{X: -0.302, Y: 2.397, Z: 0}},
		{"C4", geom.Vec3{X: 0.989, Y: 2.884, Z: 0}},
		{"C5", geom.Vec3{X: 1.089, Y: 4.311, Z: 0}},
		{"C6", geom.Vec3{X: -0.024, Y: 5.053, Z: 0}},
	}
)

// templateFor returns the standard geometry for a base code. Modified bases
// use their parent base's template; inosine uses guanine's ring. nil means
// no template is available.
func templateFor(code byte) []templateAtom {
	switch code {
	case 'A', 'a':
		return templateA
	case 'G', 'g', 'I', 'i':
		return templateG
	case 'C', 'c':
		return templateC
	case 'T', 't':
		return templateT
	case 'U', 'u', 'P':
		return templateU
	default:
		return nil
	}
}

// matchedAtoms pairs template atoms with their observed counterparts in r,
// in template order.
func matchedAtoms(r *structure.Residue, tmpl []templateAtom) (obs, ref []geom.Vec3) {
	for _, ta := range tmpl {
		if pos, ok := r.Atom(ta.name); ok {
			obs = append(obs, pos)
			ref = append(ref, ta.pos)
		}
	}
	return obs, ref
}
