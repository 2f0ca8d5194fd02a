package pairing

import (
	"strings"

	"github.com/strucbio/helixpair/internal/geom"
	"github.com/strucbio/helixpair/internal/structure"
)

// GlycoMissing is the sentinel glycosidic distance used when a residue has
// no locatable glycosidic nitrogen. It fails every plausible range check.
const GlycoMissing = 999.0

// Weights of the quality score: origin distance + 2x vertical displacement +
// plane angle / 20. Lower is better.
const (
	scoreVerticalWeight = 2.0
	scoreAngleDivisor   = 20.0
)

// ValidationResult holds the geometric descriptors, per-check outcomes, and
// resolved hydrogen bonds for one candidate residue pair. It is ephemeral:
// recomputed or cached per pair, never stored on the structure.
type ValidationResult struct {
	Valid bool

	OriginDist   float64
	VerticalDist float64
	PlaneAngle   float64
	GlycoDist    float64
	Overlap      float64

	// Dir holds the axis-alignment dot products between the two frames:
	// x1.x2, y1.y2, z1.z2.
	Dir geom.Vec3

	DistOK    bool
	VertOK    bool
	AngleOK   bool
	GlycoOK   bool
	OverlapOK bool

	Score    float64
	HBonds   []HydrogenBond
	PairType string
}

// Validate decides whether two residues can form a base pair. Both residues
// must carry a reference frame; if either lacks one the result is invalid
// with no further computation.
func Validate(a, b *structure.Residue, cfg *Config) ValidationResult {
	var res ValidationResult
	if a.Frame == nil || b.Frame == nil {
		return res
	}
	fa, fb := *a.Frame, *b.Frame

	res.Dir = geom.Vec3{
		X: fa.X.Dot(fb.X),
		Y: fa.Y.Dot(fb.Y),
		Z: fa.Z.Dot(fb.Z),
	}

	// Averaged z-axis: sum when the planes face the same way, difference
	// otherwise, falling back to the first frame's axis when degenerate.
	zsum := fa.Z.Add(fb.Z)
	if res.Dir.Z <= 0 {
		zsum = fa.Z.Sub(fb.Z)
	}
	zave, ok := zsum.Normalize()
	if !ok {
		zave = fa.Z
	}

	dorg := fb.Origin.Sub(fa.Origin)
	res.OriginDist = dorg.Norm()
	res.VerticalDist = abs(dorg.Dot(zave))
	res.PlaneAngle = foldAngle(geom.AngleDeg(fa.Z, fb.Z))

	codeA := structure.OneLetterCode(a.Name)
	codeB := structure.OneLetterCode(b.Name)
	res.GlycoDist = glycoDistance(a, codeA, b, codeB)

	res.Score = res.OriginDist +
		scoreVerticalWeight*res.VerticalDist +
		res.PlaneAngle/scoreAngleDivisor

	res.DistOK = res.OriginDist >= cfg.MinOriginDist && res.OriginDist <= cfg.MaxOriginDist
	res.VertOK = res.VerticalDist >= cfg.MinVerticalDist && res.VerticalDist <= cfg.MaxVerticalDist
	res.AngleOK = res.PlaneAngle >= cfg.MinPlaneAngle && res.PlaneAngle <= cfg.MaxPlaneAngle
	res.GlycoOK = res.GlycoDist >= cfg.MinGlycoDist && res.GlycoDist <= cfg.MaxGlycoDist

	origin := fa.Origin.Mid(fb.Origin)
	ringA := projectRing(ringAtoms(a, codeA, cfg.OverlapExocyclic), origin, zave, fa.X)
	ringB := projectRing(ringAtoms(b, codeB, cfg.OverlapExocyclic), origin, zave, fa.X)
	res.Overlap = polyOverlapArea(ringA, ringB)
	res.OverlapOK = res.Overlap <= cfg.MaxOverlap

	if !res.DistOK || !res.VertOK || !res.AngleOK || !res.GlycoOK || !res.OverlapOK {
		return res
	}

	base, o2 := countSimpleHBonds(a, b, cfg.HBLower, cfg.HBUpper)
	enough := base >= cfg.MinBaseHBonds
	if !enough && cfg.RelaxedHBonds {
		enough = base+o2 >= 1
	}
	if !enough {
		return res
	}

	res.HBonds = ResolveHBonds(a, b, cfg)
	res.Valid = true
	res.PairType = strings.ToUpper(string(codeA) + string(codeB))
	return res
}

// glycoDistance is the separation of the two glycosidic nitrogens (N9 for
// purines, N1 otherwise). Missing nitrogens yield the sentinel GlycoMissing.
func glycoDistance(a *structure.Residue, codeA byte, b *structure.Residue, codeB byte) float64 {
	na, oka := glycoNitrogen(a, codeA)
	nb, okb := glycoNitrogen(b, codeB)
	if !oka || !okb {
		return GlycoMissing
	}
	return na.Dist(nb)
}

// glycoNitrogen locates the glycosidic nitrogen. The base code, not atom
// presence, decides purine vs pyrimidine so that modified bases with
// unusual atom sets are not misclassified. When the canonical atom is
// absent, any nitrogen whose name carries the expected ring digit is
// accepted.
func glycoNitrogen(r *structure.Residue, code byte) (geom.Vec3, bool) {
	name, digit := "N1", byte('1')
	if structure.IsPurine(code) {
		name, digit = "N9", '9'
	}
	if pos, ok := r.Atom(name); ok {
		return pos, true
	}
	for _, a := range r.Atoms {
		if len(a.Name) > 0 && a.Name[0] == 'N' && strings.IndexByte(a.Name, digit) >= 0 {
			return a.Pos, true
		}
	}
	return geom.Vec3{}, false
}

// foldAngle maps an angle in [0, 180] into [0, 90].
func foldAngle(deg float64) float64 {
	if deg > 90 {
		return 180 - deg
	}
	return deg
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
