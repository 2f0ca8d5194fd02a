package structure

import "github.com/strucbio/helixpair/internal/geom"

// BackboneData maps each residue (by its stable 1-based index) to its O3'
// and P positions, when present. Built once per structure and read-only
// afterward.
type BackboneData struct {
	o3 []*geom.Vec3
	p  []*geom.Vec3
}

// BuildBackbone extracts backbone atom positions for every residue. PA (the
// alpha phosphorus of di/tri-phosphate nucleotides) substitutes for a
// missing P.
func BuildBackbone(s *Structure) *BackboneData {
	n := s.NumResidues()
	b := &BackboneData{
		o3: make([]*geom.Vec3, n+1),
		p:  make([]*geom.Vec3, n+1),
	}
	for i := 1; i <= n; i++ {
		r := s.Residue(i)
		if pos, ok := r.Atom("O3'"); ok {
			v := pos
			b.o3[i] = &v
		}
		if pos, ok := r.Atom("P"); ok {
			v := pos
			b.p[i] = &v
		} else if pos, ok := r.Atom("PA"); ok {
			v := pos
			b.p[i] = &v
		}
	}
	return b
}

// O3 returns residue i's O3' position, or nil.
func (b *BackboneData) O3(i int) *geom.Vec3 {
	if i < 1 || i >= len(b.o3) {
		return nil
	}
	return b.o3[i]
}

// P returns residue i's P (or PA) position, or nil.
func (b *BackboneData) P(i int) *geom.Vec3 {
	if i < 1 || i >= len(b.p) {
		return nil
	}
	return b.p[i]
}

// Linked reports whether residue i's O3' bonds to residue j's P within the
// given distance cutoff, i.e. whether i directly precedes j on a strand.
func (b *BackboneData) Linked(i, j int, cutoff float64) bool {
	o3 := b.O3(i)
	p := b.P(j)
	if o3 == nil || p == nil {
		return false
	}
	return o3.Dist(*p) <= cutoff
}
