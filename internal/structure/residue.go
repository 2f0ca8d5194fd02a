// Package structure provides the residue/atom data model shared by the
// pairing and helix code. Residues are read-only during analysis, except for
// reference-frame attachment which happens once before pairing runs.
package structure

import (
	"fmt"
	"strings"

	"github.com/strucbio/helixpair/internal/geom"
)

// Atom is a named atom with a 3-D position. Names are stored trimmed and
// with PDB v2 primes normalized (O3* -> O3').
type Atom struct {
	Name string
	Pos  geom.Vec3
}

// Residue is one residue of a structure: identity, atoms in file order, and
// an optional reference frame attached by the frame-fitting step.
type Residue struct {
	Chain string
	Seq   int
	ICode string
	Name  string
	Atoms []Atom

	Frame *geom.Frame
}

// Atom returns the position of the named atom, if present.
func (r *Residue) Atom(name string) (geom.Vec3, bool) {
	for i := range r.Atoms {
		if r.Atoms[i].Name == name {
			return r.Atoms[i].Pos, true
		}
	}
	return geom.Vec3{}, false
}

// ID returns a short residue identifier like "A.G14".
func (r *Residue) ID() string {
	code := strings.TrimSpace(r.ICode)
	return fmt.Sprintf("%s.%s%d%s", r.Chain, r.Name, r.Seq, code)
}

// Structure is an ordered collection of residues. Residue indices are
// 1-based and stable for the life of the structure; index 0 is never used.
type Structure struct {
	Residues []*Residue
}

// NumResidues returns the residue count.
func (s *Structure) NumResidues() int {
	return len(s.Residues)
}

// Residue returns the residue at 1-based index i, or nil if out of range.
func (s *Structure) Residue(i int) *Residue {
	if i < 1 || i > len(s.Residues) {
		return nil
	}
	return s.Residues[i-1]
}

// NormalizeAtomName trims an atom name and converts v2-style star primes.
func NormalizeAtomName(name string) string {
	name = strings.TrimSpace(name)
	return strings.ReplaceAll(name, "*", "'")
}
