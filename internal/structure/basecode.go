package structure

import "strings"

// One-letter base codes. Standard bases are uppercase; recognized modified
// forms are lowercase so downstream comparisons can distinguish them while
// still resolving ring chemistry. 'X' is unknown.
var baseCodes = map[string]byte{
	// Standard ribo/deoxy forms.
	"A": 'A', "ADE": 'A', "DA": 'A',
	"C": 'C', "CYT": 'C', "DC": 'C',
	"G": 'G', "GUA": 'G', "DG": 'G',
	"T": 'T', "THY": 'T', "DT": 'T',
	"U": 'U', "URA": 'U', "DU": 'U',
	// Inosine.
	"I": 'I', "INO": 'I', "DI": 'I',
	// Common modified forms.
	"1MA": 'a', "MA6": 'a', "2MA": 'a',
	"5MC": 'c', "OMC": 'c', "4OC": 'c', "M5M": 'c',
	"1MG": 'g', "2MG": 'g', "M2G": 'g', "7MG": 'g', "OMG": 'g', "YG": 'g',
	"5MU": 't', "4SU": 'u', "H2U": 'u', "PSU": 'P', "OMU": 'u', "UR3": 'u',
}

// OneLetterCode returns the one-letter base code for a residue name, or 'X'
// when the name is not a recognized nucleotide.
func OneLetterCode(name string) byte {
	if c, ok := baseCodes[strings.TrimSpace(strings.ToUpper(name))]; ok {
		return c
	}
	return 'X'
}

// IsPurine reports whether the base code denotes a purine (adenine, guanine,
// inosine, or a modified form of one).
func IsPurine(code byte) bool {
	switch code {
	case 'A', 'G', 'I', 'a', 'g', 'i':
		return true
	}
	return false
}

// IsPyrimidine reports whether the base code denotes a pyrimidine.
func IsPyrimidine(code byte) bool {
	switch code {
	case 'C', 'T', 'U', 'P', 'c', 't', 'u':
		return true
	}
	return false
}

// sixRingAtoms are the six-membered ring atoms shared by purines and
// pyrimidines.
var sixRingAtoms = []string{"N1", "C2", "N3", "C4", "C5", "C6"}

// IsNucleotide reports whether a residue looks like a nucleotide: it needs a
// glycosidic C1' and most of the six-membered base ring. The check is by
// atom presence, not residue name, so unnamed modified bases still qualify.
func IsNucleotide(r *Residue) bool {
	if _, ok := r.Atom("C1'"); !ok {
		return false
	}
	found := 0
	for _, name := range sixRingAtoms {
		if _, ok := r.Atom(name); ok {
			found++
		}
	}
	return found >= 5
}
