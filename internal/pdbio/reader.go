// Package pdbio provides minimal PDB-format ingestion: enough ATOM/HETATM
// handling to feed the pairing core. It is not a general PDB library; only
// the first model is read and alternate locations other than 'A' are
// dropped.
package pdbio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/strucbio/helixpair/internal/geom"
	"github.com/strucbio/helixpair/internal/structure"
)

// Reader reads a structure from a PDB file.
type Reader struct {
	r      io.ReadCloser
	path   string
	closed bool
}

// NewReader opens a PDB file for reading. Use "-" for stdin.
func NewReader(path string) (*Reader, error) {
	if path == "-" {
		return &Reader{r: os.Stdin, path: "<stdin>"}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdb: %w", err)
	}
	return &Reader{r: f, path: path}, nil
}

// Close closes the underlying file.
func (rd *Reader) Close() error {
	if rd.closed || rd.r == os.Stdin {
		return nil
	}
	rd.closed = true
	return rd.r.Close()
}

// Read parses the file into a Structure. Residues appear in file order; a
// residue boundary is any change of chain, sequence number, insertion code,
// or residue name.
func (rd *Reader) Read() (*structure.Structure, error) {
	return Parse(rd.r)
}

// Parse reads PDB records from r. Exposed separately so tests and callers
// holding an io.Reader (e.g. embedded fixtures) can skip the file layer.
func Parse(r io.Reader) (*structure.Structure, error) {
	s := &structure.Structure{}
	var cur *structure.Residue

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break // first model only
		}
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		if len(line) < 54 {
			return nil, fmt.Errorf("line %d: truncated atom record", lineNo)
		}

		altLoc := line[16]
		if altLoc != ' ' && altLoc != 'A' {
			continue
		}

		name := structure.NormalizeAtomName(line[12:16])
		resName := strings.TrimSpace(line[17:20])
		chain := strings.TrimSpace(line[20:22])
		icode := strings.TrimSpace(line[26:27])

		seq, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad residue number: %w", lineNo, err)
		}
		x, err := parseCoord(line[30:38])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad x coordinate: %w", lineNo, err)
		}
		y, err := parseCoord(line[38:46])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad y coordinate: %w", lineNo, err)
		}
		z, err := parseCoord(line[46:54])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad z coordinate: %w", lineNo, err)
		}

		if cur == nil || cur.Chain != chain || cur.Seq != seq ||
			cur.ICode != icode || cur.Name != resName {
			cur = &structure.Residue{
				Chain: chain,
				Seq:   seq,
				ICode: icode,
				Name:  resName,
			}
			s.Residues = append(s.Residues, cur)
		}
		cur.Atoms = append(cur.Atoms, structure.Atom{
			Name: name,
			Pos:  geom.Vec3{X: x, Y: y, Z: z},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read pdb: %w", err)
	}

	return s, nil
}

func parseCoord(field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}
