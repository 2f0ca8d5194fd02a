package frame

import (
	"fmt"
	"math"

	matrix "github.com/skelterjohn/go.matrix"
	"go.uber.org/zap"

	"github.com/strucbio/helixpair/internal/geom"
	"github.com/strucbio/helixpair/internal/structure"
)

// MinRingAtoms is the minimum number of matched ring atoms required for a
// least-squares fit.
const MinRingAtoms = 3

// WarnRMSD is the fit quality above which a frame is still attached but the
// residue is logged as distorted.
const WarnRMSD = 0.28

// MaxRMSD is the fit quality above which no frame is attached.
const MaxRMSD = 2.0

// Fit computes the reference frame for a single residue by superposing the
// standard base template onto the observed ring atoms (Kabsch procedure via
// SVD of the covariance matrix). It returns the frame and the fit RMSD.
func Fit(r *structure.Residue) (geom.Frame, float64, error) {
	code := structure.OneLetterCode(r.Name)
	tmpl := templateFor(code)
	if tmpl == nil {
		// Unknown base: try both ring layouts and keep the better fit.
		fp, rp, errP := fitTemplate(r, templateG)
		fy, ry, errY := fitTemplate(r, templateU)
		switch {
		case errP != nil && errY != nil:
			return geom.Frame{}, 0, fmt.Errorf("residue %s: no usable ring atoms", r.ID())
		case errP != nil:
			return fy, ry, nil
		case errY != nil:
			return fp, rp, nil
		case rp <= ry:
			return fp, rp, nil
		default:
			return fy, ry, nil
		}
	}
	f, rmsd, err := fitTemplate(r, tmpl)
	if err != nil {
		return geom.Frame{}, 0, err
	}
	return f, rmsd, nil
}

// fitTemplate runs the superposition against one template.
func fitTemplate(r *structure.Residue, tmpl []templateAtom) (geom.Frame, float64, error) {
	obs, ref := matchedAtoms(r, tmpl)
	if len(obs) < MinRingAtoms {
		return geom.Frame{}, 0, fmt.Errorf("residue %s: %d ring atoms matched, need %d",
			r.ID(), len(obs), MinRingAtoms)
	}

	rot, trans, err := superpose(ref, obs)
	if err != nil {
		return geom.Frame{}, 0, fmt.Errorf("residue %s: %w", r.ID(), err)
	}

	// RMSD of the template mapped onto the observed atoms.
	var sum float64
	for i := range ref {
		mapped := rot.MulVec(ref[i]).Add(trans)
		d := mapped.Sub(obs[i])
		sum += d.Dot(d)
	}
	rmsd := math.Sqrt(sum / float64(len(ref)))

	// The frame is the image of the template's coordinate system: axes are
	// the rotation's columns, the origin is the image of (0, 0, 0).
	return geom.FrameFromRotation(rot, trans), rmsd, nil
}

// superpose computes the rigid transform (rotation, translation) that best
// maps the x point set onto y in the least-squares sense, via SVD of the
// covariance matrix (Kabsch). An improper rotation is corrected by negating
// the smallest singular direction.
func superpose(x, y []geom.Vec3) (geom.Mat3, geom.Vec3, error) {
	n := len(x)
	cx := centroid(x)
	cy := centroid(y)

	elsX := make([]float64, 3*n)
	elsY := make([]float64, 3*n)
	for i := 0; i < n; i++ {
		dx := x[i].Sub(cx)
		dy := y[i].Sub(cy)
		elsX[i+0*n], elsX[i+1*n], elsX[i+2*n] = dx.X, dx.Y, dx.Z
		elsY[i+0*n], elsY[i+1*n], elsY[i+2*n] = dy.X, dy.Y, dy.Z
	}
	X := matrix.MakeDenseMatrix(elsX, 3, n)
	Y := matrix.MakeDenseMatrix(elsY, 3, n)

	// Covariance C = Y * X^T maps template directions onto observed ones.
	C, err := Y.TimesDense(X.Transpose())
	if err != nil {
		return geom.Mat3{}, geom.Vec3{}, fmt.Errorf("covariance: %w", err)
	}

	V, _, WT, err := C.SVD()
	if err != nil {
		return geom.Mat3{}, geom.Vec3{}, fmt.Errorf("svd: %w", err)
	}

	U, err := V.TimesDense(WT.Transpose())
	if err != nil {
		return geom.Mat3{}, geom.Vec3{}, fmt.Errorf("compose rotation: %w", err)
	}
	if C.Det() < 0 {
		adjust := matrix.MakeDenseMatrix([]float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, -1,
		}, 3, 3)
		Vadj, err := V.TimesDense(adjust)
		if err != nil {
			return geom.Mat3{}, geom.Vec3{}, fmt.Errorf("improper rotation fix: %w", err)
		}
		U, err = Vadj.TimesDense(WT.Transpose())
		if err != nil {
			return geom.Mat3{}, geom.Vec3{}, fmt.Errorf("compose rotation: %w", err)
		}
	}

	var rot geom.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot[i][j] = U.Get(i, j)
		}
	}

	trans := cy.Sub(rot.MulVec(cx))
	return rot, trans, nil
}

func centroid(pts []geom.Vec3) geom.Vec3 {
	var c geom.Vec3
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(pts)))
}

// AttachFrames fits and attaches a reference frame to every nucleotide
// residue of the structure. Residues that cannot be fit are left without a
// frame (and so are ineligible for pairing); failures are logged, not
// returned, since a partial structure is still analyzable.
func AttachFrames(s *structure.Structure, logger *zap.Logger) int {
	if logger == nil {
		logger = zap.NewNop()
	}
	attached := 0
	for i := 1; i <= s.NumResidues(); i++ {
		r := s.Residue(i)
		if !structure.IsNucleotide(r) {
			continue
		}
		f, rmsd, err := Fit(r)
		if err != nil {
			logger.Debug("frame fit failed",
				zap.String("residue", r.ID()),
				zap.Error(err))
			continue
		}
		if rmsd > MaxRMSD {
			logger.Warn("frame fit rejected",
				zap.String("residue", r.ID()),
				zap.Float64("rmsd", rmsd))
			continue
		}
		if rmsd > WarnRMSD {
			logger.Debug("distorted base ring",
				zap.String("residue", r.ID()),
				zap.Float64("rmsd", rmsd))
		}
		frame := f
		r.Frame = &frame
		attached++
	}
	return attached
}
