package pairing

import (
	"math"

	"github.com/strucbio/helixpair/internal/geom"
)

// Base-pair type ids.
const (
	BPTypeUndetermined = -1
	BPTypeInvalid      = 0
	BPTypeWobble       = 1
	BPTypeWatsonCrick  = 2
)

// Classification thresholds on the pseudo step parameters.
const (
	bpMaxStretch  = 2.0
	bpMaxOpening  = 60.0
	bpWobbleLower = 1.8
	bpWobbleUpper = 2.8
)

// watsonCrickPairs is the canonical set of Watson-Crick two-letter pair
// strings; "XX" is the wildcard for unknown bases.
var watsonCrickPairs = map[string]bool{
	"AT": true, "AU": true, "TA": true, "UA": true,
	"GC": true, "IC": true, "CG": true, "CI": true,
	"XX": true,
}

// BPTypeID classifies a validated pair from its frames: -1 undetermined,
// 0 invalid (or geometry not pair-like), 1 wobble-like, 2 Watson-Crick-like.
//
// The shear/stretch/opening values are read from the shift, slide, and twist
// slots of the step computation. That slot assignment reproduces a
// long-standing mislabeling in the reference tool; downstream comparisons
// depend on it, so it must not be "corrected".
func BPTypeID(res *ValidationResult, fa, fb geom.Frame) int {
	if !res.Valid {
		return BPTypeInvalid
	}
	if !(res.Dir.X > 0 && res.Dir.Y < 0 && res.Dir.Z < 0) {
		return BPTypeInvalid
	}

	f2 := fb
	if res.Dir.Z <= 0 {
		f2 = fb.FlipYZ()
	}
	p := geom.Step(fa, f2)
	shear, stretch, opening := p.Shift, p.Slide, p.Twist // historical slots

	if math.Abs(stretch) > bpMaxStretch || math.Abs(opening) > bpMaxOpening {
		return BPTypeUndetermined
	}

	id := BPTypeInvalid
	as := math.Abs(shear)
	if as >= bpWobbleLower && as <= bpWobbleUpper {
		id = BPTypeWobble
	}
	if as <= bpWobbleLower && watsonCrickPairs[res.PairType] {
		id = BPTypeWatsonCrick
	}
	return id
}
