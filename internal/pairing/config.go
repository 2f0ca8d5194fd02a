// Package pairing identifies base pairs: it validates candidate residue
// pairs geometrically, resolves hydrogen-bond evidence, and selects the
// globally consistent set of mutually-best-matched pairs.
package pairing

// Config holds the numeric thresholds for pair validation and selection.
// Field names mirror the legacy parameter file; values are tunable but the
// defaults reproduce the reference tool's behavior.
type Config struct {
	// Origin separation window (Angstrom) between the two base frames.
	MinOriginDist float64 `mapstructure:"min_origin_dist"`
	MaxOriginDist float64 `mapstructure:"max_origin_dist"`

	// Vertical (out-of-plane) displacement window.
	MinVerticalDist float64 `mapstructure:"min_vertical_dist"`
	MaxVerticalDist float64 `mapstructure:"max_vertical_dist"`

	// Inter-base-plane angle window (degrees, folded to [0, 90]).
	MinPlaneAngle float64 `mapstructure:"min_plane_angle"`
	MaxPlaneAngle float64 `mapstructure:"max_plane_angle"`

	// Glycosidic nitrogen (N9/N1) separation window.
	MinGlycoDist float64 `mapstructure:"min_glyco_dist"`
	MaxGlycoDist float64 `mapstructure:"max_glyco_dist"`

	// Maximum projected ring-overlap area (Angstrom^2). Stacked bases
	// overlap; paired bases must not.
	MaxOverlap float64 `mapstructure:"max_overlap"`

	// Hydrogen-bond distance windows. HBUpper2 is the stricter secondary
	// window used during conflict resolution.
	HBLower  float64 `mapstructure:"hb_lower"`
	HBUpper  float64 `mapstructure:"hb_upper"`
	HBUpper2 float64 `mapstructure:"hb_upper2"`

	// Good-bond window used for classification bonuses and cleanup.
	HBGoodLower float64 `mapstructure:"hb_good_lower"`
	HBGoodUpper float64 `mapstructure:"hb_good_upper"`

	// Minimum number of base-to-base hydrogen bonds required, and whether a
	// single base or ribose-O2' bond is accepted instead.
	MinBaseHBonds int  `mapstructure:"min_base_hbonds"`
	RelaxedHBonds bool `mapstructure:"relaxed_hbonds"`

	// Include exocyclic substituents in the overlap polygons, as some
	// legacy outputs do.
	OverlapExocyclic bool `mapstructure:"overlap_exocyclic"`

	// Coarse origin-distance cutoff for candidate enumeration.
	CandidateCutoff float64 `mapstructure:"candidate_cutoff"`
}

// DefaultConfig returns the reference thresholds.
func DefaultConfig() *Config {
	return &Config{
		MinOriginDist:   0,
		MaxOriginDist:   15,
		MinVerticalDist: 0,
		MaxVerticalDist: 2.5,
		MinPlaneAngle:   0,
		MaxPlaneAngle:   65,
		MinGlycoDist:    4.5,
		MaxGlycoDist:    12,
		MaxOverlap:      0,
		HBLower:         2.0,
		HBUpper:         4.0,
		HBUpper2:        3.2,
		HBGoodLower:     2.5,
		HBGoodUpper:     3.5,
		MinBaseHBonds:   1,
		RelaxedHBonds:   true,
		CandidateCutoff: 15,
	}
}
