package helix

// Config carries the thresholds for helix assembly and strand orientation.
// Verbose enables per-stage decision logging; it replaces what used to be a
// hidden environment toggle and is threaded explicitly through Organize.
type Config struct {
	// NeighborCutoff bounds the pair-midpoint distance for any neighbor
	// relation at all.
	NeighborCutoff float64 `mapstructure:"neighbor_cutoff"`

	// BreakCutoff is the stricter midpoint distance for stacked continuity;
	// beyond it a step is a helix break.
	BreakCutoff float64 `mapstructure:"break_cutoff"`

	// EndStackAngle is the base-normal angle (degrees) above which two
	// stacked pairs read as inverted relative to each other.
	EndStackAngle float64 `mapstructure:"end_stack_angle"`

	// O3PCutoff is the O3'..P distance treated as a covalent backbone bond.
	O3PCutoff float64 `mapstructure:"o3p_cutoff"`

	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the standard helix thresholds.
func DefaultConfig() *Config {
	return &Config{
		NeighborCutoff: 15.0,
		BreakCutoff:    8.0,
		EndStackAngle:  125.0,
		O3PCutoff:      2.5,
	}
}
