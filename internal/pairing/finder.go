package pairing

import (
	"math"

	"go.uber.org/zap"

	"github.com/strucbio/helixpair/internal/structure"
)

// AuditSink receives per-candidate validation detail: the optional
// diagnostic stream. It is not required for correctness of the pair list.
type AuditSink interface {
	Candidate(i, j int, res *ValidationResult)
}

// FindOptions configures a FindPairs run.
type FindOptions struct {
	// Workers for the candidate-cache build; <= 0 means NumCPU.
	Workers int
	Logger  *zap.Logger
	Audit   AuditSink
}

// FindPairs identifies the globally consistent set of base pairs in a
// structure via mutual-best matching. The result is deterministic and keyed
// by stable residue indices, independent of residue storage order effects:
// scanning is in ascending index order and score ties break to the lower
// partner index.
func FindPairs(s *structure.Structure, cfg *Config, opts *FindOptions) []BasePair {
	if opts == nil {
		opts = &FindOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	n := s.NumResidues()
	eligible := make([]bool, n+1)
	numEligible := 0
	for i := 1; i <= n; i++ {
		r := s.Residue(i)
		if structure.IsNucleotide(r) && r.Frame != nil {
			eligible[i] = true
			numEligible++
		}
	}
	logger.Debug("pair search starting",
		zap.Int("residues", n),
		zap.Int("eligible", numEligible))

	cache := BuildCache(s, eligible, cfg, opts.Workers, logger)

	if opts.Audit != nil {
		for _, k := range cache.Keys() {
			opts.Audit.Candidate(k[0], k[1], &cache.Get(k[0], k[1]).Result)
		}
	}

	// Fixpoint selection: a pass may free up better partners for residues
	// scanned earlier, so repeat until a full pass adds no matches.
	matched := make([]bool, n+1)
	var pairs []BasePair
	for {
		progressed := false
		for i := 1; i <= n; i++ {
			if !eligible[i] || matched[i] {
				continue
			}
			j := bestPartner(i, n, eligible, matched, cache)
			if j == 0 {
				continue
			}
			if bestPartner(j, n, eligible, matched, cache) != i {
				continue
			}
			matched[i] = true
			matched[j] = true
			cand := cache.Get(i, j)
			pairs = append(pairs, newBasePair(i, j,
				*s.Residue(i).Frame, *s.Residue(j).Frame,
				cand.Result.HBonds, cand.Result.PairType))
			progressed = true
		}
		if !progressed {
			break
		}
	}

	logger.Info("base pairs selected", zap.Int("pairs", len(pairs)))
	return pairs
}

// bestPartner returns the unmatched partner of i with the lowest adjusted
// score among valid candidates, or 0 when i has none. Ties break to the
// lower partner index; the ascending scan guarantees that because only a
// strictly lower score displaces the incumbent.
func bestPartner(i, n int, eligible, matched []bool, cache *Cache) int {
	best := 0
	bestScore := math.Inf(1)
	for j := 1; j <= n; j++ {
		if j == i || !eligible[j] || matched[j] {
			continue
		}
		cand := cache.Get(i, j)
		if cand == nil || !cand.Result.Valid {
			continue
		}
		if cand.Score < bestScore {
			best = j
			bestScore = cand.Score
		}
	}
	return best
}
