package pairing

import (
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/strucbio/helixpair/internal/structure"
)

// pairKey is an ordered residue index pair, i < j.
type pairKey struct{ i, j int }

// Candidate is a cached validation outcome plus the derived selection score
// and base-pair type id.
type Candidate struct {
	Result ValidationResult
	Score  float64
	TypeID int
}

// Cache holds the validation result for every geometrically plausible
// residue pair. It is built once (in parallel) and read-only afterward, so
// concurrent best-partner lookups all see the same authoritative data.
type Cache struct {
	candidates map[pairKey]*Candidate
}

// Get returns the cached candidate for a residue pair in either order, or
// nil when the pair was never plausible.
func (c *Cache) Get(i, j int) *Candidate {
	if i > j {
		i, j = j, i
	}
	return c.candidates[pairKey{i, j}]
}

// Len returns the number of cached candidates.
func (c *Cache) Len() int {
	return len(c.candidates)
}

// Keys returns all cached pair keys in ascending (i, j) order.
func (c *Cache) Keys() [][2]int {
	keys := make([][2]int, 0, len(c.candidates))
	for k := range c.candidates {
		keys = append(keys, [2]int{k.i, k.j})
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}
		return keys[a][1] < keys[b][1]
	})
	return keys
}

type cacheResult struct {
	key  pairKey
	cand *Candidate
}

// BuildCache validates every unordered pair of eligible residues whose frame
// origins lie within the coarse candidate cutoff. Validation is a pure
// function of two residues, so the sweep runs on a worker pool; the final
// map content does not depend on completion order. workers <= 0 means
// runtime.NumCPU().
func BuildCache(s *structure.Structure, eligible []bool, cfg *Config, workers int, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n := s.NumResidues()
	items := make(chan pairKey, 2*workers)
	results := make(chan cacheResult, 2*workers)

	go func() {
		defer close(items)
		for i := 1; i <= n; i++ {
			if !eligible[i] {
				continue
			}
			for j := i + 1; j <= n; j++ {
				if !eligible[j] {
					continue
				}
				d := s.Residue(i).Frame.Origin.Dist(s.Residue(j).Frame.Origin)
				if d > cfg.CandidateCutoff {
					continue
				}
				items <- pairKey{i, j}
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for key := range items {
				res := Validate(s.Residue(key.i), s.Residue(key.j), cfg)
				typeID := BPTypeID(&res, *s.Residue(key.i).Frame, *s.Residue(key.j).Frame)
				results <- cacheResult{
					key: key,
					cand: &Candidate{
						Result: res,
						Score:  adjustedScore(&res, cfg, typeID),
						TypeID: typeID,
					},
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	cache := &Cache{candidates: make(map[pairKey]*Candidate)}
	valid := 0
	for r := range results {
		cache.candidates[r.key] = r.cand
		if r.cand.Result.Valid {
			valid++
		}
	}

	logger.Debug("candidate cache built",
		zap.Int("evaluated", len(cache.candidates)),
		zap.Int("valid", valid))
	return cache
}

// adjustedScore converts a raw quality score into the selection score: a
// bonus of -3.0 for two or more good standard hydrogen bonds (else minus the
// good-bond count), and -2.0 for a Watson-Crick-like pair.
func adjustedScore(res *ValidationResult, cfg *Config, typeID int) float64 {
	score := res.Score
	good := 0
	for _, hb := range res.HBonds {
		if hb.Type == HBStandard && hb.Dist >= cfg.HBGoodLower && hb.Dist <= cfg.HBGoodUpper {
			good++
		}
	}
	if good >= 2 {
		score -= 3.0
	} else {
		score -= float64(good)
	}
	if typeID == BPTypeWatsonCrick {
		score -= 2.0
	}
	return score
}
