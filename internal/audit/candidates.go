package audit

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/strucbio/helixpair/internal/pairing"
)

// CandidateRow is one validated residue pair as stored per run.
type CandidateRow struct {
	RunID        string
	I, J         int
	Valid        bool
	OriginDist   float64
	VerticalDist float64
	PlaneAngle   float64
	GlycoDist    float64
	Overlap      float64
	Score        float64
	PairType     string
	HBonds       int
}

// WriteCandidates batch-inserts candidate rows using the Appender API.
func (s *Store) WriteCandidates(rows []CandidateRow) error {
	if len(rows) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "candidates")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range rows {
		if err := appender.AppendRow(
			r.RunID, int32(r.I), int32(r.J), r.Valid,
			r.OriginDist, r.VerticalDist, r.PlaneAngle, r.GlycoDist, r.Overlap,
			r.Score, r.PairType, int32(r.HBonds),
		); err != nil {
			return fmt.Errorf("append candidate: %w", err)
		}
	}

	return appender.Flush()
}

// CandidatesForRun returns a run's candidate rows in (i, j) order.
func (s *Store) CandidatesForRun(runID string) ([]CandidateRow, error) {
	rows, err := s.db.Query(
		`SELECT run_id, i, j, valid, origin_dist, vertical_dist, plane_angle,
		        glyco_dist, overlap, score, pair_type, hbonds
		 FROM candidates WHERE run_id = ? ORDER BY i, j`, runID)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	var out []CandidateRow
	for rows.Next() {
		var r CandidateRow
		if err := rows.Scan(
			&r.RunID, &r.I, &r.J, &r.Valid, &r.OriginDist, &r.VerticalDist,
			&r.PlaneAngle, &r.GlycoDist, &r.Overlap, &r.Score, &r.PairType, &r.HBonds,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Recorder buffers the candidate stream of one run and writes it in a single
// batch on Flush. It satisfies the pair finder's audit sink.
type Recorder struct {
	store *Store
	runID string
	rows  []CandidateRow
}

// NewRecorder creates a recorder for the given run.
func (s *Store) NewRecorder(runID string) *Recorder {
	return &Recorder{store: s, runID: runID}
}

// Candidate buffers one validation result.
func (r *Recorder) Candidate(i, j int, res *pairing.ValidationResult) {
	r.rows = append(r.rows, CandidateRow{
		RunID:        r.runID,
		I:            i,
		J:            j,
		Valid:        res.Valid,
		OriginDist:   res.OriginDist,
		VerticalDist: res.VerticalDist,
		PlaneAngle:   res.PlaneAngle,
		GlycoDist:    res.GlycoDist,
		Overlap:      res.Overlap,
		Score:        res.Score,
		PairType:     res.PairType,
		HBonds:       len(res.HBonds),
	})
}

// Flush writes the buffered rows.
func (r *Recorder) Flush() error {
	return r.store.WriteCandidates(r.rows)
}
