package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/strucbio/helixpair/internal/audit"
	"github.com/strucbio/helixpair/internal/frame"
	"github.com/strucbio/helixpair/internal/helix"
	"github.com/strucbio/helixpair/internal/pairing"
	"github.com/strucbio/helixpair/internal/pdbio"
	"github.com/strucbio/helixpair/internal/report"
	"github.com/strucbio/helixpair/internal/structure"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		format     string
		outputFile string
		auditPath  string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "analyze <file.pdb>",
		Short: "Find base pairs and organize them into helices",
		Long: `Read a PDB structure (use '-' for stdin), identify base pairs, and
report them in 5'->3' reading order with helix segment membership.`,
		Example: `  helixpair analyze 1ehz.pdb
  helixpair analyze --format json -o pairs.json 355d.pdb
  helixpair analyze --audit runs.duckdb 1ehz.pdb
  cat 1ehz.pdb | helixpair analyze -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], format, outputFile, auditPath, workers)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "tab", "Output format: tab, json")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&auditPath, "audit", "", "Record per-candidate diagnostics to a DuckDB file")
	cmd.Flags().IntVar(&workers, "workers", 0, "Validation workers (0 = all CPUs)")

	return cmd
}

func runAnalyze(inputPath, format, outputFile, auditPath string, workers int) error {
	logger, err := buildLogger()
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync()

	rd, err := pdbio.NewReader(inputPath)
	if err != nil {
		return fmt.Errorf("open structure: %w", err)
	}
	defer rd.Close()

	s, err := rd.Read()
	if err != nil {
		return fmt.Errorf("read structure: %w", err)
	}
	logger.Info("structure loaded",
		zap.String("path", inputPath),
		zap.Int("residues", s.NumResidues()))

	framed := frame.AttachFrames(s, logger)
	if framed == 0 {
		return fmt.Errorf("no nucleotide base could be assigned a reference frame")
	}
	bb := structure.BuildBackbone(s)

	pcfg, hcfg, err := loadConfigs()
	if err != nil {
		return err
	}
	hcfg.Verbose = verbose

	var store *audit.Store
	var recorder *audit.Recorder
	if auditPath != "" {
		store, err = audit.Open(auditPath)
		if err != nil {
			return fmt.Errorf("open audit store: %w", err)
		}
		defer store.Close()

		runID, err := store.RecordRun(inputPath, s.NumResidues())
		if err != nil {
			return err
		}
		recorder = store.NewRecorder(runID)
		logger.Info("audit run registered", zap.String("run_id", runID))
	}

	opts := &pairing.FindOptions{Workers: workers, Logger: logger}
	if recorder != nil {
		opts.Audit = recorder
	}
	pairs := pairing.FindPairs(s, pcfg, opts)

	res, err := helix.Organize(pairs, bb, hcfg, logger)
	if err != nil {
		return fmt.Errorf("organize helices: %w", err)
	}

	if recorder != nil {
		if err := recorder.Flush(); err != nil {
			return fmt.Errorf("write audit data: %w", err)
		}
	}

	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var writer report.Writer
	switch format {
	case "tab":
		writer = report.NewTabWriter(out)
	case "json":
		writer = report.NewJSONWriter(out)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	records := report.Build(s, pairs, res)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		if err := writer.Write(&records[i]); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return writer.Flush()
}

// loadConfigs starts from the built-in thresholds and applies any overrides
// from the pairing and helix sections of the config file.
func loadConfigs() (*pairing.Config, *helix.Config, error) {
	pcfg := pairing.DefaultConfig()
	if sub := viper.Sub("pairing"); sub != nil {
		if err := sub.Unmarshal(pcfg); err != nil {
			return nil, nil, fmt.Errorf("pairing config: %w", err)
		}
	}
	hcfg := helix.DefaultConfig()
	if sub := viper.Sub("helix"); sub != nil {
		if err := sub.Unmarshal(hcfg); err != nil {
			return nil, nil, fmt.Errorf("helix config: %w", err)
		}
	}
	return pcfg, hcfg, nil
}
