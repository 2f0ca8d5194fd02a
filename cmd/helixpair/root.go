package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "helixpair",
		Short:   "Base-pair identification and 5'->3' helix organization for nucleic-acid structures",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Long: `helixpair reads a PDB structure, fits a reference frame to every
nucleotide base, finds the mutually optimal set of base pairs, and orders
them into helices with a consistent 5'->3' reading direction.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.helixpair.yaml when present; a missing file is fine.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	viper.SetConfigFile(filepath.Join(home, ".helixpair.yaml"))
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok || os.IsNotExist(err) {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// buildLogger returns a production logger on stderr, or a development logger
// with debug level when --verbose is set.
func buildLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
