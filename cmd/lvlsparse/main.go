// SPDX-License-Identifier: MIT
// lvlsparse — command-line front end for the csr package.
//
// Subcommands:
//   - info:  load a matrix and print shape, nnz and a per-row dump.
//   - round: round every stored entry half-to-even and write the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlsparse/csr"
)

var (
	// Global flags.
	verbose bool

	// round flags.
	ndigits   int
	dropZeros bool
	workers   int
	output    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lvlsparse",
	Short: "Sparse-matrix toolbox (CSR storage, elementwise transforms)",
	Long: `lvlsparse stores matrices in Compressed Sparse Row form and applies
elementwise transforms over the stored entries only.

Matrices travel as YAML coordinate documents (rows, cols, entries);
duplicate coordinates resolve last-write-wins during assembly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var infoCmd = &cobra.Command{
	Use:   "info [matrix.yaml]",
	Short: "Print shape, nnz and stored entries of a matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrix(args[0])
		if err != nil {
			return err
		}
		logger.Debug("matrix loaded",
			zap.Int("rows", m.Rows()),
			zap.Int("cols", m.Cols()),
			zap.Int("nnz", m.NNZ()))

		fmt.Fprint(cmd.OutOrStdout(), m)
		return nil
	},
}

var roundCmd = &cobra.Command{
	Use:   "round [matrix.yaml]",
	Short: "Round stored entries half-to-even at the given decimal position",
	Long: `Rounds every stored entry half-to-even. Positive --ndigits rounds to
decimal places, negative rounds left of the decimal point (tens,
hundreds). Entries that round to exact zero stay stored unless
--drop-zeros is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if workers < 1 {
			return fmt.Errorf("--workers must be >= 1 (got %d)", workers)
		}
		m, err := readMatrix(args[0])
		if err != nil {
			return err
		}

		opts := []csr.Option{csr.WithWorkers(workers)}
		if dropZeros {
			opts = append(opts, csr.WithDropZeros())
		}
		out, err := csr.Round(m, ndigits, opts...)
		if err != nil {
			return err
		}
		logger.Debug("rounded",
			zap.Int("ndigits", ndigits),
			zap.Bool("drop_zeros", dropZeros),
			zap.Int("nnz_before", m.NNZ()),
			zap.Int("nnz_after", out.NNZ()))

		if output == "" {
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}
		return writeMatrix(output, out)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	roundCmd.Flags().IntVarP(&ndigits, "ndigits", "n", csr.DefaultNDigits, "Decimal position to round at (negative rounds tens/hundreds)")
	roundCmd.Flags().BoolVar(&dropZeros, "drop-zeros", csr.DefaultDropZeros, "Compact entries that round to exact zero")
	roundCmd.Flags().IntVar(&workers, "workers", csr.DefaultWorkers, "Row-range parallelism (must be >= 1)")
	roundCmd.Flags().StringVarP(&output, "output", "o", "", "Write the result as YAML instead of printing it")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(roundCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
