// SPDX-License-Identifier: MIT

// Command sparsecalc applies one binary operation to two sparse-matrix files
// and writes the result next to them.
//
//	sparsecalc add a.txt b.txt
//	sparsecalc multiply a.txt b.txt --out-dir results
//	sparsecalc run subtract a.txt b.txt
//	sparsecalc info a.txt
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/internal/driver"
)

// app carries state shared by every subcommand of one root command.
type app struct {
	configPath string
	verbose    bool
	outDir     string
	output     string

	cfg    *config.Config
	logger *zap.Logger
}

var opShort = map[driver.Op]string{
	driver.OpAdd:      "Add two matrices of the same shape",
	driver.OpSubtract: "Subtract the right matrix from the left",
	driver.OpMultiply: "Multiply left (m x k) by right (k x n)",
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sparsecalc",
		Short: "sparsecalc - sparse matrix arithmetic on text files",
		Long: `sparsecalc reads two matrices in the rows=/cols=/(r, c, v) text format,
applies add, subtract or multiply and writes the result to an
operation-named file (addition_result.txt, subtraction_result.txt,
multiplication_result.txt) unless --output is given.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.outDir, "out-dir", "", "directory for result files (overrides config)")
	pf.StringVarP(&a.output, "output", "o", "", "result file name or path (overrides the per-operation default)")

	for _, op := range driver.Ops {
		root.AddCommand(a.opCmd(op))
	}
	root.AddCommand(a.runCmd(), a.infoCmd())

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.outDir != "" {
		cfg.OutputDir = a.outDir
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	if cfg.Logging.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func (a *app) opCmd(op driver.Op) *cobra.Command {
	return &cobra.Command{
		Use:   string(op) + " <left> <right>",
		Short: opShort[op],
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, op, args[0], args[1])
		},
	}
}

// runCmd takes the operation as an argument, for scripts that pick it at runtime.
func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <add|subtract|multiply> <left> <right>",
		Short: "Apply the named operation to two matrices",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := driver.ParseOp(args[0])
			if err != nil {
				return err
			}

			return a.run(cmd, op, args[1], args[2])
		},
	}
}

func (a *app) run(cmd *cobra.Command, op driver.Op, left, right string) error {
	res, err := driver.NewRunner(a.cfg, a.logger).Run(op, left, right, a.output)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)

	return nil
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print shape, density and value statistics of a matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := driver.NewRunner(a.cfg, a.logger).Describe(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.String())

			return nil
		},
	}
}

func printResult(w io.Writer, res driver.Result) {
	fmt.Fprintf(w, "Result written to %s.\n", res.OutputPath)
	fmt.Fprintf(w, "%dx%d, %s stored entries, %s in %s\n",
		res.Rows, res.Cols,
		humanize.Comma(int64(res.NNZ)),
		humanize.Bytes(uint64(res.Bytes)),
		res.Elapsed.Round(time.Microsecond))
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
