// Package main provides the CLI entry point for xlsxheaders.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders"
	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders/output"
	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders/parser"
)

// defaultInput is read when no archive path is given.
const defaultInput = "TestQueryPairs.xlsx"

// formatFlag adapts output.Format to pflag.
type formatFlag struct {
	format output.Format
}

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string {
	return string(f.format)
}

func (f *formatFlag) Set(s string) error {
	format, err := output.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

func (f *formatFlag) Type() string {
	return "format"
}

type cliOptions struct {
	sheetName string
	format    formatFlag
	pretty    bool
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{format: formatFlag{format: output.FormatLine}}

	rootCmd := &cobra.Command{
		Use:   "xlsxheaders [input.xlsx] [sheet-part]",
		Short: "Print the header row of an Excel worksheet",
		Long: `xlsxheaders prints row 1 of a worksheet as one comma-separated line,
resolving shared strings to their text.

The input defaults to ` + defaultInput + ` and the sheet part to ` + parser.DefaultSheetPart + `.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.sheetName, "sheet", "", "Select the worksheet by name instead of part path")
	rootCmd.Flags().Var(&opts.format, "format", "Output format: line, json, yaml")
	rootCmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log extraction steps to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *cliOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	defer func() { _ = logger.Sync() }()

	inputPath := defaultInput
	if len(args) > 0 {
		inputPath = args[0]
	}

	extractOpts := xlsxheaders.DefaultOptions()
	if len(args) > 1 {
		extractOpts.SheetPart = args[1]
	}
	extractOpts.SheetName = opts.sheetName
	extractOpts.Logger = logger

	row, err := xlsxheaders.Extract(inputPath, extractOpts)
	if err != nil {
		logger.Debug("extraction failed", zap.String("input", inputPath), zap.Error(err))
		return fmt.Errorf("extraction failed: %w", err)
	}

	data, err := output.Render(row, opts.format.format, opts.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// newLogger writes console-encoded logs to w. Only warnings and errors are
// emitted unless verbose is set, so a successful run prints nothing on stderr.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}
