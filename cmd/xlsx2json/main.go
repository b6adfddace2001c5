// Package main provides the CLI entry point for xlsx2json.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/roowe/xlsx2json-go/internal/logger"
	"github.com/roowe/xlsx2json-go/pkg/xlsx2json"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type cliOptions struct {
	outputDir  string
	configPath string
	workers    int
	pretty     bool
	rawValues  bool
	logLevel   string
	logJSON    bool
}

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	opts := &cliOptions{}
	rootCmd := &cobra.Command{
		Use:   "xlsx2json [input]",
		Short: "Convert annotated xlsx sheets to server and client JSON",
		Long: `xlsx2json reads the first sheet of every .xlsx file under the input path
and writes <output>/server/<name>.json and <output>/client/<name>.json.

Row 2 marks each column b (both), s (server) or c (client), row 3 declares
its type and row 4 its name. Data starts at row 5.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fsys, opts, args[0])
		},
	}
	registerFlags(rootCmd.Flags(), opts)
	return rootCmd
}

func registerFlags(fs *pflag.FlagSet, opts *cliOptions) {
	fs.StringVarP(&opts.outputDir, "output-dir", "o", "output", "Output root directory")
	fs.StringVarP(&opts.configPath, "config", "c", "", "TOML file with a [file_mappings] table")
	fs.IntVarP(&opts.workers, "workers", "w", 0, "Number of parallel workers (default: CPU count - 1)")
	fs.BoolVarP(&opts.pretty, "pretty", "p", false, "Pretty-print JSON output")
	fs.BoolVar(&opts.rawValues, "raw-values", true, "Read numeric cells without number formatting")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.logJSON, "log-json", false, "Emit logs as JSON")
}

func run(cmd *cobra.Command, fsys afero.Fs, opts *cliOptions, input string) error {
	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(opts.logLevel),
		Output:     cmd.ErrOrStderr(),
		JSON:       opts.logJSON,
		TimeFormat: "15:04:05",
	})

	mapping := xlsx2json.NameMapping{}
	if opts.configPath != "" {
		m, err := xlsx2json.LoadNameMapping(fsys, opts.configPath)
		if err != nil {
			return err
		}
		mapping = m
	}

	proc, err := xlsx2json.NewProcessor(fsys, xlsx2json.Options{
		OutputDir:    opts.outputDir,
		Workers:      opts.workers,
		Pretty:       opts.pretty,
		RawCellValue: opts.rawValues,
		Mapping:      mapping,
	}, log)
	if err != nil {
		return err
	}

	result, err := proc.Run(input)
	if result != nil {
		printSummary(cmd.OutOrStdout(), result)
	}
	return err
}

func printSummary(w io.Writer, result *xlsx2json.BatchResult) {
	failed := result.Failed()
	fmt.Fprintf(w, "Succeeded: %d\n", len(result.Succeeded()))
	fmt.Fprintf(w, "Skipped:   %d\n", result.Skipped())
	fmt.Fprintf(w, "Failed:    %d\n", len(failed))
	fmt.Fprintf(w, "Workers:   %d\n", result.Workers)
	fmt.Fprintf(w, "Elapsed:   %s\n", result.Elapsed)

	for _, doc := range failed {
		fmt.Fprintf(w, "\n%s:\n", doc.Path)
		var convErrs *xlsx2json.ConversionErrors
		if !errors.As(doc.Err, &convErrs) {
			fmt.Fprintf(w, "  %v\n", doc.Err)
			continue
		}
		for _, e := range convErrs.Errors {
			fmt.Fprintf(w, "  row %d, column %q: cannot convert %q to %s: %s\n",
				e.Row, e.Header, e.Value, e.TypeName, e.Message)
		}
	}
}
