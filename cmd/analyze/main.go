// Package main provides the CLI entry point for analyze.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/23f2005290/analyze/internal/config"
	"github.com/23f2005290/analyze/internal/logging"
	"github.com/23f2005290/analyze/pkg/analyze"
	"github.com/23f2005290/analyze/pkg/analyze/models"
	"github.com/23f2005290/analyze/pkg/analyze/output"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// Process exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitMissingInput = 2
	exitSchema       = 3
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and maps the outcome to an exit code.
// On failure nothing is written to stdout.
func execute(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, analyze.ErrMissingInput):
		return exitMissingInput
	case errors.Is(err, analyze.ErrSchema):
		return exitSchema
	default:
		return exitFailure
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "analyze [input]",
		Short: "Summarize a category/value table as JSON",
		Long: `analyze reads a CSV or Excel table with Category and Value columns,
drops rows whose Value is not a number, and prints the sum, mean, and
count of every category as a JSON document.

The input defaults to data.csv, or $ANALYZE_INPUT when set.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := rootCmd.Flags()
	flags.String("config", "", "YAML config file")
	flags.StringP("output", "o", "", "Output file path (default: stdout)")
	flags.Bool("pretty", false, "Pretty-print JSON output")
	flags.String("format", config.DefaultFormat, "Output format: json, table")
	flags.String("input-format", string(analyze.FormatAuto), "Input format: auto, csv, xlsx")
	flags.String("sheet", "", "Worksheet to read from xlsx input (default: first sheet)")
	flags.String("delimiter", config.DefaultDelimiter, "CSV field delimiter")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.String("log-format", config.DefaultLogFormat, "Log format: text, json")
	flags.BoolP("verbose", "v", false, "Log dropped rows and pipeline progress")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")

	var input string
	if len(args) > 0 {
		input = args[0]
	}

	cfg, err := config.Load(cfgFile, cmd.Flags(), input)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat).
		With(slog.String("run_id", uuid.NewString()))

	inputFormat, err := analyze.ParseFormat(cfg.InputFormat)
	if err != nil {
		return err
	}

	opts := analyze.Options{
		Format:    inputFormat,
		Sheet:     cfg.Sheet,
		Delimiter: cfg.DelimiterRune(),
		Logger:    logger,
	}

	result, err := analyze.Run(cfg.Input, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	data, err := render(*result, cfg)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("summary written", slog.String("path", cfg.Output))
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func render(result models.Result, cfg *config.Config) ([]byte, error) {
	if cfg.Format == "table" {
		return []byte(output.RenderTable(result) + "\n"), nil
	}
	return output.ToJSON(result, cfg.Pretty)
}
