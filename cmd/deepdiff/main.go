// Command deepdiff compares two YAML or JSON documents and reports every
// structural divergence between them, one line per divergence, instead of
// stopping at the first difference.
//
// Exit codes: 0 when the documents are equal, 1 when they diverge, 2 on
// usage or parse errors.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/amp-labs/deepdiff/diff"
	"github.com/amp-labs/deepdiff/logger"
	"github.com/amp-labs/deepdiff/yamldiff"
)

// errDocumentsDiffer signals a successful comparison that found divergences,
// so main can exit 1 without logging it as a failure.
var errDocumentsDiffer = errors.New("documents differ")

// validFormats defines the allowed output formats.
var validFormats = []string{"text", "json"}

type options struct {
	format  string
	verbose bool
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "deepdiff <left> <right>",
		Short: "Compare two YAML or JSON documents and report every divergence",
		Long: "deepdiff compares two documents of the same shape and prints one line per point\n" +
			"of divergence (null-presence mismatch, unequal value, or length mismatch),\n" +
			"rather than stopping at the first difference.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.format, validFormats) //nolint:err113
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}

			log := logger.Configure(logger.Options{MinLevel: level})

			return run(out, log, args[0], args[1], opts.format)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "text", "output format (text|json)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	return cmd
}

func run(out io.Writer, log *slog.Logger, leftPath, rightPath, format string) error {
	left, err := os.ReadFile(leftPath)
	if err != nil {
		return fmt.Errorf("reading left document: %w", err)
	}

	right, err := os.ReadFile(rightPath)
	if err != nil {
		return fmt.Errorf("reading right document: %w", err)
	}

	log.Debug("comparing documents", "left", leftPath, "right", rightPath)

	equal, results, err := yamldiff.Compare(left, right)
	if err != nil {
		return err
	}

	if err := report(out, format, results); err != nil {
		return err
	}

	if !equal {
		log.Debug("documents diverge", "divergences", len(results))

		return errDocumentsDiffer
	}

	return nil
}

func report(out io.Writer, format string, results []diff.Divergence) error {
	if format == "json" {
		if results == nil {
			results = []diff.Divergence{}
		}

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(results); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}

		return nil
	}

	for _, divergence := range results {
		fmt.Fprintln(out, divergence.Message)
	}

	return nil
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		if errors.Is(err, errDocumentsDiffer) {
			os.Exit(1)
		}

		slog.Error("deepdiff failed", "error", err)
		os.Exit(2)
	}
}
