package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"holocron/internal/annotate"
	"holocron/internal/convert"
	"holocron/internal/publish"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var seriesCode string
	var layout string
	var output string
	var policy string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "convert <file-or-directory>",
		Short: "Convert episode metadata files to JSON",
		Long: "Convert a semicolon-delimited episode file, or every .csv file in a directory,\n" +
			"into one JSON document. A file produces a sibling .json; a directory produces\n" +
			"data.json inside it unless --output says otherwise. Use --output - for stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cat, err := ctx.catalog()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if strings.TrimSpace(layout) == "" {
				layout = cfg.Output.Layout
			}
			if strings.TrimSpace(policy) == "" {
				policy = cfg.Characters.Policy
			}
			parsedPolicy, err := annotate.ParsePolicy(policy)
			if err != nil {
				return err
			}

			summary, err := convert.Run(cmd.Context(), convert.Options{
				Input:             args[0],
				Output:            strings.TrimSpace(output),
				Layout:            layout,
				SeriesCode:        seriesCode,
				Policy:            parsedPolicy,
				DirectoryFilename: cfg.Output.DirectoryFilename,
				Catalog:           cat,
				Stdout:            cmd.OutOrStdout(),
				Logger:            logger,
			})
			if err != nil {
				return fmt.Errorf("convert %s: %w", args[0], err)
			}
			if quiet {
				return nil
			}

			// The document owns stdout when it is written there.
			out := cmd.OutOrStdout()
			if summary.Output == publish.Stdout {
				out = cmd.ErrOrStderr()
			}
			printConvertSummary(out, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&seriesCode, "series", "s", "", "Force every row into this series code instead of the id prefix")
	cmd.Flags().StringVarP(&layout, "layout", "l", "", "Output layout: titles or episodes (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path, or - for stdout")
	cmd.Flags().StringVar(&policy, "policy", "", "Character policy: leading-pair or first-only (default from config)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the summary")
	return cmd
}

func printConvertSummary(out io.Writer, summary *convert.Summary) {
	colorize := shouldColorize(out)
	headline := fmt.Sprintf("Converted %d episode(s) from %d file(s)", summary.Episodes, len(summary.Inputs))
	fmt.Fprintln(out, colorizeHeading(headline, colorize))

	rows := make([][]string, 0, len(summary.Series)+1)
	for _, series := range summary.Series {
		rows = append(rows, []string{series.Code, series.Name, strconv.Itoa(series.Episodes)})
	}
	rows = append(rows, []string{"", "Total", strconv.Itoa(summary.Episodes)})
	fmt.Fprintln(out, renderTable(
		[]string{"Code", "Series", "Episodes"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	))

	inputs := make([]string, 0, len(summary.Inputs))
	for _, input := range summary.Inputs {
		inputs = append(inputs, filepath.Base(input))
	}
	fmt.Fprintf(out, "Inputs:  %s\n", strings.Join(inputs, ", "))
	fmt.Fprintf(out, "Output:  %s (%d bytes, layout %s)\n", displayOutput(summary.Output), summary.Bytes, summary.Layout)
	fmt.Fprintf(out, "Run:     %s in %s\n", summary.RunID, summary.Elapsed.Round(time.Millisecond))
}

func displayOutput(path string) string {
	if path == publish.Stdout {
		return "stdout"
	}
	return path
}
