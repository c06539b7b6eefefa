package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newSeriesCommand(ctx *commandContext) *cobra.Command {
	var showMacros bool

	cmd := &cobra.Command{
		Use:   "series",
		Short: "List known series codes and chronological offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			defaultCode := cat.Default().Code
			rows := make([][]string, 0)
			for _, series := range cat.Series() {
				marker := ""
				if series.Code == defaultCode {
					marker = "yes"
				}
				rows = append(rows, []string{series.Code, series.Name, strconv.Itoa(series.Offset), marker})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Code", "Series", "Offset", "Default"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))

			if !showMacros {
				return nil
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			names := make([]string, 0, len(cfg.Macros))
			for name := range cfg.Macros {
				names = append(names, name)
			}
			sort.Strings(names)
			macroRows := make([][]string, 0, len(names))
			for _, name := range names {
				members, _ := cat.Expand(name)
				macroRows = append(macroRows, []string{name, strings.Join(members, ", ")})
			}
			fmt.Fprintln(out, renderTable([]string{"Macro", "Expands to"}, macroRows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showMacros, "macros", false, "Also list character macros")
	return cmd
}
